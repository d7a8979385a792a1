package pairwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/moldist/bitvec"
	"github.com/hupe1980/moldist/metric"
)

func fingerprints() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		1, 1, 0,
		0, 0, 1,
	})
}

func TestCondensed(t *testing.T) {
	x := fingerprints()

	cond, err := Condensed(x, bitvec.BitTanimoto)
	require.NoError(t, err)

	// Lexicographic pair order: (0,1), (0,2), (1,2).
	require.Len(t, cond, 3)
	assert.InDelta(t, 0.5, cond[0], 1e-12)
	assert.InDelta(t, 0, cond[1], 1e-12)
	assert.InDelta(t, 0, cond[2], 1e-12)

	t.Run("TooFewRows", func(t *testing.T) {
		_, err := Condensed(mat.NewDense(1, 3, []float64{1, 0, 0}), bitvec.BitTanimoto)
		require.ErrorIs(t, err, ErrTooFewRows)
	})

	t.Run("MetricError", func(t *testing.T) {
		fail := func(a, b []float64) (float64, error) {
			return bitvec.BitTanimoto(a[:1], b)
		}
		_, err := Condensed(x, fail)
		require.ErrorIs(t, err, bitvec.ErrLengthMismatch)
	})
}

func TestSquareform(t *testing.T) {
	m, err := Squareform([]float64{0.5, 0, 0}, 3)
	require.NoError(t, err)

	n := m.SymmetricDim()
	assert.Equal(t, 3, n)
	assert.Equal(t, 0.5, m.At(0, 1))
	assert.Equal(t, 0.5, m.At(1, 0))
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, m.At(i, i))
	}

	t.Run("BadLength", func(t *testing.T) {
		_, err := Squareform([]float64{1, 2}, 3)
		require.ErrorIs(t, err, ErrBadCondensedLength)
	})
}

func TestSimilarityBit(t *testing.T) {
	x := fingerprints()

	m, err := SimilarityBit(x, bitvec.BitTanimoto)
	require.NoError(t, err)

	n := m.SymmetricDim()
	require.Equal(t, 3, n)

	// Diagonal is 1 by construction, never by evaluating the metric.
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, m.At(i, i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
	assert.InDelta(t, 0.5, m.At(0, 1), 1e-12)
	assert.InDelta(t, 0, m.At(0, 2), 1e-12)

	t.Run("AllZeroRowDiagonal", func(t *testing.T) {
		zeros := mat.NewDense(2, 3, nil)
		m, err := SimilarityBit(zeros, bitvec.BitTanimoto)
		require.NoError(t, err)
		assert.Equal(t, 1.0, m.At(0, 0))
		assert.Equal(t, 0.0, m.At(0, 1))
	})
}

func TestDistances(t *testing.T) {
	x := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		-1, 0, 1,
		2, 2, 2,
	})

	m, err := Distances(x, metric.EuclideanDistance, 2)
	require.NoError(t, err)

	n := m.SymmetricDim()
	require.Equal(t, 4, n)

	// Matches a direct O(n²) computation.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := metric.EuclideanDistance(x.RawRowView(i), x.RawRowView(j))
			assert.InDelta(t, want, m.At(i, j), 1e-9)
		}
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, m.At(i, i))
	}

	t.Run("DeterministicAcrossWorkers", func(t *testing.T) {
		serial, err := Distances(x, metric.EuclideanDistance, 1)
		require.NoError(t, err)
		parallel, err := Distances(x, metric.EuclideanDistance, 8)
		require.NoError(t, err)
		assert.True(t, mat.Equal(serial, parallel))
	})

	t.Run("AllCPUs", func(t *testing.T) {
		_, err := Distances(x, metric.EuclideanDistance, -1)
		require.NoError(t, err)
	})

	t.Run("TooFewRows", func(t *testing.T) {
		_, err := Distances(mat.NewDense(1, 3, nil), metric.EuclideanDistance, 1)
		require.ErrorIs(t, err, ErrTooFewRows)
	})
}
