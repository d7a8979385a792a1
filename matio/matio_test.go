package matio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRoundTrip(t *testing.T) {
	m := mat.NewSymDense(3, nil)
	m.SetSym(0, 0, 1)
	m.SetSym(1, 1, 1)
	m.SetSym(2, 2, 1)
	m.SetSym(0, 1, 0.5)
	m.SetSym(0, 2, 0.25)
	m.SetSym(1, 2, 0.125)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, got))
}

func TestReadErrors(t *testing.T) {
	t.Run("BadMagic", func(t *testing.T) {
		_, err := Read(bytes.NewReader([]byte("XXXX\x01")))
		require.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("BadVersion", func(t *testing.T) {
		_, err := Read(bytes.NewReader([]byte("MDSM\x09")))
		require.ErrorIs(t, err, ErrBadVersion)
	})

	t.Run("Truncated", func(t *testing.T) {
		m := mat.NewSymDense(2, []float64{0, 1, 1, 0})
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, m))

		_, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()-4]))
		require.Error(t, err)
	})
}
