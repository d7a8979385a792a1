package pairwise

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/moldist/metric"
)

var (
	// ErrTooFewRows is returned when a feature matrix has fewer than two rows.
	ErrTooFewRows = errors.New("pairwise: feature matrix needs at least two rows")

	// ErrBadCondensedLength is returned when a condensed pair vector does not
	// hold exactly n(n−1)/2 entries.
	ErrBadCondensedLength = errors.New("pairwise: condensed vector length does not match row count")
)

// Func is a pure pair metric: it maps two equal-length vectors to a scalar
// and must be safe to call in any order or concurrently.
type Func func(a, b []float64) (float64, error)

// Condensed evaluates fn on every unordered row pair (i, j) with i < j of x,
// in lexicographic order, and returns the resulting n(n−1)/2 scalars.
func Condensed(x *mat.Dense, fn Func) ([]float64, error) {
	n, _ := x.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRows, n)
	}
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		a := x.RawRowView(i)
		for j := i + 1; j < n; j++ {
			v, err := fn(a, x.RawRowView(j))
			if err != nil {
				return nil, fmt.Errorf("pairwise: pair (%d,%d): %w", i, j, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// Squareform expands a condensed pair vector into the symmetric n×n matrix
// it was taken from, with a zero diagonal.
func Squareform(cond []float64, n int) (*mat.SymDense, error) {
	if len(cond) != n*(n-1)/2 {
		return nil, fmt.Errorf("%w: %d entries for n=%d", ErrBadCondensedLength, len(cond), n)
	}
	m := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, cond[k])
			k++
		}
	}
	return m, nil
}

// SimilarityBit computes the full pairwise similarity matrix of x under fn:
// the condensed pair vector is expanded with Squareform and the diagonal set
// to 1 by construction, without evaluating fn on a row with itself.
//
// The diagonal convention is only meaningful for normalized similarities in
// [0,1] whose self-value is 1, such as the bitvec metrics. Do not use this
// engine for unbounded distance functions.
func SimilarityBit(x *mat.Dense, fn Func) (*mat.SymDense, error) {
	cond, err := Condensed(x, fn)
	if err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	m, err := Squareform(cond, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.SetSym(i, i, 1)
	}
	return m, nil
}

// Distances computes the full pairwise distance matrix of x under fn, with
// rows fanned out across at most workers goroutines (workers <= 0 means one
// per CPU). fn must be stateless; results are deterministic regardless of
// the degree of parallelism. The diagonal is zero by construction.
func Distances(x *mat.Dense, fn metric.Func, workers int) (*mat.SymDense, error) {
	n, _ := x.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRows, n)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	m := mat.NewSymDense(n, nil)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		i := i
		g.Go(func() error {
			// Each task owns the cells (i, j>i); writes never overlap.
			a := x.RawRowView(i)
			for j := i + 1; j < n; j++ {
				m.SetSym(i, j, fn(a, x.RawRowView(j)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}
