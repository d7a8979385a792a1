package moldist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/moldist/bitvec"
	"github.com/hupe1980/moldist/metric"
	"github.com/hupe1980/moldist/pairwise"
)

// DistanceMatrix computes the full pairwise matrix of x under m.
//
// General-purpose metrics are delegated to the data-parallel vectorized
// backend and produce a distance matrix with zero diagonal. The built-in
// fingerprint metrics (metric.Tanimoto, metric.ModifiedTanimoto) run through
// the sequential pairwise engine and produce a similarity matrix with unit
// diagonal. Either way the result is symmetric and freshly allocated; x is
// never mutated.
func DistanceMatrix(x *mat.Dense, m metric.Metric, optFns ...Option) (*mat.SymDense, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	n, d := x.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRows, n)
	}
	if d < 1 {
		return nil, ErrInvalidDimension
	}
	if o.forceAllFinite {
		if err := checkFinite(x); err != nil {
			return nil, err
		}
	}

	log := o.logger.WithMetric(m.String())

	switch m {
	case metric.Tanimoto:
		log.Debug("computing built-in similarity matrix", "rows", n, "dim", d)
		return pairwise.SimilarityBit(x, bitvec.Tanimoto)
	case metric.ModifiedTanimoto:
		log.Debug("computing built-in similarity matrix", "rows", n, "dim", d)
		return pairwise.SimilarityBit(x, bitvec.ModifiedTanimoto)
	default:
		fn, err := metric.Provider(m, o.minkowskiP)
		if err != nil {
			return nil, err
		}
		log.Debug("delegating to general-purpose backend", "rows", n, "dim", d, "workers", o.workers)
		return pairwise.Distances(x, fn, o.workers)
	}
}

// DistanceMatrixNamed is DistanceMatrix for callers holding a metric name.
// The name is resolved once via metric.Parse; unknown names return
// metric.ErrUnsupported.
func DistanceMatrixNamed(x *mat.Dense, name string, optFns ...Option) (*mat.SymDense, error) {
	m, err := metric.Parse(name)
	if err != nil {
		return nil, err
	}
	return DistanceMatrix(x, m, optFns...)
}

func checkFinite(x *mat.Dense) error {
	n, _ := x.Dims()
	for i := 0; i < n; i++ {
		for _, v := range x.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d", ErrNonFinite, i)
			}
		}
	}
	return nil
}
