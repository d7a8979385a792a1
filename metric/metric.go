package metric

import (
	"errors"
	"fmt"
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
)

// ErrUnsupported is returned when a metric name or tag is not recognized.
var ErrUnsupported = errors.New("metric: unsupported metric")

// Metric identifies a pairwise distance or similarity measure.
type Metric int

const (
	Euclidean Metric = iota
	SqEuclidean
	Manhattan
	Chebyshev
	Minkowski
	Cosine
	Hamming
	Tanimoto
	ModifiedTanimoto
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case SqEuclidean:
		return "sqeuclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case Minkowski:
		return "minkowski"
	case Cosine:
		return "cosine"
	case Hamming:
		return "hamming"
	case Tanimoto:
		return "tanimoto"
	case ModifiedTanimoto:
		return "modified_tanimoto"
	default:
		return fmt.Sprintf("unknown(%d)", m)
	}
}

// Builtin reports whether m is one of the bit-fingerprint similarity
// metrics served by the built-in pairwise engine rather than the
// general-purpose distance backend.
func (m Metric) Builtin() bool {
	return m == Tanimoto || m == ModifiedTanimoto
}

var names = map[string]Metric{
	"euclidean":         Euclidean,
	"l2":                Euclidean,
	"sqeuclidean":       SqEuclidean,
	"manhattan":         Manhattan,
	"cityblock":         Manhattan,
	"l1":                Manhattan,
	"chebyshev":         Chebyshev,
	"minkowski":         Minkowski,
	"cosine":            Cosine,
	"hamming":           Hamming,
	"tanimoto":          Tanimoto,
	"modified_tanimoto": ModifiedTanimoto,
}

// Parse resolves a metric name to its tag. Unknown names return
// ErrUnsupported wrapped with the offending name.
func Parse(name string) (Metric, error) {
	m, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return m, nil
}

// Func is a scalar distance function over two equal-length vectors.
// Implementations assume len(a) == len(b); the caller is responsible
// for shape validation.
type Func func(a, b []float64) float64

// EuclideanDistance computes the L2 distance between two vectors.
func EuclideanDistance(a, b []float64) float64 {
	return vek.Distance(a, b)
}

// SqEuclideanDistance computes the squared L2 distance between two vectors.
func SqEuclideanDistance(a, b []float64) float64 {
	d := vek.Distance(a, b)
	return d * d
}

// ManhattanDistance computes the L1 (city-block) distance between two vectors.
func ManhattanDistance(a, b []float64) float64 {
	return vek.ManhattanDistance(a, b)
}

// ChebyshevDistance computes the L∞ distance between two vectors.
func ChebyshevDistance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiDistance computes the Lp distance between two vectors.
func MinkowskiDistance(a, b []float64, p float64) float64 {
	return floats.Distance(a, b, p)
}

// CosineDistance computes 1 − cosine similarity. A zero-magnitude vector
// has no direction, so its similarity to anything is taken as 0 and the
// distance as 1.
func CosineDistance(a, b []float64) float64 {
	if vek.Dot(a, a) == 0 || vek.Dot(b, b) == 0 {
		return 1
	}
	return 1 - vek.CosineSimilarity(a, b)
}

// HammingDistance computes the fraction of coordinates in which the two
// vectors differ.
func HammingDistance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return float64(diff) / float64(len(a))
}

// Provider returns the distance function for the given general-purpose
// metric. p is the Minkowski exponent and must be positive; it is ignored
// by every other metric. Built-in similarity metrics have no Func form and
// return ErrUnsupported.
func Provider(m Metric, p float64) (Func, error) {
	switch m {
	case Euclidean:
		return EuclideanDistance, nil
	case SqEuclidean:
		return SqEuclideanDistance, nil
	case Manhattan:
		return ManhattanDistance, nil
	case Chebyshev:
		return ChebyshevDistance, nil
	case Minkowski:
		if p <= 0 {
			return nil, fmt.Errorf("metric: minkowski exponent must be positive, got %v", p)
		}
		return func(a, b []float64) float64 {
			return MinkowskiDistance(a, b, p)
		}, nil
	case Cosine:
		return CosineDistance, nil
	case Hamming:
		return HammingDistance, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, m)
	}
}
