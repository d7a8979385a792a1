// Package moldist computes pairwise distance and similarity matrices for
// molecular feature vectors, feeding diversity-selection algorithms.
//
// Features are supplied as a gonum *mat.Dense with one molecule per row:
// binary fingerprints for the bit metrics, real-valued descriptors for the
// general-purpose metrics. DistanceMatrix routes a metric tag either to the
// vectorized general-purpose backend or to the exact fingerprint kernels:
//
//	x := mat.NewDense(3, 3, []float64{
//		1, 0, 0,
//		1, 1, 0,
//		0, 0, 1,
//	})
//	sim, _ := moldist.DistanceMatrix(x, metric.Tanimoto)
//	dist, _ := moldist.DistanceMatrixNamed(x, "euclidean", moldist.WithWorkers(4))
//
// Results are always symmetric N×N matrices; distance metrics carry a zero
// diagonal, the built-in similarities a unit diagonal. Inputs are never
// mutated and every call returns a freshly allocated matrix.
package moldist
