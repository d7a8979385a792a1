// Package metric defines the closed set of supported pairwise metrics and
// the vectorized scalar kernels for the general-purpose distance backend.
//
// Metric names are resolved once via Parse; the resulting tag routes either
// to a Func obtained from Provider (general-purpose distances, vectorized
// with vek/gonum) or, for the built-in fingerprint similarities, to the
// bitvec package via the pairwise engine.
package metric
