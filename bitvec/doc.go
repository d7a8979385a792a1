// Package bitvec implements the scalar similarity and distance kernels for
// binary molecular fingerprints: bit-count Euclidean distance, the Tanimoto
// coefficient in its generalized and bit-restricted forms, and the
// Bernoulli-corrected modified Tanimoto coefficient.
//
// All functions are pure, O(D) in the vector length, and safe to call
// concurrently. Kernels are plain scalar loops: the agreement counts they
// need (same nonzero value, 0-0 matches) have no vectorized primitive that
// preserves their semantics for non-binary input.
package bitvec
