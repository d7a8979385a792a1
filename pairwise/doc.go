// Package pairwise enumerates all unordered row pairs of a feature matrix
// and assembles symmetric distance or similarity matrices from scalar pair
// metrics.
//
// Two engines are provided: SimilarityBit, the sequential condensed-vector
// engine used for the built-in fingerprint similarities, and Distances, the
// data-parallel backend for general-purpose distance kernels.
package pairwise
