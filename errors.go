package moldist

import (
	"errors"

	"github.com/hupe1980/moldist/pairwise"
)

var (
	// ErrTooFewRows is returned when the feature matrix has fewer than two
	// rows; a pairwise matrix needs at least one pair.
	ErrTooFewRows = pairwise.ErrTooFewRows

	// ErrInvalidDimension is returned when the feature matrix has no columns.
	ErrInvalidDimension = errors.New("moldist: feature matrix has no columns")

	// ErrNonFinite is returned when the feature matrix contains NaN or Inf
	// and finiteness checking is enabled (the default).
	ErrNonFinite = errors.New("moldist: feature matrix contains NaN or Inf")
)
