// Package diversity implements the nearest-neighbour Tanimoto aggregation
// used by the Explicit Diversity Index: a compound set is diverse when each
// molecule is dissimilar even to its closest neighbour.
package diversity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/moldist/fingerprint"
	"github.com/hupe1980/moldist/pairwise"
)

// NearestAverageTanimoto locates, for every row of x, its nearest neighbour
// under the bit-count Euclidean distance and returns the mean bit Tanimoto
// coefficient over those nearest pairs.
//
// The scan uses strict less-than, so on ties the first neighbour in row
// order wins. The running minimum is seeded with +Inf; the distance itself
// is unbounded above, so no finite seed is safe.
//
// Rows are treated as binary presence vectors: any nonzero entry counts as
// a set bit.
func NearestAverageTanimoto(x *mat.Dense) (float64, error) {
	n, _ := x.Dims()
	if n < 2 {
		return 0, fmt.Errorf("%w: got %d", pairwise.ErrTooFewRows, n)
	}

	fps := make([]*fingerprint.Fingerprint, n)
	for i := range fps {
		fps[i] = fingerprint.FromDense(x.RawRowView(i))
	}

	var sum float64
	for i := 0; i < n; i++ {
		short := math.Inf(1)
		nearest := -1
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if d := fps[i].EucBit(fps[j]); d < short {
				short = d
				nearest = j
			}
		}
		sum += fps[i].Tanimoto(fps[nearest])
	}
	return sum / float64(n), nil
}
