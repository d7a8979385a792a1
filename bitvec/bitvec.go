package bitvec

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch indicates two vectors of unequal dimensionality.
var ErrLengthMismatch = errors.New("bitvec: vector lengths do not match")

func checkLen(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

// ones counts the nonzero entries of a and b and the positions where both
// agree on the same nonzero value (the 1-1 intersection for binary input).
func ones(a, b []float64) (aFeat, bFeat, common int) {
	for i := range a {
		if a[i] != 0 {
			aFeat++
		}
		if b[i] != 0 {
			bFeat++
		}
		if a[i] == b[i] && a[i] != 0 {
			common++
		}
	}
	return aFeat, bFeat, common
}

// EucBit computes the Euclidean distance between two fingerprints from bit
// counts: sqrt(|a| + |b| − 2c), where |a| and |b| are the nonzero counts and
// c the 1-1 intersection count.
func EucBit(a, b []float64) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	aFeat, bFeat, c := ones(a, b)
	return math.Sqrt(float64(aFeat + bFeat - 2*c)), nil
}

// Tanimoto computes the generalized Tanimoto coefficient
// dot(a,b) / (|a|² + |b|² − dot(a,b)). When both vectors are all-zero the
// denominator vanishes; the coefficient is defined as 0 in that case, since
// two empty feature sets share nothing.
func Tanimoto(a, b []float64) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	var dot, aa, bb float64
	for i := range a {
		dot += a[i] * b[i]
		aa += a[i] * a[i]
		bb += b[i] * b[i]
	}
	denom := aa + bb - dot
	if denom == 0 {
		return 0, nil
	}
	return dot / denom, nil
}

// BitTanimoto computes the Tanimoto coefficient for fingerprints in bit
// form: c / (|a| + |b| − c). Both vectors all-zero yields 0, as in Tanimoto.
func BitTanimoto(a, b []float64) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	aFeat, bFeat, c := ones(a, b)
	denom := aFeat + bFeat - c
	if denom == 0 {
		return 0, nil
	}
	return float64(c) / float64(denom), nil
}

// ModifiedTanimoto computes the Bernoulli-corrected Tanimoto coefficient of
// two binary fingerprints (Fligner, Verducci and Blower, 2002), countering
// the plain coefficient's bias towards sparse fingerprints.
//
// With n the vector length, n11 the count of 1-1 agreements and n00 the
// count of 0-0 agreements:
//
//	t1 = n11 / (n − n00)   (1 when the vectors are all-zero)
//	t0 = n00 / (n − n11)   (1 when the vectors are all-one)
//	p  = ((n − n00) + n11) / 2n
//	mt = ((2 − p)/3)·t1 + ((1 + p)/3)·t0
//
// The two saturation branches use exact equality; they exist to keep the
// denominators nonzero.
func ModifiedTanimoto(a, b []float64) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	n := float64(len(a))
	var n11, n00 float64
	for i := range a {
		n11 += a[i] * b[i]
		n00 += (1 - a[i]) * (1 - b[i])
	}

	t1 := 1.0
	if n00 != n {
		t1 = n11 / (n - n00)
	}
	t0 := 1.0
	if n11 != n {
		t0 = n00 / (n - n11)
	}

	p := ((n - n00) + n11) / (2 * n)
	return ((2-p)/3)*t1 + ((1+p)/3)*t0, nil
}
