// Package classicalfft implements the classical radix-2 Cooley-Tukey
// transform for fields that carry a large enough 2-adic subgroup. It serves
// as a reference oracle for the isogeny-chain engine.
package classicalfft

import (
	"fmt"

	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/parallel"
)

// ClassicalFft is a precomputed radix-2 transform for one field and size.
// Immutable after New and safe for concurrent use.
type ClassicalFft struct {
	k           int
	field       *field.Field
	twiddles    []field.Element
	invTwiddles []field.Element
	nInv        field.Element
	threadLog   int
}

// New precomputes twiddle tables for a length-2^k transform. root must be
// a primitive 2^k-th root of unity in f; only the 2^k-th power is checked.
func New(f *field.Field, k int, root field.Element, threadLog int) (*ClassicalFft, error) {
	if k < 1 {
		return nil, fmt.Errorf("classicalfft: k must be >= 1, got %d", k)
	}
	if !root.Field().Equal(f) {
		return nil, fmt.Errorf("classicalfft: root is not an element of f")
	}
	if !root.Pow(1 << uint(k)).Equal(f.One()) {
		return nil, fmt.Errorf("classicalfft: root is not a 2^%d-th root of unity", k)
	}

	half := 1 << uint(k-1)
	invRoot := root.Inv()

	twiddles := make([]field.Element, half)
	invTwiddles := make([]field.Element, half)
	w, wInv := f.One(), f.One()
	for i := 0; i < half; i++ {
		twiddles[i] = w
		invTwiddles[i] = wInv
		w = w.Mul(root)
		wInv = wInv.Mul(invRoot)
	}

	n := f.NewFromUint64(uint64(1) << uint(k))
	nInv := n.Inv()

	return &ClassicalFft{
		k:           k,
		field:       f,
		twiddles:    twiddles,
		invTwiddles: invTwiddles,
		nInv:        nInv,
		threadLog:   threadLog,
	}, nil
}

// Evaluate transforms coeffs (coefficient order) into evaluations at every
// 2^k-th root of unity, in place.
func (c *ClassicalFft) Evaluate(coeffs []field.Element) error {
	if len(coeffs) != 1<<uint(c.k) {
		return fmt.Errorf("classicalfft: length %d != 2^%d", len(coeffs), c.k)
	}
	bitReverse(coeffs, c.k)
	c.butterflyPass(coeffs, 1, c.twiddles)
	return nil
}

// Interpolate is the inverse of Evaluate: it transforms evaluations back
// into coefficients, in place.
func (c *ClassicalFft) Interpolate(values []field.Element) error {
	if len(values) != 1<<uint(c.k) {
		return fmt.Errorf("classicalfft: length %d != 2^%d", len(values), c.k)
	}
	bitReverse(values, c.k)
	c.butterflyPass(values, 1, c.invTwiddles)
	for i := range values {
		values[i] = values[i].Mul(c.nInv)
	}
	return nil
}

// butterflyPass recursively applies the decimation-in-time butterfly,
// forking while the subproblem's size exponent exceeds c.threadLog.
func (c *ClassicalFft) butterflyPass(values []field.Element, twiddleChunk int, twiddles []field.Element) {
	n := len(values)
	if n == 2 {
		t := values[1]
		values[1] = values[0].Sub(t)
		values[0] = values[0].Add(t)
		return
	}

	half := n / 2
	left, right := values[:half], values[half:]

	parallelize := parallel.Log2(n) > c.threadLog
	parallel.Join(parallelize,
		func() error { c.butterflyPass(left, twiddleChunk*2, twiddles); return nil },
		func() error { c.butterflyPass(right, twiddleChunk*2, twiddles); return nil },
	)

	butterfly(left, right, twiddleChunk, twiddles)
}

// butterfly combines the two half-transforms in place with a strided
// twiddle-factor lookup.
func butterfly(left, right []field.Element, twiddleChunk int, twiddles []field.Element) {
	for k := range left {
		tw := twiddles[k*twiddleChunk]
		t := right[k].Mul(tw)
		right[k] = left[k].Sub(t)
		left[k] = left[k].Add(t)
	}
}

// bitReverse permutes values into bit-reversed order.
func bitReverse(values []field.Element, k int) {
	n := len(values)
	for i := 1; i < n; i++ {
		j := reverseBits(i, k)
		if i < j {
			values[i], values[j] = values[j], values[i]
		}
	}
}

func reverseBits(i, k int) int {
	r := 0
	for b := 0; b < k; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}
