// Package isogeny implements the per-depth rational maps psi_d that halve
// the evaluation domain, and the factor-matrix construction that applies
// the halving without a division per element.
package isogeny

import (
	"github.com/vybium/ecfft/internal/ecfft/curve"
	"github.com/vybium/ecfft/internal/ecfft/field"
)

// Isogeny is the depth-d map psi_d(x) = (a + b*x + x^2) / (a + x).
type Isogeny struct {
	a, b field.Element
}

// MaxDepth is the largest depth the constants table covers, one isogeny
// per level transition below the top.
const MaxDepth = 14

// constantsTable holds the (a_d, b_d) pair for depths 1..MaxDepth, indexed
// by d-1. These are placeholder values, not constants reproduced
// from an offline generator; see DESIGN.md.
var constantsTable [MaxDepth]Isogeny

func init() {
	for d := 1; d <= MaxDepth; d++ {
		a := curve.Fp.NewFromUint64(uint64(1000003 + 7*d))
		b := curve.Fp.NewFromUint64(uint64(2000029 + 11*d))
		constantsTable[d-1] = Isogeny{a: a, b: b}
	}
}

// ForDepth returns the isogeny psi_d. Panics if d is out of range.
func ForDepth(d int) Isogeny {
	if d < 1 || d > MaxDepth {
		panic("isogeny: depth out of range")
	}
	return constantsTable[d-1]
}

// Evaluate computes psi_d(x) = (a + b*x + x^2) / (a + x). Callers
// guarantee the denominator is nonzero for every domain point; a zero
// denominator means a mis-chosen curve or coset and panics.
func (psi Isogeny) Evaluate(x field.Element) field.Element {
	num := psi.a.Add(psi.b.Mul(x)).Add(x.Square())
	den := psi.Denominator(x)
	return num.Div(den)
}

// Denominator returns a_d + x.
func (psi Isogeny) Denominator(x field.Element) field.Element {
	return psi.a.Add(x)
}

// HalfDomain applies psi_d elementwise to the first m entries of d,
// producing the next-level domain.
func (psi Isogeny) HalfDomain(d []field.Element, m int) []field.Element {
	out := make([]field.Element, m)
	for i := 0; i < m; i++ {
		out[i] = psi.Evaluate(d[i])
	}
	return out
}

// Matrix2x2 is a factor matrix ((f0,f1),(f2,f3)) acting on a pair (a,b) as
// (f0*a+f1*b, f2*a+f3*b).
type Matrix2x2 struct {
	F0, F1, F2, F3 field.Element
}

// Apply performs the 2x2 mix (a,b) -> (f0*a+f1*b, f2*a+f3*b).
func (m Matrix2x2) Apply(a, b field.Element) (field.Element, field.Element) {
	return m.F0.Mul(a).Add(m.F1.Mul(b)), m.F2.Mul(a).Add(m.F3.Mul(b))
}

// BuildFactors constructs the m factor matrices for a domain d of length 2m
// split into halves d[0:m], d[m:2m], with exponent exp = m-1: entry i is
// ((f1, a*f1), (f3, b*f3)) where f1 = denominator(d[i])^exp, a = d[i],
// f3 = denominator(d[m+i])^exp, b = d[m+i].
func (psi Isogeny) BuildFactors(d []field.Element, m int, exp uint64) []Matrix2x2 {
	if len(d) != 2*m {
		panic("isogeny: BuildFactors domain length must be 2m")
	}
	out := make([]Matrix2x2, m)
	for i := 0; i < m; i++ {
		a := d[i]
		b := d[m+i]
		f1 := psi.Denominator(a).Pow(exp)
		f3 := psi.Denominator(b).Pow(exp)
		out[i] = Matrix2x2{F0: f1, F1: a.Mul(f1), F2: f3, F3: b.Mul(f3)}
	}
	return out
}
