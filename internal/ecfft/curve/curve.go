// Package curve implements the fixed elliptic curve y^2 = x^3 + x + b
// whose x-coordinate cosets supply the evaluation domains. Points use
// Jacobian projective coordinates.
package curve

import "github.com/vybium/ecfft/internal/ecfft/field"

// Fp is the prime field the curve is defined over.
var Fp = field.MustNew(fieldModulus)

// MaxLevel returns the largest k for which the engine builds a 2^k-point
// domain. Because the generator and representative are placeholder points
// that do not lie on the curve, that domain is not a coset of a curve
// subgroup.
func MaxLevel() int { return maxLevel }

// Point is a curve point in Jacobian projective coordinates (X:Y:Z),
// representing the affine point (X/Z^2, Y/Z^3). The zero value is not a
// valid point; use Identity, Generator, or Representative.
type Point struct {
	x, y, z field.Element
}

// AffinePoint is a curve point in affine coordinates.
type AffinePoint struct {
	X, Y field.Element
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{x: Fp.Zero(), y: Fp.Zero(), z: Fp.Zero()}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p.z.IsZero() }

// Generator returns the fixed group generator G.
func Generator() Point {
	return Point{x: Fp.NewElement(generatorX), y: Fp.NewElement(generatorY), z: Fp.One()}
}

// Representative returns the fixed coset representative R.
func Representative() Point {
	return Point{x: Fp.NewElement(representativeX), y: Fp.NewElement(representativeY), z: Fp.One()}
}

// curveA is the curve's short-Weierstrass a coefficient, fixed to 1.
var curveA = Fp.One()

// curveBElem is curveB lifted into Fp, computed lazily to avoid an init-order
// dependency on Fp's construction.
func curveBElem() field.Element { return Fp.NewElement(curveB) }

// IsOnCurve reports whether p satisfies the Jacobian form of the curve
// equation, y^2 = x^3 + a*x*z^4 + b*z^6; vacuously true for the identity.
func (p Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return true
	}
	z2 := p.z.Square()
	z4 := z2.Square()
	z6 := z4.Mul(z2)
	lhs := p.y.Square()
	rhs := p.x.Square().Add(curveA.Mul(z4)).Mul(p.x).Add(curveBElem().Mul(z6))
	return lhs.Equal(rhs)
}

// Affine converts p to affine coordinates. Returns the identity-flagged
// zero affine point when p is the point at infinity.
func (p Point) Affine() AffinePoint {
	if p.IsIdentity() {
		return AffinePoint{X: Fp.Zero(), Y: Fp.Zero()}
	}
	zinv := p.z.Inv()
	zinv2 := zinv.Square()
	zinv3 := zinv2.Mul(zinv)
	return AffinePoint{X: p.x.Mul(zinv2), Y: p.y.Mul(zinv3)}
}

// ToJacobian lifts an affine point back to Jacobian coordinates.
func (a AffinePoint) ToJacobian() Point {
	if a.IsIdentity() {
		return Identity()
	}
	return Point{x: a.X, y: a.Y, z: Fp.One()}
}

// IsIdentity reports whether a is the point at infinity (x=y=0).
func (a AffinePoint) IsIdentity() bool { return a.X.IsZero() && a.Y.IsZero() }

// Double returns p + p, via the dbl-2007-bl formula
// (hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2007-bl).
func (p Point) Double() Point {
	if p.IsIdentity() {
		return p
	}
	xx := p.x.Square()
	yy := p.y.Square()
	yyyy := yy.Square()
	zz := p.z.Square()
	a := p.x.Add(yy)
	b := a.Square().Sub(xx).Sub(yyyy)
	s := b.Add(b)
	c := xx.Add(xx).Add(xx)
	d := zz.Square().Mul(curveA)
	m := c.Add(d)
	e := s.Add(s)
	t := m.Square().Sub(e)
	x3 := t
	f := s.Sub(t)
	yyyy2 := yyyy.Add(yyyy)
	yyyy4 := yyyy2.Add(yyyy2)
	l := yyyy4.Add(yyyy4)
	y3 := m.Mul(f).Sub(l)
	n := p.y.Add(p.z)
	z3 := n.Square().Sub(yy).Sub(zz)
	return Point{x: x3, y: y3, z: z3}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	z1z1 := p.z.Square()
	z2z2 := q.z.Square()
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(z2z2).Mul(q.z)
	s2 := q.y.Mul(z1z1).Mul(p.z)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return Identity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)
	x3 := r.Square().Sub(j).Sub(v).Sub(v)
	s1j := s1.Mul(j)
	s1j = s1j.Add(s1j)
	y3 := r.Mul(v.Sub(x3)).Sub(s1j)
	z3 := p.z.Add(q.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return Point{x: x3, y: y3, z: z3}
}

// AddAffine returns p + q where q is affine, avoiding a redundant
// z-squaring pass relative to Add(q.ToJacobian()).
func (p Point) AddAffine(q AffinePoint) Point {
	if p.IsIdentity() {
		return q.ToJacobian()
	}
	if q.IsIdentity() {
		return p
	}
	z1z1 := p.z.Square()
	u2 := q.X.Mul(z1z1)
	s2 := q.Y.Mul(z1z1).Mul(p.z)

	if p.x.Equal(u2) {
		if p.y.Equal(s2) {
			return p.Double()
		}
		return Identity()
	}

	h := u2.Sub(p.x)
	hh := h.Square()
	i := hh.Add(hh).Add(hh).Add(hh)
	j := h.Mul(i)
	r := s2.Sub(p.y)
	r = r.Add(r)
	v := p.x.Mul(i)
	x3 := r.Square().Sub(j).Sub(v).Sub(v)
	j2 := p.y.Mul(j)
	j2 = j2.Add(j2)
	y3 := r.Mul(v.Sub(x3)).Sub(j2)
	z3 := p.z.Add(h).Square().Sub(z1z1).Sub(hh)

	return Point{x: x3, y: y3, z: z3}
}

// ScalarMul returns scalar * p via double-and-add over the scalar's bits,
// most-significant bit first.
func (p Point) ScalarMul(scalar field.Element) Point {
	acc := Identity()
	v := scalar.Big()
	for i := v.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		if v.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}
