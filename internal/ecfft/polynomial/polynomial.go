// Package polynomial provides a basis-tagged polynomial container. The tag
// distinguishes coefficient vectors from point-value vectors at compile
// time so the two representations cannot be mixed.
package polynomial

import (
	"fmt"

	"github.com/vybium/ecfft/internal/ecfft/field"
)

// Basis marks which representation a Polynomial's values are in.
type Basis interface {
	basis()
}

// Coefficients marks a Polynomial whose values are coefficients, lowest
// degree first.
type Coefficients struct{}

func (Coefficients) basis() {}

// PointValue marks a Polynomial whose values are evaluations at an implicit
// domain (the caller is responsible for remembering which domain).
type PointValue struct{}

func (PointValue) basis() {}

// Polynomial holds a basis-tagged slice of field elements, all drawn from a
// single field.
type Polynomial[B Basis] struct {
	field  *field.Field
	values []field.Element
}

// New constructs a Polynomial tagged with basis B from a copy of values.
// Every value must belong to f; an empty slice is rejected.
func New[B Basis](f *field.Field, values []field.Element) (Polynomial[B], error) {
	if len(values) == 0 {
		return Polynomial[B]{}, errEmpty
	}
	for i, v := range values {
		if !v.Field().Equal(f) {
			return Polynomial[B]{}, fmt.Errorf("polynomial: value at index %d is from a different field", i)
		}
	}
	out := make([]field.Element, len(values))
	copy(out, values)
	return Polynomial[B]{field: f, values: out}, nil
}

var errEmpty = polyError("polynomial: values must be non-empty")

type polyError string

func (e polyError) Error() string { return string(e) }

// Len returns the number of stored values.
func (p Polynomial[B]) Len() int { return len(p.values) }

// Field returns the field the polynomial is defined over.
func (p Polynomial[B]) Field() *field.Field { return p.field }

// Values returns a copy of the underlying values, in whatever basis B tags.
func (p Polynomial[B]) Values() []field.Element {
	out := make([]field.Element, len(p.values))
	copy(out, p.values)
	return out
}

// PointMultiply multiplies two point-value polynomials elementwise. Both
// operands must be evaluated on the same domain.
func PointMultiply(a, b Polynomial[PointValue]) (Polynomial[PointValue], error) {
	if len(a.values) != len(b.values) {
		return Polynomial[PointValue]{}, polyError("polynomial: point-multiply length mismatch")
	}
	out := make([]field.Element, len(a.values))
	for i := range a.values {
		out[i] = a.values[i].Mul(b.values[i])
	}
	return Polynomial[PointValue]{field: a.field, values: out}, nil
}

// NaiveMultiply computes the product of a and b by the schoolbook
// convolution, returning a coefficient vector of length len(a)+len(b)-1.
func NaiveMultiply(a, b Polynomial[Coefficients]) Polynomial[Coefficients] {
	f := a.field
	out := make([]field.Element, len(a.values)+len(b.values)-1)
	for i := range out {
		out[i] = f.Zero()
	}
	for i, ca := range a.values {
		for j, cb := range b.values {
			out[i+j] = out[i+j].Add(ca.Mul(cb))
		}
	}
	return Polynomial[Coefficients]{field: f, values: out}
}

// EvaluateAt evaluates the coefficient polynomial p at x via Horner's
// method. Basis-specific operations are free functions because Go forbids
// methods on a single instantiation of a generic type.
func EvaluateAt(p Polynomial[Coefficients], x field.Element) field.Element {
	acc := p.field.Zero()
	for i := len(p.values) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.values[i])
	}
	return acc
}

// ToPointValue evaluates p at every point of domain by repeated Horner
// evaluation, producing the corresponding point-value polynomial.
func ToPointValue(p Polynomial[Coefficients], domain []field.Element) Polynomial[PointValue] {
	out := make([]field.Element, len(domain))
	for i, x := range domain {
		out[i] = EvaluateAt(p, x)
	}
	return Polynomial[PointValue]{field: p.field, values: out}
}
