// Package field implements the prime field Fp the evaluation domain lives
// over. Elements are immutable big.Int-backed value types.
package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Field is a prime field defined by its modulus.
type Field struct {
	modulus *big.Int
}

// Element is a value in a Field. The zero Element is invalid; construct one
// through Field.NewElement or one of its convenience wrappers.
type Element struct {
	field *Field
	value *big.Int
}

// New builds a Field for the given modulus. The modulus is not checked for
// primality; callers supply a known prime.
func New(modulus *big.Int) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("field: modulus must be greater than 2")
	}
	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// MustNew is New but panics on error, for package-level field constants.
func MustNew(modulus *big.Int) *Field {
	f, err := New(modulus)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of the field's modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Equal reports whether two Field values share the same modulus.
func (f *Field) Equal(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// NewElement reduces value modulo the field's modulus and wraps it.
func (f *Field) NewElement(value *big.Int) Element {
	normalized := new(big.Int).Mod(value, f.modulus)
	return Element{field: f, value: normalized}
}

// NewFromInt64 is a convenience wrapper around NewElement.
func (f *Field) NewFromInt64(value int64) Element {
	return f.NewElement(big.NewInt(value))
}

// NewFromUint64 is a convenience wrapper around NewElement.
func (f *Field) NewFromUint64(value uint64) Element {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// NewFromBytes interprets data as a big-endian unsigned integer.
func (f *Field) NewFromBytes(data []byte) Element {
	return f.NewElement(new(big.Int).SetBytes(data))
}

// Random draws a uniformly distributed element using a CSPRNG.
func (f *Field) Random() (Element, error) {
	value, err := rand.Int(rand.Reader, f.modulus)
	if err != nil {
		return Element{}, fmt.Errorf("field: random element: %w", err)
	}
	return f.NewElement(value), nil
}

// Zero returns the additive identity of the field.
func (f *Field) Zero() Element { return f.NewElement(big.NewInt(0)) }

// One returns the multiplicative identity of the field.
func (f *Field) One() Element { return f.NewElement(big.NewInt(1)) }

// Field returns the field an element belongs to.
func (e Element) Field() *Field { return e.field }

// Big returns a copy of the element's value.
func (e Element) Big() *big.Int { return new(big.Int).Set(e.value) }

func (e Element) checkField(other Element, op string) {
	if !e.field.Equal(other.field) {
		panic(fmt.Sprintf("field: cannot %s elements from different fields", op))
	}
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	e.checkField(other, "add")
	return e.field.NewElement(new(big.Int).Add(e.value, other.value))
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	e.checkField(other, "subtract")
	return e.field.NewElement(new(big.Int).Sub(e.value, other.value))
}

// Neg returns -e.
func (e Element) Neg() Element {
	return e.field.NewElement(new(big.Int).Neg(e.value))
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	e.checkField(other, "multiply")
	return e.field.NewElement(new(big.Int).Mul(e.value, other.value))
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Inv returns the multiplicative inverse of e. Panics if e is zero.
func (e Element) Inv() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	inv := new(big.Int).ModInverse(e.value, e.field.modulus)
	if inv == nil {
		panic("field: value has no inverse (modulus not prime?)")
	}
	return e.field.NewElement(inv)
}

// Div returns e / other. Panics if other is zero.
func (e Element) Div(other Element) Element {
	e.checkField(other, "divide")
	return e.Mul(other.Inv())
}

// Pow raises e to a uint64 exponent.
func (e Element) Pow(exp uint64) Element {
	return e.field.NewElement(new(big.Int).Exp(e.value, new(big.Int).SetUint64(exp), e.field.modulus))
}

// PowBig raises e to an arbitrary-precision exponent.
func (e Element) PowBig(exp *big.Int) Element {
	return e.field.NewElement(new(big.Int).Exp(e.value, exp, e.field.modulus))
}

// Equal reports value equality within the same field.
func (e Element) Equal(other Element) bool {
	if !e.field.Equal(other.field) {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.value.Sign() == 0 }

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool { return e.value.Cmp(big.NewInt(1)) == 0 }

// String renders the element's underlying integer in base 10.
func (e Element) String() string { return e.value.String() }

// Bytes returns the big-endian byte representation of the element's value.
func (e Element) Bytes() []byte { return e.value.Bytes() }

// Sqrt computes a square root of e via Tonelli-Shanks, returning false if
// e is not a quadratic residue.
func (e Element) Sqrt() (Element, bool) {
	if e.IsZero() {
		return e.field.Zero(), true
	}
	p := e.field.modulus
	one := big.NewInt(1)

	exp := new(big.Int).Sub(p, one)
	exp.Div(exp, big.NewInt(2))
	if new(big.Int).Exp(e.value, exp, p).Cmp(one) != 0 {
		return Element{}, false
	}

	if new(big.Int).Mod(p, big.NewInt(4)).Cmp(big.NewInt(3)) == 0 {
		exp := new(big.Int).Add(p, one)
		exp.Div(exp, big.NewInt(4))
		return e.field.NewElement(new(big.Int).Exp(e.value, exp, p)), true
	}

	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Div(q, big.NewInt(2))
		s++
	}

	z := big.NewInt(2)
	for {
		legendreExp := new(big.Int).Sub(p, one)
		legendreExp.Div(legendreExp, big.NewInt(2))
		if new(big.Int).Exp(z, legendreExp, p).Cmp(one) != 0 {
			break
		}
		z.Add(z, one)
	}

	c := new(big.Int).Exp(z, q, p)
	qPlusOneHalf := new(big.Int).Div(new(big.Int).Add(q, one), big.NewInt(2))
	x := new(big.Int).Exp(e.value, qPlusOneHalf, p)
	t := new(big.Int).Exp(e.value, q, p)
	m := s

	for t.Cmp(one) != 0 {
		i := 1
		for i < m {
			if new(big.Int).Exp(t, new(big.Int).Lsh(one, uint(i)), p).Cmp(one) == 0 {
				break
			}
			i++
		}
		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, uint(m-i-1)), p)
		x.Mul(x, b).Mod(x, p)
		c.Exp(b, big.NewInt(2), p)
		t.Mul(t, c).Mod(t, p)
		m = i
	}

	return e.field.NewElement(x), true
}
