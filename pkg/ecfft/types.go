package ecfft

import (
	"github.com/vybium/ecfft/internal/ecfft/engine"
	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/polynomial"
)

// FieldElement is a value in Fp, the prime field the evaluation domain lives
// over. This is the public type for field elements used throughout the
// package.
type FieldElement = field.Element

// Field represents a finite field.
type Field = field.Field

// Basis marks which representation a Polynomial's values are in.
type Basis = polynomial.Basis

// Coefficients tags a Polynomial holding coefficients, lowest degree first.
type Coefficients = polynomial.Coefficients

// PointValue tags a Polynomial holding evaluations on a domain.
type PointValue = polynomial.PointValue

// Polynomial is a basis-tagged vector of field elements.
type Polynomial[B Basis] = polynomial.Polynomial[B]

// NewPolynomial builds a coefficient-form polynomial over f.
func NewPolynomial(f *Field, values []FieldElement) (Polynomial[Coefficients], error) {
	p, err := polynomial.New[Coefficients](f, values)
	if err != nil {
		return p, newError(ErrInvalidPolynomial, "new polynomial", err)
	}
	return p, nil
}

// MaxLevel is the largest k this package's fixed curve supports.
const MaxLevel = engine.MaxLevel
