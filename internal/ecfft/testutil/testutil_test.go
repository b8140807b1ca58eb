package testutil

import (
	"math/big"
	"testing"

	"github.com/vybium/ecfft/internal/ecfft/field"
)

var testField = field.MustNew(big.NewInt(2147483647))

func TestDeterministicElementsIsReproducible(t *testing.T) {
	a := DeterministicElements(testField, 42, 8)
	b := DeterministicElements(testField, 42, 8)
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("element %d differs across calls with the same seed", i)
		}
	}
}

func TestDeterministicElementsDiffersBySeed(t *testing.T) {
	a := DeterministicElements(testField, 1, 4)
	b := DeterministicElements(testField, 2, 4)
	same := true
	for i := range a {
		if !a[i].Equal(b[i]) {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical vectors")
	}
}

func TestZeroPolynomialIsAllZero(t *testing.T) {
	zeros := ZeroPolynomial(testField, 5)
	for i, z := range zeros {
		if !z.IsZero() {
			t.Errorf("element %d is not zero", i)
		}
	}
}
