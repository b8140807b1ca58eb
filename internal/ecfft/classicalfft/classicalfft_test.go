package classicalfft

import (
	"math/big"
	"testing"

	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/polynomial"
)

// testField is the Fermat prime 65537 = 2^16 + 1. Its multiplicative group
// has order 2^16 with 3 as a primitive root, enough 2-adicity to exercise
// transforms up to k=16.
var testField = field.MustNew(big.NewInt(65537))

func findRoot(t *testing.T, k int) field.Element {
	t.Helper()
	// 3 generates the full multiplicative group of this field; raising it
	// to (p-1)/2^k yields a primitive 2^k-th root of unity.
	p := testField.Modulus()
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Div(exp, big.NewInt(int64(uint64(1)<<uint(k))))
	g := testField.NewFromInt64(3)
	return g.PowBig(exp)
}

func e(v int64) field.Element { return testField.NewFromInt64(v) }

func TestEvaluateThenInterpolateRoundTrips(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5} {
		root := findRoot(t, k)
		f, err := New(testField, k, root, 0)
		if err != nil {
			t.Fatalf("k=%d: New: %v", k, err)
		}

		n := 1 << uint(k)
		original := make([]field.Element, n)
		for i := range original {
			original[i] = e(int64(i*7 + 1))
		}

		values := make([]field.Element, n)
		copy(values, original)

		if err := f.Evaluate(values); err != nil {
			t.Fatalf("k=%d: Evaluate: %v", k, err)
		}
		if err := f.Interpolate(values); err != nil {
			t.Fatalf("k=%d: Interpolate: %v", k, err)
		}

		for i := range original {
			if !values[i].Equal(original[i]) {
				t.Errorf("k=%d: round trip mismatch at %d: got %s, want %s", k, i, values[i], original[i])
			}
		}
	}
}

// TestTransformMultiplyMatchesNaiveConvolution checks the multiplication
// route the transform enables: pad two coefficient vectors to a common
// power-of-two length, Evaluate both, multiply pointwise, Interpolate, and
// compare the result against the schoolbook convolution.
func TestTransformMultiplyMatchesNaiveConvolution(t *testing.T) {
	k := 3
	n := 1 << uint(k)
	root := findRoot(t, k)
	f, err := New(testField, k, root, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	aCoeffs := []field.Element{e(1), e(2), e(3)}
	bCoeffs := []field.Element{e(4), e(5)}

	pad := func(values []field.Element) []field.Element {
		out := make([]field.Element, n)
		for i := range out {
			out[i] = testField.Zero()
		}
		copy(out, values)
		return out
	}

	a := pad(aCoeffs)
	b := pad(bCoeffs)
	if err := f.Evaluate(a); err != nil {
		t.Fatalf("Evaluate(a): %v", err)
	}
	if err := f.Evaluate(b); err != nil {
		t.Fatalf("Evaluate(b): %v", err)
	}
	for i := range a {
		a[i] = a[i].Mul(b[i])
	}
	if err := f.Interpolate(a); err != nil {
		t.Fatalf("Interpolate: %v", err)
	}

	pa, err := polynomial.New[polynomial.Coefficients](testField, aCoeffs)
	if err != nil {
		t.Fatalf("polynomial.New(a): %v", err)
	}
	pb, err := polynomial.New[polynomial.Coefficients](testField, bCoeffs)
	if err != nil {
		t.Fatalf("polynomial.New(b): %v", err)
	}
	want := pad(polynomial.NaiveMultiply(pa, pb).Values())

	for i := range a {
		if !a[i].Equal(want[i]) {
			t.Errorf("coefficient %d = %s, want %s", i, a[i], want[i])
		}
	}
}

func TestNewRejectsNonRootOfUnity(t *testing.T) {
	notARoot := e(5)
	if _, err := New(testField, 4, notARoot, 0); err == nil {
		t.Fatal("expected error for non-root input")
	}
}

func TestEvaluateRejectsWrongLength(t *testing.T) {
	root := findRoot(t, 3)
	f, err := New(testField, 3, root, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := f.Evaluate(make([]field.Element, 4)); err == nil {
		t.Fatal("expected error for mismatched length")
	}
}
