package polynomial

import (
	"math/big"
	"testing"

	"github.com/vybium/ecfft/internal/ecfft/field"
)

var testField = field.MustNew(big.NewInt(97))

func e(v int64) field.Element { return testField.NewFromInt64(v) }

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New[Coefficients](testField, nil); err == nil {
		t.Fatal("expected error for empty values")
	}
}

func TestNewRejectsFieldMismatch(t *testing.T) {
	other := field.MustNew(big.NewInt(101))
	mismatched := []field.Element{other.NewFromInt64(1)}
	if _, err := New[Coefficients](testField, mismatched); err == nil {
		t.Fatal("expected error for field mismatch")
	}
}

func TestEvaluateAtMatchesHandComputedHorner(t *testing.T) {
	// p(x) = 3 + 5x + 2x^2
	p, err := New[Coefficients](testField, []field.Element{e(3), e(5), e(2)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x := e(4)
	got := EvaluateAt(p, x)
	want := e(3 + 5*4 + 2*16)
	if !got.Equal(want) {
		t.Errorf("EvaluateAt = %s, want %s", got, want)
	}
}

func TestToPointValueMatchesPerPointEvaluation(t *testing.T) {
	p, err := New[Coefficients](testField, []field.Element{e(1), e(1)}) // p(x) = 1 + x
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	domain := []field.Element{e(0), e(1), e(2), e(3)}
	pv := ToPointValue(p, domain)
	if pv.Len() != len(domain) {
		t.Fatalf("len(pv) = %d, want %d", pv.Len(), len(domain))
	}
	values := pv.Values()
	for i, x := range domain {
		if !values[i].Equal(EvaluateAt(p, x)) {
			t.Errorf("values[%d] = %s, want %s", i, values[i], EvaluateAt(p, x))
		}
	}
}

func TestPointMultiplyMatchesElementwiseProduct(t *testing.T) {
	a, _ := New[PointValue](testField, []field.Element{e(2), e(3), e(5)})
	b, _ := New[PointValue](testField, []field.Element{e(7), e(11), e(13)})
	c, err := PointMultiply(a, b)
	if err != nil {
		t.Fatalf("PointMultiply: %v", err)
	}
	want := []int64{14, 33, 65}
	values := c.Values()
	for i, w := range want {
		if !values[i].Equal(e(w)) {
			t.Errorf("values[%d] = %s, want %d", i, values[i], w)
		}
	}
}

func TestPointMultiplyRejectsLengthMismatch(t *testing.T) {
	a, _ := New[PointValue](testField, []field.Element{e(1), e(2)})
	b, _ := New[PointValue](testField, []field.Element{e(1)})
	if _, err := PointMultiply(a, b); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestNaiveMultiplyMatchesSchoolbookConvolution(t *testing.T) {
	// (1 + x) * (2 + 3x) = 2 + 5x + 3x^2
	a, _ := New[Coefficients](testField, []field.Element{e(1), e(1)})
	b, _ := New[Coefficients](testField, []field.Element{e(2), e(3)})
	c := NaiveMultiply(a, b)
	want := []int64{2, 5, 3}
	values := c.Values()
	if len(values) != len(want) {
		t.Fatalf("len(values) = %d, want %d", len(values), len(want))
	}
	for i, w := range want {
		if !values[i].Equal(e(w)) {
			t.Errorf("values[%d] = %s, want %d", i, values[i], w)
		}
	}
}
