package cache

import (
	"testing"

	"github.com/vybium/ecfft/internal/ecfft/curve"
	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/isogeny"
)

// layerCoset builds the size-2^k coset {representative + i*generator : i in
// [0, 2^k)} projected to x-coordinates.
func layerCoset(k int) []field.Element {
	n := 1 << uint(k)
	rep := curve.Representative()
	gen := curve.Generator()
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		p := rep.AddAffine(gen.ScalarMul(curve.Fp.NewFromInt64(int64(i))).Affine())
		out[i] = p.Affine().X
	}
	return out
}

func TestBuildRejectsWrongLength(t *testing.T) {
	if _, err := Build(4, layerCoset(3), 0); err == nil {
		t.Fatal("expected error for mismatched coset length")
	}
}

func TestBuildProducesKTrees(t *testing.T) {
	k := 4
	c, err := Build(k, layerCoset(k), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(c.Trees) != k {
		t.Fatalf("len(Trees) = %d, want %d", len(c.Trees), k)
	}
	if !c.Trees[k-1].IsTerminal() {
		t.Error("last tree should be terminal")
	}
	for i := 0; i < k-1; i++ {
		if c.Trees[i].IsTerminal() {
			t.Errorf("tree[%d] should not be terminal", i)
		}
	}
}

func TestPoweredCosetMatchesDefinition(t *testing.T) {
	k := 4
	c, err := Build(k, layerCoset(k), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n := 1 << uint(k)
	for j, x := range c.Coset {
		want := x.Pow(uint64(n / 2))
		if !c.PoweredCoset[j].Equal(want) {
			t.Errorf("PoweredCoset[%d] != Coset[%d]^(n/2)", j, j)
		}
	}
}

func TestTreeDomainsCoverCoset(t *testing.T) {
	k := 5
	coset := layerCoset(k)
	c, err := Build(k, coset, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	top := c.Trees[0]
	n := 1 << uint(k)
	if len(top.S)+len(top.SPrime) != n {
		t.Fatalf("top tree domain size = %d, want %d", len(top.S)+len(top.SPrime), n)
	}
	for i, x := range coset {
		if i%2 == 0 {
			if !top.S[i/2].Equal(x) {
				t.Errorf("S[%d] != coset[%d]", i/2, i)
			}
		} else {
			if !top.SPrime[i/2].Equal(x) {
				t.Errorf("SPrime[%d] != coset[%d]", i/2, i)
			}
		}
	}
}

// TestNextLevelDomainIsIsogenyImage checks that each level's domain halves
// shrink by exactly half and that the next level's S is psi_d
// elementwise-applied to the first half of the current level's S, and
// likewise for S'.
func TestNextLevelDomainIsIsogenyImage(t *testing.T) {
	k := 5
	c, err := Build(k, layerCoset(k), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for level := 0; level < k-1; level++ {
		cur := c.Trees[level]
		next := c.Trees[level+1]
		if len(next.S) != len(cur.S)/2 || len(next.SPrime) != len(cur.SPrime)/2 {
			t.Fatalf("level %d: next domain halves should be half the size of this level's", level)
		}
		psi := isogeny.ForDepth(level + 1)
		for i := range next.S {
			if !next.S[i].Equal(psi.Evaluate(cur.S[i])) {
				t.Errorf("level %d: next S[%d] != psi(S[%d])", level, i, i)
			}
			if !next.SPrime[i].Equal(psi.Evaluate(cur.SPrime[i])) {
				t.Errorf("level %d: next SPrime[%d] != psi(SPrime[%d])", level, i, i)
			}
		}
	}
}
