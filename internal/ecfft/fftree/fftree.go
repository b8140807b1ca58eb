// Package fftree defines the per-level record of the extension recursion:
// two half-domains and their forward/inverse factor matrices.
package fftree

import (
	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/isogeny"
)

// FfTree holds one recursion level's domain halves and factor matrices.
type FfTree struct {
	// S, SPrime are the two half-domains at this level, each of length
	// n/2 where n = 2^(k-level).
	S, SPrime []field.Element

	// Factor is applied after the recursive calls return, InvFactor
	// before recursing. Both have length n/4; the terminal tree carries
	// both as nil.
	Factor, InvFactor []isogeny.Matrix2x2
}

// IsTerminal reports whether t is the bottom-of-chain tree: singleton
// domains with no factor matrices.
func (t FfTree) IsTerminal() bool {
	return len(t.Factor) == 0 && len(t.InvFactor) == 0
}

// Terminal builds the bottom-of-chain tree: singleton domains, no matrices.
func Terminal(s, sPrime []field.Element) FfTree {
	return FfTree{S: s, SPrime: sPrime}
}
