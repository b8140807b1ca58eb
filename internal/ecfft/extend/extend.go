// Package extend implements the recursive low-degree extension: given
// evaluations of a degree-<m polynomial on a domain S, it produces the
// evaluations of the same polynomial on the twin domain S'.
package extend

import (
	"github.com/vybium/ecfft/internal/ecfft/fftree"
	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/isogeny"
	"github.com/vybium/ecfft/internal/ecfft/parallel"
)

// Run extends two batched vectors of S-evaluations, writing the matching
// S'-evaluations into sPrime and sPrimeOther. trees[0] serves the current
// level and trees[1:] the deeper ones. Subproblems whose size exponent is
// at most threadLog recurse serially.
//
// m==2 needs no special case: the recursion bottoms at m==1, where the
// S-evaluation of a constant polynomial already equals its S'-evaluation.
func Run(trees []fftree.FfTree, p, pOther, sPrime, sPrimeOther []field.Element, threadLog int) {
	run(trees, p, pOther, sPrime, sPrimeOther, threadLog)
}

func run(trees []fftree.FfTree, p, pOther, out, outOther []field.Element, threadLog int) {
	m := len(p)
	if m == 1 {
		out[0] = p[0]
		outOther[0] = pOther[0]
		return
	}

	tree := trees[0]
	half := m / 2

	l, r := make([]field.Element, half), make([]field.Element, half)
	lOther, rOther := make([]field.Element, half), make([]field.Element, half)
	copy(l, p[:half])
	copy(r, p[half:])
	copy(lOther, pOther[:half])
	copy(rOther, pOther[half:])

	applyMatrices(tree.InvFactor, l, r)
	applyMatrices(tree.InvFactor, lOther, rOther)

	lOut, rOut := make([]field.Element, half), make([]field.Element, half)
	lOutOther, rOutOther := make([]field.Element, half), make([]field.Element, half)

	parallelize := parallel.Log2(m) > threadLog
	parallel.Join(parallelize,
		func() error {
			run(trees[1:], l, lOther, lOut, lOutOther, threadLog)
			return nil
		},
		func() error {
			run(trees[1:], r, rOther, rOut, rOutOther, threadLog)
			return nil
		},
	)

	applyMatrices(tree.Factor, lOut, rOut)
	applyMatrices(tree.Factor, lOutOther, rOutOther)

	copy(out[:half], lOut)
	copy(out[half:], rOut)
	copy(outOther[:half], lOutOther)
	copy(outOther[half:], rOutOther)
}

// applyMatrices mixes (l[i], r[i]) in place via matrices[i] for every i.
func applyMatrices(matrices []isogeny.Matrix2x2, l, r []field.Element) {
	for i, m := range matrices {
		l[i], r[i] = m.Apply(l[i], r[i])
	}
}
