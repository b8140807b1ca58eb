// Package cache precomputes the chain of FfTrees for one coset, together
// with the coset itself and its per-element (n/2)-th powers.
package cache

import (
	"fmt"

	"github.com/vybium/ecfft/internal/ecfft/fftree"
	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/isogeny"
	"github.com/vybium/ecfft/internal/ecfft/parallel"
)

// Cache is the precomputed state for one evaluation level. Once built it
// is read-only and safe for concurrent use.
type Cache struct {
	K            int
	Trees        []fftree.FfTree
	Coset        []field.Element
	PoweredCoset []field.Element
}

// Build constructs the cache for level k from a coset of length 2^k. The
// two per-level factor builds run concurrently while the remaining depth
// exceeds threadLog.
func Build(k int, coset []field.Element, threadLog int) (*Cache, error) {
	n := 1 << uint(k)
	if len(coset) != n {
		return nil, fmt.Errorf("cache: coset length %d != 2^%d", len(coset), k)
	}
	if k < 1 {
		return nil, fmt.Errorf("cache: k must be >= 1, got %d", k)
	}

	s := make([]field.Element, n/2)
	sPrime := make([]field.Element, n/2)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			s[i/2] = coset[i]
		} else {
			sPrime[i/2] = coset[i]
		}
	}

	halfExp := uint64(n / 2)
	poweredCoset := make([]field.Element, n)
	for j, c := range coset {
		poweredCoset[j] = c.Pow(halfExp)
	}

	trees := make([]fftree.FfTree, k)

	for d := 1; d < k; d++ {
		m := 1 << uint(k-d-1)
		exp := uint64(m - 1)
		psi := isogeny.ForDepth(d)

		var invFactor, factor []isogeny.Matrix2x2
		parallelBuild := (k - d) > threadLog
		err := parallel.Join(parallelBuild,
			func() error { invFactor = psi.BuildFactors(s, m, exp); return nil },
			func() error { factor = psi.BuildFactors(sPrime, m, exp); return nil },
		)
		if err != nil {
			return nil, err
		}

		trees[d-1] = fftree.FfTree{S: s, SPrime: sPrime, Factor: factor, InvFactor: invFactor}

		s = psi.HalfDomain(s, m)
		sPrime = psi.HalfDomain(sPrime, m)
	}
	trees[k-1] = fftree.Terminal(s, sPrime)

	return &Cache{K: k, Trees: trees, Coset: coset, PoweredCoset: poweredCoset}, nil
}

// Tree returns the FfTree recorded at the given recursion depth (0-indexed,
// depth 0 is the top of this cache's chain).
func (c *Cache) Tree(depth int) fftree.FfTree {
	return c.Trees[depth]
}
