// Package engine implements ENTER, the outer coefficient-to-evaluations
// recursion, and EcFft, the driver that owns one cache per supported level
// and dispatches evaluate calls to ENTER.
package engine

import (
	"fmt"

	"github.com/vybium/ecfft/internal/ecfft/cache"
	"github.com/vybium/ecfft/internal/ecfft/curve"
	"github.com/vybium/ecfft/internal/ecfft/extend"
	"github.com/vybium/ecfft/internal/ecfft/field"
	"github.com/vybium/ecfft/internal/ecfft/parallel"
	"github.com/vybium/ecfft/internal/ecfft/polynomial"
)

// MaxLevel is the largest k this engine's fixed curve supports.
const MaxLevel = 14

// EcFft owns one cache per level k in [1, MaxLevel], built once at
// construction and immutable thereafter.
type EcFft struct {
	caches    []*cache.Cache // caches[MaxLevel-k] is the cache for level k
	threadLog int
}

// Option configures EcFft construction.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers overrides the worker count used to derive the parallelism
// threshold (default: parallel.DefaultWorkers()).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// New precomputes caches for every level from 1 to MaxLevel against the
// fixed curve's top-level coset, subsampled by stride per level. This is
// the expensive one-time construction; expect it to take seconds.
func New(opts ...Option) (*EcFft, error) {
	o := options{workers: parallel.DefaultWorkers()}
	for _, opt := range opts {
		opt(&o)
	}
	threadLog := parallel.ThreadLog(o.workers)

	topCoset := layerCoset(MaxLevel)

	caches := make([]*cache.Cache, MaxLevel)
	for k := MaxLevel; k >= 1; k-- {
		step := 1 << uint(MaxLevel-k)
		coset := make([]field.Element, 1<<uint(k))
		for i := range coset {
			coset[i] = topCoset[i*step]
		}
		c, err := cache.Build(k, coset, threadLog)
		if err != nil {
			return nil, fmt.Errorf("engine: building cache for k=%d: %w", k, err)
		}
		caches[MaxLevel-k] = c
	}

	return &EcFft{caches: caches, threadLog: threadLog}, nil
}

// layerCoset computes {representative + i*generator : i in [0, 2^k)}
// projected to x-coordinates, walking the coset by repeated addition rather
// than a fresh scalar multiplication per index.
func layerCoset(k int) []field.Element {
	n := 1 << uint(k)
	gen := curve.Generator().Affine()
	acc := curve.Representative()
	out := make([]field.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, acc.Affine().X)
		acc = acc.AddAffine(gen)
	}
	return out
}

// cacheForLevel returns the precomputed cache serving level k.
func (e *EcFft) cacheForLevel(k int) (*cache.Cache, error) {
	if k < 1 || k > MaxLevel {
		return nil, fmt.Errorf("engine: level k=%d out of range [1,%d]", k, MaxLevel)
	}
	return e.caches[MaxLevel-k], nil
}

// Evaluate runs the evaluation recursion against the level-k cache. poly
// must have length 2^k; entry j of the result is poly evaluated at the
// j-th point of the level-k coset.
func (e *EcFft) Evaluate(k int, poly polynomial.Polynomial[polynomial.Coefficients]) (polynomial.Polynomial[polynomial.PointValue], error) {
	var none polynomial.Polynomial[polynomial.PointValue]
	c, err := e.cacheForLevel(k)
	if err != nil {
		return none, err
	}
	if poly.Len() != 1<<uint(k) {
		return none, fmt.Errorf("engine: poly length %d != 2^%d", poly.Len(), k)
	}
	if !poly.Field().Equal(curve.Fp) {
		return none, fmt.Errorf("engine: poly is not over the engine's field")
	}

	out := poly.Values()
	enter(out, c, e.threadLog)
	return polynomial.New[polynomial.PointValue](curve.Fp, out)
}

// Field returns the prime field the engine evaluates over.
func (e *EcFft) Field() *field.Field { return curve.Fp }

// Coset returns a copy of the level-k evaluation domain, output[j] matching
// the point used by Evaluate(k, ...)[j].
func (e *EcFft) Coset(k int) ([]field.Element, error) {
	c, err := e.cacheForLevel(k)
	if err != nil {
		return nil, err
	}
	out := make([]field.Element, len(c.Coset))
	copy(out, c.Coset)
	return out, nil
}

// enter rewrites p (length 2^k) in place with its evaluations on c's coset.
func enter(p []field.Element, c *cache.Cache, threadLog int) {
	k := parallel.Log2(len(p))
	enterRec(p, c, k, threadLog)
}

func enterRec(p []field.Element, c *cache.Cache, k, threadLog int) {
	treeIndex := c.K - k
	tree := c.Trees[treeIndex]

	if k == 1 {
		// Degree-1 evaluation at the terminal tree's two domain points.
		// Both outputs read the old p[0] and p[1], so snapshot first.
		x0, x1 := tree.S[0], tree.SPrime[0]
		a := x0.Mul(p[1])
		b := x1.Mul(p[1])
		p0 := p[0]
		p[1] = p0.Add(b)
		p[0] = p0.Add(a)
		return
	}

	m := len(p) / 2
	low, high := p[:m], p[m:]

	parallelize := k > threadLog
	parallel.Join(parallelize,
		func() error { enterRec(low, c, k-1, threadLog); return nil },
		func() error { enterRec(high, c, k-1, threadLog); return nil },
	)

	lowS := make([]field.Element, m)
	highS := make([]field.Element, m)
	copy(lowS, low)
	copy(highS, high)

	trees := c.Trees[treeIndex:]
	lowSPrime := make([]field.Element, m)
	highSPrime := make([]field.Element, m)
	extend.Run(trees, lowS, highS, lowSPrime, highSPrime, threadLog)

	// x^m collapses to domain[j]^m with m the current recursion's
	// half-size, not the fixed top-level exponent. See DESIGN.md.
	for i := 0; i < m; i++ {
		pcEven := tree.S[i].Pow(uint64(m))
		pcOdd := tree.SPrime[i].Pow(uint64(m))
		p[2*i] = lowS[i].Add(pcEven.Mul(highS[i]))
		p[2*i+1] = lowSPrime[i].Add(pcOdd.Mul(highSPrime[i]))
	}
}
