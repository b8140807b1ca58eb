package ecfft

import (
	"github.com/vybium/ecfft/internal/ecfft/engine"
)

// EcFft evaluates polynomials of degree < 2^k, for any k in [1, MaxLevel],
// on a fixed per-level elliptic-curve coset. Evaluate calls only read the
// precomputed caches and are safe to run concurrently.
type EcFft struct {
	inner *engine.EcFft
}

// New builds an EcFft from cfg, precomputing caches for every supported
// level. This is the expensive one-time step; expect it to take seconds.
func New(cfg *Config) (*EcFft, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inner, err := engine.New(engine.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, newError(ErrConstruction, "building evaluation caches", err)
	}
	return &EcFft{inner: inner}, nil
}

// Evaluate returns poly evaluated at every point of the level-k coset.
// poly must have length 2^k; the result has the same length.
func (e *EcFft) Evaluate(k int, poly Polynomial[Coefficients]) (Polynomial[PointValue], error) {
	var none Polynomial[PointValue]
	if k < 1 || k > MaxLevel {
		return none, newError(ErrInvalidLevel, "evaluate: level out of range", nil)
	}
	if poly.Len() != 1<<uint(k) {
		return none, newError(ErrLengthMismatch, "evaluate: polynomial length is not 2^k", nil)
	}
	out, err := e.inner.Evaluate(k, poly)
	if err != nil {
		return none, newError(ErrInvalidPolynomial, "evaluate: rejected polynomial", err)
	}
	return out, nil
}

// Field returns the prime field the engine evaluates over.
func (e *EcFft) Field() *Field {
	return e.inner.Field()
}

// Coset returns a copy of the level-k evaluation domain: Coset(k)[j] is the
// point Evaluate(k, ...)[j] is computed at.
func (e *EcFft) Coset(k int) ([]FieldElement, error) {
	out, err := e.inner.Coset(k)
	if err != nil {
		return nil, newError(ErrInvalidLevel, "coset: invalid level", err)
	}
	return out, nil
}
