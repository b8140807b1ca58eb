// Package ecfft provides an elliptic-curve Fast Fourier Transform (ECFFT)
// evaluation engine for fields that lack a smooth multiplicative subgroup of
// the order a classical FFT needs.
//
// # Features
//
// - Evaluation of a degree-<2^k polynomial on a fixed curve-derived coset,
// for any k up to MaxLevel, in O(n log^2 n) field operations
// - Precomputed per-level caches built once and shared safely across
// concurrent Evaluate calls
// - Fork-join parallel recursion, tuned to the host's CPU count
//
// # Quick Start
//
// Creating an engine and evaluating a polynomial:
//
//	e, err := ecfft.New(ecfft.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	k := 10
//	coeffs := make([]ecfft.FieldElement, 1<<k) // lowest degree first
//	// ... fill coeffs ...
//	poly, err := ecfft.NewPolynomial(e.Field(), coeffs)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	evaluations, err := e.Evaluate(k, poly)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// ecfft uses a hybrid public/private layout:
//
//   - pkg/ecfft/: public API (this package)
//   - internal/ecfft/: field, curve, isogeny, and recursion internals
//
// The public API is stable; implementation details in internal/ can change
// without breaking it. Evaluation recurses through two primitives: EXTEND,
// which low-degree-extends evaluations from one domain half to its twin, and
// ENTER, which drives the outer coefficient-to-evaluation recursion by
// repeatedly combining EXTEND's output at each level of a precomputed
// isogeny chain.
//
// # References
//
// - Ben-Sasson, Carmon, Kopparty, Levit, "Elliptic Curve Fast Fourier
// Transform (ECFFT) Part I": https://arxiv.org/abs/2107.08473
package ecfft
