// Package testutil provides deterministic test-vector generation. The same
// seed always produces the same field elements, so test failures are
// reproducible without stashing golden files.
package testutil

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/vybium/ecfft/internal/ecfft/field"
)

// DeterministicElements derives n field elements from seed. Element i is
// the field reduction of blake2b(seed || i).
func DeterministicElements(f *field.Field, seed uint64, n int) []field.Element {
	out := make([]field.Element, n)
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], seed)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(buf[8:], uint64(i))
		digest := blake2b.Sum256(buf[:])
		out[i] = f.NewFromBytes(digest[:])
	}
	return out
}

// ZeroPolynomial returns the length-n all-zero vector in f.
func ZeroPolynomial(f *field.Field, n int) []field.Element {
	out := make([]field.Element, n)
	for i := range out {
		out[i] = f.Zero()
	}
	return out
}
