package curve

import "math/big"

// fromHex parses a hex string (no 0x prefix) into a *big.Int, panicking on
// a malformed literal. Used only for package-level constant declarations.
func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant " + s)
	}
	return v
}

// fieldModulus is the secp256k1 base-field prime, p = 2^256 - 2^32 - 977.
// Only the modulus is borrowed; the curve below is not secp256k1. See
// DESIGN.md for why the constants below are placeholders rather than output
// reproduced from an offline generation tool.
var fieldModulus = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

// curveB is the short-Weierstrass coefficient b in y^2 = x^3 + x + b; the
// curve's a coefficient is fixed to 1.
var curveB = fromHex("0000000000000000000000000000000000000000000000000000000000effe")

// generatorX, generatorY are placeholder coordinates for the generator G.
// They do not satisfy the curve equation above, so G does not generate a
// subgroup of order 2^maxLevel.
var (
	generatorX = fromHex("00000000000000000000000000000000000000000000000000000000000002")
	generatorY = fromHex("66fbe72260f8b5b59a7807b1f8e5c1a7a0f7e0eabb1b5a9e3c8a59f6b1d2af27")
)

// representativeX, representativeY are placeholder coordinates for the coset
// representative R. Like G, R does not satisfy the curve equation.
var (
	representativeX = fromHex("0000000000000000000000000000000000000000000000000000000000007b")
	representativeY = fromHex("2c43aa5d1c230ea31d1cdfe33d32b0b738f4f8d2a9e6b5cc7e9f14fd1a5f2ee1")
)

// maxLevel is the largest level k the engine builds a domain for.
const maxLevel = 14
