package primes

// mulMod returns (a * b) mod m.
// Both operands may be as large as 2^32 - 1, so the product is taken
// in 64-bit precision before reduction. Reducing a 32-bit product
// would silently overflow; this widening is a correctness requirement,
// not an optimization.
func mulMod(a, b, m uint32) uint32 {
	return uint32(uint64(a) * uint64(b) % uint64(m))
}

// PowMod returns base^exponent mod modulus using right-to-left binary
// exponentiation (square and multiply). modulus must be non-zero; the
// probable prime test only calls it with an odd candidate >= 3.
func PowMod(base, exponent, modulus uint32) uint32 {
	power := base % modulus
	result := uint32(1)
	for exponent != 0 {
		if exponent&1 == 1 {
			result = mulMod(result, power, modulus)
		}
		power = mulMod(power, power, modulus)
		exponent >>= 1
	}
	return result
}
