package primes

import "math/bits"

// IsStrongProbablePrime reports whether n passes the strong
// pseudoprime criterion for the given witness base.
//
// The base must be prime. The test relies on that assumption to decide
// coprimality with a single divisibility check and does not verify it.
// Every prime n passes for every base coprime to it; some composites
// (strong pseudoprimes) pass for specific bases, which is why IsPrime
// combines several bases.
func IsStrongProbablePrime(base, n uint32) bool {
	if n <= 2 {
		return n == 2
	}

	if n&1 == 0 {
		return false
	}

	// base is prime, so a prime n divisible by it must equal it. Any
	// other multiple is composite and not coprime to the base, which
	// makes the Fermat criterion inapplicable.
	if n%base == 0 {
		return n == base
	}

	// Decompose n-1 = d * 2^e with d odd. n is odd and greater than 1,
	// so n-1 is even and non-zero and e >= 1.
	e := bits.TrailingZeros32(n - 1)

	// If n is prime then base^(n-1) = 1 mod n (Fermat), and the only
	// square roots of 1 mod a prime are 1 and n-1. Squaring up from
	// base^d must therefore reach 1, and the value just before the
	// first 1 has to be n-1.
	power := PowMod(base, (n-1)>>e, n)

	// Starting at 1 means every squaring stays at 1.
	if power == 1 {
		return true
	}

	// Otherwise the chain is only valid if it passes through n-1.
	for i := 0; i < e; i++ {
		if power == n-1 {
			return true
		}
		power = mulMod(power, power, n)
	}

	return false
}
