// Package primes implements a deterministic primality test for 32-bit
// unsigned integers and a counter for the primes in a range.
//
// The oracle filters composites by trial division with the odd
// integers up to 61, then applies a Miller-Rabin strong probable prime
// test for the fixed witness bases 2, 7 and 61. That basis is a
// published deterministic set for the 32-bit domain, so the verdict is
// exact (zero error) for every uint32, not probabilistic.
//
// Basic usage:
//
//	if primes.IsPrime(1000003) {
//	    // 1000003 is prime
//	}
//	total := primes.Count(0, 99999999)
package primes

// trialDivisionBound is the largest odd divisor tried before the
// strong probable prime tests. Every prime up to this bound is
// classified by trial division alone, so the probable prime tests only
// ever see candidates above it.
const trialDivisionBound = 61

// witnessBases is the deterministic Miller-Rabin basis for uint32:
// no composite below 2^32 is a strong pseudoprime to all three.
var witnessBases = [3]uint32{2, 7, 61}

// IsPrime reports whether n is prime. The result is exact for the full
// uint32 range.
func IsPrime(n uint32) bool {
	// Handle 0, 1 and 2.
	if n <= 2 {
		return n == 2
	}

	// Filter out evens.
	if n&1 == 0 {
		return false
	}

	// Filter out multiples of small primes. Candidates equal to a
	// small odd divisor are prime; multiples of one are not.
	for i := uint32(3); i <= trialDivisionBound; i += 2 {
		if n == i {
			return true
		}
		if n%i == 0 {
			return false
		}
	}

	// n > 61 with no factor below 61. All three bases must agree.
	for _, base := range witnessBases {
		if !IsStrongProbablePrime(base, n) {
			return false
		}
	}
	return true
}
