// Package prime implements primality testing and prime sieving: plain
// trial division, a bitset-backed sieve of Eratosthenes, and the linear
// Euler sieve with its minimum-prime-factor table.
package prime

import (
	"golang.org/x/exp/constraints"

	"github.com/libtql/numth/numeric"
)

// IsPrime reports whether n is prime, by trial division. Values below 2
// (negatives included) are not prime.
func IsPrime[T constraints.Integer](n T) bool {
	if n < 2 {
		return false
	}
	m := numeric.UnsignedAbs(n)
	for i := uint64(2); i <= m/i; i++ {
		if m%i == 0 {
			return false
		}
	}
	return true
}
