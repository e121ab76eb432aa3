package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Pow computes base**exponent using O(log |exponent|) multiplications.
//
// A negative exponent yields 1/p where p is the positive power; over plain
// integers this is exact only when p divides 1 (p == 1, or p == -1 for
// signed types), and Pow(0, e) panics for e < 0. Ring types with true
// inverses provide their own Pow (see modular.Modular.Pow).
func Pow[T constraints.Integer, U constraints.Integer](base T, exponent U) T {
	type state struct {
		result T
		power  T
	}
	// At the n-th bit of the exponent, power is base^(2^n) and result is
	// the answer for the n lowest bits.
	s := BinaryAccumulate(UnsignedAbs(exponent), state{result: 1, power: base},
		func(bit bool, s *state) {
			if bit {
				s.result *= s.power
			}
			s.power *= s.power
		})
	if exponent < 0 {
		return 1 / s.result
	}
	return s.result
}

// Powf computes base**exponent for real exponents. It defers to math.Pow.
func Powf(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}
