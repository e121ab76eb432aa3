// Package numeric implements the arithmetic core of numth: the extended
// Euclidean algorithm, binary exponentiation, integer nth roots and
// coprime-pair enumeration, together with the small utilities they share.
//
// Every function is generic over the built-in integer types, pure and
// allocation-free unless it returns a slice.
package numeric

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/libtql/numth"
)

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T constraints.Integer](x T) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// UnsignedAbs returns |x| as a uint64. Unlike a plain conversion it is
// exact for the minimal value of signed types, where -x overflows.
func UnsignedAbs[T constraints.Integer](x T) uint64 {
	if x < 0 {
		return -uint64(int64(x))
	}
	return uint64(x)
}

// BitLen returns the number of bits required to represent |x|; BitLen(0)
// is 0.
func BitLen[T constraints.Integer](x T) int {
	return bits.Len64(UnsignedAbs(x))
}

// BinaryAccumulate folds op over the binary digits of binary, least
// significant first, starting from initial. With addition of set bits as
// the operation it degenerates to a popcount; pow uses it to drive
// repeated squaring.
func BinaryAccumulate[T constraints.Integer, U any](binary T, initial U, op func(bit bool, acc *U)) U {
	acc := initial
	for cur := binary; cur != 0; cur /= 2 {
		op(cur%2 != 0, &acc)
	}
	return acc
}

// Cast converts x to the integer type To, failing with ErrOutOfRange when
// the value is not representable there.
func Cast[To, From constraints.Integer](x From) (To, error) {
	y := To(x)
	if From(y) != x || (y < 0) != (x < 0) {
		return 0, fmt.Errorf("cast of %v: %w", x, numth.ErrOutOfRange)
	}
	return y, nil
}

// Gcd returns the greatest common divisor of |a| and |b|. Gcd(0, 0) is 0.
func Gcd[T constraints.Integer](a, b T) uint64 {
	x, y := UnsignedAbs(a), UnsignedAbs(b)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// Lcm returns the least common multiple of |a| and |b|. Lcm(0, x) is 0.
func Lcm[T constraints.Integer](a, b T) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return UnsignedAbs(a) / Gcd(a, b) * UnsignedAbs(b)
}
