package numeric

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/libtql/numth"
)

// maxNthRoot[n] is the largest y whose n-th power fits in a uint64, so
// that candidates below it can be raised safely during the root search.
// Index 0 is unused; exponents of 64 and above admit no y > 1.
var maxNthRoot = [64]uint64{
	0,
	18446744073709551615,
	4294967295,
	2642245,
	65535,
	7131,
	1625,
	565,
	255,
	138,
	84,
	56,
	40,
	30,
	23,
	19,
	15,
	13,
	11,
	10,
	9,
	8,
	7,
	6, 6,
	5, 5, 5,
	4, 4, 4, 4,
	3, 3, 3, 3, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
}

// Iroot returns the integer n-th root of x: the largest-magnitude y with
// y**n <= |x|, carrying the sign of x when n is odd.
//
// It fails with ErrDomain when n <= 0, and when x is negative and n even
// (no real root exists).
func Iroot[T constraints.Integer](x T, n int) (T, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%d-th root: %w", n, numth.ErrDomain)
	}
	if x < 0 && n%2 == 0 {
		return 0, fmt.Errorf("even root of negative %v: %w", x, numth.ErrDomain)
	}
	if n == 1 {
		return x, nil
	}

	m := UnsignedAbs(x)
	bound := uint64(1)
	if n < len(maxNthRoot) {
		bound = maxNthRoot[n]
	}

	// Invariant: lo**n <= m < hi**n, reading the initial hi**n as
	// unrepresentable, hence above m. Midpoints never exceed bound, so
	// the Pow calls cannot overflow.
	lo, hi := uint64(0), bound+1
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if Pow(mid, n) <= m {
			lo = mid
		} else {
			hi = mid
		}
	}

	if x < 0 {
		return -T(lo), nil
	}
	return T(lo), nil
}
