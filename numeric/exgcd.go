package numeric

import "golang.org/x/exp/constraints"

// Exgcd returns Bézout coefficients (x, y) satisfying
//
//	x*a + y*b == gcd(|a|, |b|)
//
// with |x| <= |b| and |y| <= |a| whenever both a and b are nonzero.
// Exgcd(0, 0) == (1, 0).
//
// The remainders are tracked as unsigned magnitudes so that the minimal
// value of signed types survives negation; the signs of a and b are
// reapplied to the coefficients at the end. A zero input contributes no
// sign and keeps its coefficient as computed, so Exgcd(a, 0) == (±1, 0).
func Exgcd[T constraints.Integer](a, b T) (x, y int64) {
	// Invariant: xa*|a| + ya*|b| == ta and xb*|a| + yb*|b| == tb.
	ta, tb := UnsignedAbs(a), UnsignedAbs(b)
	xa, ya := int64(1), int64(0)
	xb, yb := int64(0), int64(1)

	for tb != 0 {
		q := ta / tb
		// Every coefficient that can reach a further iteration is bounded
		// by the final |x| <= |b|, |y| <= |a|, so the products below stay
		// within int64. Only the pair attached to the terminal zero
		// remainder may wrap, and that pair is never returned.
		tc := ta - q*tb
		xc := xa - int64(q)*xb
		yc := ya - int64(q)*yb

		xa, xb = xb, xc
		ya, yb = yb, yc
		ta, tb = tb, tc
	}

	sx, sy := int64(Sign(a)), int64(Sign(b))
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx * xa, sy * ya
}
