package numeric

import (
	"math/bits"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Pair is an ordered pair of integers of the same type.
type Pair[T constraints.Integer] struct {
	X, Y T
}

// CoprimePairs enumerates every pair (x, y) with n >= x >= y >= 0 and
// gcd(x, y) == 1, sorted by (x, y). It returns nil for n < 1.
//
// Pairs with x > y >= 1 are generated by the ternary coprime tree rooted
// at (2, 1) and (3, 1): each node (x, y) has children (2x-y, x),
// (2x+y, x) and (x+2y, y), and every such pair appears exactly once.
// The remaining pairs, (1, 0) and (1, 1), are seeded directly.
func CoprimePairs[T constraints.Integer](n T) []Pair[T] {
	if n < 1 {
		return nil
	}
	un := UnsignedAbs(n)

	type upair struct{ x, y uint64 }
	pairs := []upair{{1, 0}, {1, 1}}
	var stack []upair
	for _, root := range []upair{{2, 1}, {3, 1}} {
		if root.x <= un {
			stack = append(stack, root)
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pairs = append(pairs, p)
		// Children (2x-y, x), (2x+y, x), (x+2y, y), computed with carry
		// tracking: a carry out of 64 bits puts the child past any limit.
		// Every tree node has x > y, so x-y never borrows.
		x1, c1 := bits.Add64(p.x, p.x-p.y, 0)
		s2, c2 := bits.Add64(p.x, p.x, 0)
		x2, c3 := bits.Add64(s2, p.y, 0)
		s3, c4 := bits.Add64(p.y, p.y, 0)
		x3, c5 := bits.Add64(p.x, s3, 0)
		children := [3]struct {
			x, y, carry uint64
		}{
			{x1, p.x, c1},
			{x2, p.x, c2 | c3},
			{x3, p.y, c4 | c5},
		}
		for _, c := range children {
			if c.carry == 0 && c.x <= un {
				stack = append(stack, upair{c.x, c.y})
			}
		}
	}

	out := make([]Pair[T], len(pairs))
	for i, p := range pairs {
		out[i] = Pair[T]{X: T(p.x), Y: T(p.y)}
	}
	slices.SortFunc(out, func(a, b Pair[T]) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	return out
}
