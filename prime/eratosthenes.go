package prime

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"github.com/libtql/numth"
	"github.com/libtql/numth/numeric"
)

// Eratosthenes is a primality table over [0, limit], inclusive, backed by
// a bitset of composites. Immutable once built; safe for concurrent reads.
type Eratosthenes[T constraints.Integer] struct {
	limit     uint64
	composite *bitset.BitSet
}

// NewEratosthenes builds the table by the sieve of Eratosthenes. It fails
// with ErrDomain for a negative limit.
func NewEratosthenes[T constraints.Integer](limit T) (*Eratosthenes[T], error) {
	if limit < 0 {
		return nil, fmt.Errorf("sieve limit %v: %w", limit, numth.ErrDomain)
	}
	n := numeric.UnsignedAbs(limit)
	composite := bitset.New(uint(n + 1))
	composite.Set(0)
	if n >= 1 {
		composite.Set(1)
	}
	for i := uint64(2); i <= n/i; i++ {
		if composite.Test(uint(i)) {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite.Set(uint(j))
		}
	}
	return &Eratosthenes[T]{limit: n, composite: composite}, nil
}

// Limit returns the inclusive upper bound of the table.
func (s *Eratosthenes[T]) Limit() T { return T(s.limit) }

// IsPrime reports whether n is prime. Negatives are not prime. It fails
// with ErrOutOfRange when |n| exceeds the table limit.
func (s *Eratosthenes[T]) IsPrime(n T) (bool, error) {
	m := numeric.UnsignedAbs(n)
	if m > s.limit {
		return false, fmt.Errorf("%v exceeds sieve limit %d: %w", n, s.limit, numth.ErrOutOfRange)
	}
	if n < 0 {
		return false, nil
	}
	return !s.composite.Test(uint(m)), nil
}
