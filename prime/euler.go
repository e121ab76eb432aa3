package prime

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/libtql/numth"
	"github.com/libtql/numth/logger"
	"github.com/libtql/numth/numeric"
)

// EulerSieve holds the primes up to an inclusive limit together with the
// minimum prime factor of every integer in [2, limit].
//
// Construction is linear: each composite is marked exactly once, by its
// smallest prime factor. The sieve is immutable once built and safe for
// concurrent reads.
type EulerSieve[T constraints.Integer] struct {
	limit  T
	primes []T
	// minFactor[n] is the smallest prime factor of n; 0 below 2.
	// minFactor[p] == p exactly when p is prime.
	minFactor []T
}

// NewEulerSieve builds the sieve over [0, limit].
//
// It fails with ErrDomain for a negative limit and with ErrOverflow when
// 2*bitlen(limit) exceeds the 64 bits of the accumulator carrying the
// prime*num products, before any state is built.
func NewEulerSieve[T constraints.Integer](limit T) (*EulerSieve[T], error) {
	if limit < 0 {
		return nil, fmt.Errorf("sieve limit %v: %w", limit, numth.ErrDomain)
	}
	if 2*numeric.BitLen(limit) > 64 {
		return nil, fmt.Errorf("sieve limit %v: products exceed the 64-bit accumulator: %w",
			limit, numth.ErrOverflow)
	}
	start := time.Now()

	n := numeric.UnsignedAbs(limit)
	s := &EulerSieve[T]{limit: limit, minFactor: make([]T, n+1)}
	for num := uint64(2); num <= n; num++ {
		if s.minFactor[num] == 0 {
			s.primes = append(s.primes, T(num))
			s.minFactor[num] = T(num)
		}
		for _, p := range s.primes {
			if uint64(p) > uint64(s.minFactor[num]) {
				// Past this point p*num would be marked again later by a
				// smaller factor; stopping here is what keeps the sieve
				// linear.
				break
			}
			x := uint64(p) * num
			if x > n {
				break
			}
			s.minFactor[x] = p
		}
	}

	log := logger.Logger()
	log.Debug().Dur("took", time.Since(start)).Uint64("limit", n).
		Int("primes", len(s.primes)).Msg("built euler sieve")
	return s, nil
}

// Limit returns the inclusive upper bound of the sieve.
func (s *EulerSieve[T]) Limit() T { return s.limit }

// Primes returns the primes <= Limit in ascending order. The slice is the
// sieve's own storage and must not be mutated.
func (s *EulerSieve[T]) Primes() []T { return s.primes }

// MinPrimeFactor returns the smallest prime factor of |n|. It fails with
// ErrDomain for |n| <= 1, which has no prime factor, and with
// ErrOutOfRange when |n| exceeds Limit.
func (s *EulerSieve[T]) MinPrimeFactor(n T) (T, error) {
	m, err := s.index(n)
	if err != nil {
		return 0, err
	}
	return s.minFactor[m], nil
}

// Factorize returns the prime factorization of |n| in ascending order,
// with multiplicity. The domain and range rules of MinPrimeFactor apply.
func (s *EulerSieve[T]) Factorize(n T) ([]T, error) {
	m, err := s.index(n)
	if err != nil {
		return nil, err
	}
	var factors []T
	for m > 1 {
		p := s.minFactor[m]
		factors = append(factors, p)
		m /= uint64(p)
	}
	return factors, nil
}

func (s *EulerSieve[T]) index(n T) (uint64, error) {
	m := numeric.UnsignedAbs(n)
	if m <= 1 {
		return 0, fmt.Errorf("no prime factor for %v: %w", n, numth.ErrDomain)
	}
	if m > numeric.UnsignedAbs(s.limit) {
		return 0, fmt.Errorf("%v exceeds sieve limit %v: %w", n, s.limit, numth.ErrOutOfRange)
	}
	return m, nil
}
