package prime

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/constraints"

	"github.com/libtql/numth"
	"github.com/libtql/numth/numeric"
)

// sieveData is the CBOR wire form of an EulerSieve.
type sieveData[T constraints.Integer] struct {
	Limit     T   `cbor:"1,keyasint"`
	Primes    []T `cbor:"2,keyasint"`
	MinFactor []T `cbor:"3,keyasint"`
}

// WriteTo serializes the sieve with canonical CBOR, so an expensive sieve
// can be built once and shipped. It implements io.WriterTo.
func (s *EulerSieve[T]) WriteTo(w io.Writer) (int64, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	enc := em.NewEncoder(cw)
	err = enc.Encode(sieveData[T]{Limit: s.limit, Primes: s.primes, MinFactor: s.minFactor})
	return cw.n, err
}

// ReadEulerSieve deserializes a sieve written by WriteTo. The decoded
// state is revalidated in full, so a corrupt payload cannot produce a
// sieve that construction would have refused.
func ReadEulerSieve[T constraints.Integer](r io.Reader) (*EulerSieve[T], error) {
	var data sieveData[T]
	if err := cbor.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding sieve: %w", err)
	}
	if data.Limit < 0 {
		return nil, fmt.Errorf("sieve limit %v: %w", data.Limit, numth.ErrDomain)
	}
	if 2*numeric.BitLen(data.Limit) > 64 {
		return nil, fmt.Errorf("sieve limit %v: %w", data.Limit, numth.ErrOverflow)
	}
	if err := validateSieve(&data); err != nil {
		return nil, fmt.Errorf("decoding sieve: %w", err)
	}
	return &EulerSieve[T]{limit: data.Limit, primes: data.Primes, minFactor: data.MinFactor}, nil
}

// validateSieve checks that a decoded factor table is exactly what
// construction would have produced. Scanning indices in ascending order
// lets each entry's minimality be checked against already-validated
// smaller entries.
func validateSieve[T constraints.Integer](data *sieveData[T]) error {
	n := numeric.UnsignedAbs(data.Limit)
	if uint64(len(data.MinFactor)) != n+1 {
		return errors.New("factor table does not match limit")
	}
	for i := uint64(0); i <= 1 && i <= n; i++ {
		if data.MinFactor[i] != 0 {
			return fmt.Errorf("factor table entry %d must be 0", i)
		}
	}
	next := 0
	for i := uint64(2); i <= n; i++ {
		p := data.MinFactor[i]
		if p < 2 {
			return fmt.Errorf("factor table entry %d is not a prime factor: %v", i, p)
		}
		up := uint64(p)
		q := i / up
		if up > i || q*up != i {
			return fmt.Errorf("factor table entry %d does not divide it: %v", i, p)
		}
		if uint64(data.MinFactor[up]) != up {
			return fmt.Errorf("factor table entry %d is composite: %v", i, p)
		}
		if q >= 2 && uint64(data.MinFactor[q]) < up {
			return fmt.Errorf("factor table entry %d is not minimal: %v", i, p)
		}
		if up == i {
			if next >= len(data.Primes) || uint64(data.Primes[next]) != i {
				return fmt.Errorf("prime list does not match factor table at %d", i)
			}
			next++
		}
	}
	if next != len(data.Primes) {
		return errors.New("prime list does not match factor table")
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
