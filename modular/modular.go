// Package modular implements the ring of integers modulo m as a value
// type over any built-in integer type.
//
// An element remembers its modulus, so two elements of different rings
// are as incompatible as two distinct types: combining them panics.
// Overflow safety is established once, at construction: New rejects any
// modulus wide enough for the ring's add or multiply to overflow the
// backing integer type, so that the arithmetic itself never needs runtime
// checks and never silently wraps.
package modular

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/libtql/numth"
	"github.com/libtql/numth/numeric"
)

// Modular is an element of the ring of integers modulo a fixed positive
// modulus. The zero value is not a usable element; obtain elements from
// New, MustNew or the methods of an existing element.
//
// The canonical representative is always kept in [0, modulus).
type Modular[T constraints.Integer] struct {
	value   T
	modulus T
}

// New returns the residue of value in the ring of integers modulo
// modulus.
//
// It fails with ErrDomain when modulus is not positive, and with
// ErrOverflow when the ring could overflow T: addition requires
// bitlen(modulus)+1 value bits and multiplication 2*bitlen(modulus).
// Rejecting such moduli up front keeps the ring's arithmetic exact for
// every pair of canonical representatives.
func New[T constraints.Integer](value, modulus T) (Modular[T], error) {
	if modulus <= 0 {
		return Modular[T]{}, fmt.Errorf("modulus %v: %w", modulus, numth.ErrDomain)
	}
	width := numeric.BitLen(modulus)
	if width+1 > digits[T]() || 2*width > digits[T]() {
		return Modular[T]{}, fmt.Errorf("modulus %v too wide for %d value bits: %w",
			modulus, digits[T](), numth.ErrOverflow)
	}
	a := Modular[T]{modulus: modulus}
	a.Set(value)
	return a, nil
}

// MustNew is New, panicking on error. Intended for package-level rings
// with known-good moduli.
func MustNew[T constraints.Integer](value, modulus T) Modular[T] {
	a, err := New(value, modulus)
	if err != nil {
		panic(err)
	}
	return a
}

// normalize maps x into [0, modulus). The language remainder leaves at
// most one modulus-width correction to make.
func normalize[T constraints.Integer](x, modulus T) T {
	if x < 0 || x >= modulus {
		x %= modulus
		if x < 0 {
			x += modulus
		}
	}
	return x
}

// digits returns the number of value bits of T, excluding the sign bit of
// signed types.
func digits[T constraints.Integer]() int {
	var x T
	d := int(unsafe.Sizeof(x)) * 8
	if x-1 < 0 { // signed
		d--
	}
	return d
}

// Get returns the canonical representative, in [0, modulus).
func (a Modular[T]) Get() T { return a.value }

// Modulus returns the modulus of a's ring.
func (a Modular[T]) Modulus() T { return a.modulus }

// Set replaces a's value with the residue of value.
func (a *Modular[T]) Set(value T) {
	a.value = normalize(value, a.modulus)
}

// Zero returns the additive identity of a's ring.
func (a Modular[T]) Zero() Modular[T] {
	return Modular[T]{modulus: a.modulus}
}

// One returns the multiplicative identity of a's ring.
func (a Modular[T]) One() Modular[T] {
	return Modular[T]{value: normalize(T(1), a.modulus), modulus: a.modulus}
}

// Add returns a + b in the ring.
func (a Modular[T]) Add(b Modular[T]) Modular[T] {
	a.sameRing(b)
	v := a.value + b.value
	if v >= a.modulus {
		v -= a.modulus
	}
	return Modular[T]{value: v, modulus: a.modulus}
}

// Negate returns the additive inverse of a.
func (a Modular[T]) Negate() Modular[T] {
	if a.value == 0 {
		return a
	}
	return Modular[T]{value: a.modulus - a.value, modulus: a.modulus}
}

// Subtract returns a - b in the ring.
func (a Modular[T]) Subtract(b Modular[T]) Modular[T] {
	return a.Add(b.Negate())
}

// Multiply returns a * b in the ring.
func (a Modular[T]) Multiply(b Modular[T]) Modular[T] {
	a.sameRing(b)
	return Modular[T]{value: (a.value * b.value) % a.modulus, modulus: a.modulus}
}

// Equal reports whether a and b are the same residue.
func (a Modular[T]) Equal(b Modular[T]) bool {
	a.sameRing(b)
	return a.value == b.value
}

// Inverse returns the multiplicative inverse of a, obtained from the
// Bézout coefficient of a's value. It fails with ErrDomain when
// gcd(value, modulus) != 1, since no inverse exists then.
func (a Modular[T]) Inverse() (Modular[T], error) {
	if numeric.Gcd(a.value, a.modulus) != 1 {
		return Modular[T]{}, fmt.Errorf("%v not invertible modulo %v: %w",
			a.value, a.modulus, numth.ErrDomain)
	}
	x, _ := numeric.Exgcd(a.value, a.modulus)
	v := x % int64(a.modulus)
	if v < 0 {
		v += int64(a.modulus)
	}
	return Modular[T]{value: T(v), modulus: a.modulus}, nil
}

// Div returns a * b⁻¹, failing with ErrDomain when b is not invertible.
func (a Modular[T]) Div(b Modular[T]) (Modular[T], error) {
	a.sameRing(b)
	inv, err := b.Inverse()
	if err != nil {
		return Modular[T]{}, err
	}
	return a.Multiply(inv), nil
}

// Pow returns a**e by binary exponentiation. A negative exponent inverts
// the positive power, failing with ErrDomain when a is not invertible.
func (a Modular[T]) Pow(e int64) (Modular[T], error) {
	type state struct {
		result Modular[T]
		power  Modular[T]
	}
	s := numeric.BinaryAccumulate(numeric.UnsignedAbs(e), state{result: a.One(), power: a},
		func(bit bool, s *state) {
			if bit {
				s.result = s.result.Multiply(s.power)
			}
			s.power = s.power.Multiply(s.power)
		})
	if e < 0 {
		return s.result.Inverse()
	}
	return s.result, nil
}

func (a Modular[T]) sameRing(b Modular[T]) {
	if a.modulus != b.modulus {
		panic(fmt.Sprintf("modular: mixing rings modulo %v and %v", a.modulus, b.modulus))
	}
}
