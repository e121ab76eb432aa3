// Package numth provides number-theory primitives over fixed-width
// integers: a modular ring value type, the extended Euclidean algorithm,
// binary exponentiation, integer nth roots, linear (Euler) prime sieving
// and coprime-pair enumeration.
//
// Everything is pure, synchronous computation; constructed values are
// immutable and safe to share between goroutines.
//
// The algorithms live in the subpackages:
//   - numeric: exgcd, pow, iroot and small integer utilities
//   - modular: the ring-of-integers-modulo-m value type
//   - prime: primality tests and sieves
package numth

import (
	"github.com/blang/semver/v4"
)

// Version of the numth library.
var Version = semver.MustParse("0.1.0")
