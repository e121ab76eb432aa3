package modular

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/libtql/numth/numeric"
)

// String formats the canonical representative in decimal.
func (a Modular[T]) String() string {
	return strconv.FormatInt(int64(a.value), 10)
}

// SetString parses a decimal integer and stores its residue. The text may
// be any value representable by the underlying integer type; it is
// normalized on the way in.
func (a *Modular[T]) SetString(s string) error {
	if wide, err := strconv.ParseInt(s, 10, 64); err == nil {
		return setParsed(a, s, wide)
	}
	// values above MaxInt64 still fit unsigned backing types
	wide, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("modular: parsing %q: %w", s, err)
	}
	return setParsed(a, s, wide)
}

func setParsed[T, W constraints.Integer](a *Modular[T], s string, wide W) error {
	v, err := numeric.Cast[T](wide)
	if err != nil {
		return fmt.Errorf("modular: parsing %q: %w", s, err)
	}
	a.Set(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Modular[T]) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver keeps
// its ring; only the value is replaced.
func (a *Modular[T]) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}
