package numth

import "errors"

// Sentinel errors shared by every subpackage. Call sites wrap them with
// input-specific context; callers match with errors.Is and decide whether
// to retry with different parameters or a wider integer type. Nothing in
// this library retries, logs or substitutes a default on error.
var (
	// ErrDomain reports an operation with no mathematically defined result
	// for the given input, such as the even root of a negative number or
	// the inverse of a non-invertible residue.
	ErrDomain = errors.New("undefined for input")

	// ErrOutOfRange reports an input whose magnitude exceeds a bound fixed
	// at construction, such as a query past a sieve's limit.
	ErrOutOfRange = errors.New("input out of range")

	// ErrOverflow reports a construction whose internal arithmetic would
	// overflow the chosen accumulator width. It is raised before any
	// invalid state is built; computations never silently wrap.
	ErrOverflow = errors.New("arithmetic overflow")
)
