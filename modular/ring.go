package modular

// RingElement is the method set shared by ring value types. The free
// functions below are written once against it, so any implementation gets
// the derived operations without repeating them.
type RingElement[E any] interface {
	Add(E) E
	Subtract(E) E
	Multiply(E) E
	Negate() E
	Equal(E) bool
}

var _ RingElement[Modular[int64]] = Modular[int64]{}

// Sum folds addition over the elements, starting from first.
func Sum[E RingElement[E]](first E, rest ...E) E {
	acc := first
	for _, e := range rest {
		acc = acc.Add(e)
	}
	return acc
}

// Product folds multiplication over the elements, starting from first.
func Product[E RingElement[E]](first E, rest ...E) E {
	acc := first
	for _, e := range rest {
		acc = acc.Multiply(e)
	}
	return acc
}

// Double returns x + x.
func Double[E RingElement[E]](x E) E { return x.Add(x) }

// Square returns x * x.
func Square[E RingElement[E]](x E) E { return x.Multiply(x) }
