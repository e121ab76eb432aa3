package modular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumProduct(t *testing.T) {
	assert.Equal(t, 3, Sum(MustNew(1, 10), MustNew(5, 10), MustNew(7, 10)).Get())
	assert.Equal(t, 4, Product(MustNew(2, 10), MustNew(3, 10), MustNew(4, 10)).Get())

	// single element folds to itself
	assert.Equal(t, 5, Sum(MustNew(5, 10)).Get())
	assert.Equal(t, 5, Product(MustNew(5, 10)).Get())
}

func TestDoubleSquare(t *testing.T) {
	assert.Equal(t, 4, Double(MustNew(7, 10)).Get())
	assert.Equal(t, 9, Square(MustNew(7, 10)).Get())
}
