package modular

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libtql/numth"
)

func TestModularBasic(t *testing.T) {
	a := MustNew(123, 10)
	assert.Equal(t, 3, a.Get())

	b := a
	assert.Equal(t, 3, b.Get())

	a.Set(-4)
	assert.Equal(t, 6, a.Get())
	assert.Equal(t, 3, b.Get(), "copies are independent")

	assert.Equal(t, 9, a.Add(b).Get())
	assert.Equal(t, 7, b.Negate().Get())
	assert.Equal(t, 7, b.Subtract(a).Get())
	assert.Equal(t, 8, a.Multiply(b).Get())

	c := MustNew(3, 10)
	assert.True(t, b.Equal(c))
	assert.False(t, a.Equal(b))

	assert.Equal(t, 10, a.Modulus())
	assert.Equal(t, 0, a.Zero().Get())
	assert.Equal(t, 1, a.One().Get())
}

func TestNewNormalizes(t *testing.T) {
	cases := []struct {
		value, want int64
	}{
		{value: 0, want: 0},
		{value: 123, want: 3},
		{value: -4, want: 6},
		{value: -10, want: 0},
		{value: 10, want: 0},
		{value: math.MinInt64, want: 2},
		{value: math.MaxInt64, want: 7},
	}
	for _, tc := range cases {
		a, err := New(tc.value, int64(10))
		require.NoError(t, err)
		assert.Equal(t, tc.want, a.Get(), "value=%d", tc.value)
	}
}

func TestNewRejectsBadModuli(t *testing.T) {
	_, err := New(5, 0)
	assert.ErrorIs(t, err, numth.ErrDomain)

	_, err = New(5, -7)
	assert.ErrorIs(t, err, numth.ErrDomain)

	// int8 has 7 value bits: multiplication needs 2*bitlen(modulus) of them
	_, err = New[int8](0, 100)
	assert.ErrorIs(t, err, numth.ErrOverflow)

	_, err = New[int8](0, 11)
	assert.ErrorIs(t, err, numth.ErrOverflow)

	a, err := New[int8](100, 7)
	require.NoError(t, err)
	assert.Equal(t, int8(2), a.Get())

	// uint8 has one more value bit
	_, err = New[uint8](0, 11)
	require.NoError(t, err)
	_, err = New[uint8](0, 16)
	assert.ErrorIs(t, err, numth.ErrOverflow)
}

func TestInverse(t *testing.T) {
	three := MustNew(3, 7)
	inv, err := three.Inverse()
	require.NoError(t, err)
	assert.Equal(t, 5, inv.Get())
	assert.Equal(t, 1, three.Multiply(inv).Get())

	_, err = MustNew(4, 10).Inverse()
	assert.ErrorIs(t, err, numth.ErrDomain)

	_, err = MustNew(0, 7).Inverse()
	assert.ErrorIs(t, err, numth.ErrDomain)

	seven := MustNew(7, 10)
	inv, err = seven.Inverse()
	require.NoError(t, err)
	assert.Equal(t, 3, inv.Get())
}

func TestDiv(t *testing.T) {
	q, err := MustNew(6, 7).Div(MustNew(3, 7))
	require.NoError(t, err)
	assert.Equal(t, 2, q.Get())

	_, err = MustNew(3, 10).Div(MustNew(4, 10))
	assert.ErrorIs(t, err, numth.ErrDomain)
}

func TestPow(t *testing.T) {
	p, err := MustNew(2, 1000).Pow(10)
	require.NoError(t, err)
	assert.Equal(t, 24, p.Get())

	p, err = MustNew(3, 7).Pow(0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Get())

	p, err = MustNew(3, 7).Pow(-1)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Get())

	p, err = MustNew(3, 7).Pow(-2)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Get(), "3^2 = 2, and 2^-1 = 4 mod 7")

	_, err = MustNew(2, 10).Pow(-2)
	assert.ErrorIs(t, err, numth.ErrDomain)
}

func TestMixingRingsPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(1, 7).Add(MustNew(1, 11)) })
	assert.Panics(t, func() { MustNew(1, 7).Equal(MustNew(1, 11)) })
}

func TestRingLaws(t *testing.T) {
	const q = int64(1000000007)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	elem := gen.Int64().Map(func(v int64) Modular[int64] {
		return MustNew(v, q)
	})

	properties := gopter.NewProperties(parameters)
	properties.Property("representative is canonical and congruent", prop.ForAll(
		func(v int64) bool {
			g := MustNew(v, q).Get()
			return g >= 0 && g < q && (v%q+q)%q == g
		},
		gen.Int64(),
	))
	properties.Property("addition commutes", prop.ForAll(
		func(a, b Modular[int64]) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		elem, elem,
	))
	properties.Property("a - b == a + (-b)", prop.ForAll(
		func(a, b Modular[int64]) bool {
			return a.Subtract(b).Equal(a.Add(b.Negate()))
		},
		elem, elem,
	))
	properties.Property("multiplication associates", prop.ForAll(
		func(a, b, c Modular[int64]) bool {
			return a.Multiply(b.Multiply(c)).Equal(a.Multiply(b).Multiply(c))
		},
		elem, elem, elem,
	))
	properties.Property("x + (-x) == 0", prop.ForAll(
		func(a Modular[int64]) bool {
			return a.Add(a.Negate()).Equal(a.Zero())
		},
		elem,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
