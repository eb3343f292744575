package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantityArithmetic(t *testing.T) {
	q := NewQuantity(100)

	q = q.Add(NewQuantity(20))
	require.Equal(t, "120", q.String())

	q = q.Sub(NewQuantity(120))
	require.True(t, q.IsZero())

	// 2^64 boundary crossings stay exact.
	big, err := ParseQuantity("18446744073709551615")
	require.NoError(t, err)
	big = big.Add(NewQuantity(1))
	require.Equal(t, "18446744073709551616", big.String())
	big = big.Sub(NewQuantity(1))
	require.Equal(t, "18446744073709551615", big.String())
}

func TestQuantityChecked(t *testing.T) {
	require.Panics(t, func() {
		NewQuantity(10).Sub(NewQuantity(11))
	})

	max, err := ParseQuantity("340282366920938463463374607431768211455")
	require.NoError(t, err)
	require.Panics(t, func() {
		max.Add(NewQuantity(1))
	})
}

func TestQuantityMin(t *testing.T) {
	small := NewQuantity(7)
	large := NewQuantity(9)

	require.Equal(t, small, small.Min(large))
	require.Equal(t, small, large.Min(small))
	require.Equal(t, small, small.Min(small))
}

func TestQuantityComparisons(t *testing.T) {
	require.True(t, NewQuantity(1).LessThan(NewQuantity(2)))
	require.True(t, NewQuantity(2).GreaterThan(NewQuantity(1)))
	require.True(t, NewQuantity(2).Equals(NewQuantity(2)))
	require.Equal(t, -1, NewQuantity(1).Cmp(NewQuantity(2)))
	require.Equal(t, 0, NewQuantity(2).Cmp(NewQuantity(2)))
	require.Equal(t, 1, NewQuantity(3).Cmp(NewQuantity(2)))
}
