package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoubleFloorCeilTrunc(t *testing.T) {
	cases := []struct {
		name              string
		x                 Double
		floor, ceil, trnc float64
	}{
		{"PositiveFraction", DoubleFromFloat64(2.7), 2, 3, 2},
		{"NegativeFraction", DoubleFromFloat64(-2.7), -3, -2, -2},
		{"ExactInteger", DoubleFromFloat64(5), 5, 5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.floor, c.x.Floor().Float64())
			require.Equal(t, c.ceil, c.x.Ceil().Float64())
			require.Equal(t, c.trnc, c.x.Trunc().Float64())
		})
	}
}

func TestDoubleRound(t *testing.T) {
	t.Run("TiesToEven", func(t *testing.T) {
		require.Equal(t, 2.0, DoubleFromFloat64(2.5).Round().Float64())
		require.Equal(t, 4.0, DoubleFromFloat64(3.5).Round().Float64())
		require.Equal(t, -2.0, DoubleFromFloat64(-2.5).Round().Float64())
	})
	t.Run("TieBrokenByLowComponent", func(t *testing.T) {
		// Slightly above the halfway point via the low component alone.
		x := DoublePair(2.5, 1e-20)
		require.Equal(t, 3.0, x.Round().Float64())
	})
}

func TestDoubleFract(t *testing.T) {
	x := DoubleFromFloat64(3.25)
	got := x.Fract()
	require.InDelta(t, 0.25, got.Float64(), 1e-30)
}

func TestDoubleSignum(t *testing.T) {
	require.True(t, DoubleFromFloat64(5).Signum().Eq(doubleOne))
	require.True(t, DoubleFromFloat64(-5).Signum().Eq(doubleNegOne))
	require.True(t, DoubleNaN().Signum().IsNaN())
}

func TestDoubleLdexp(t *testing.T) {
	x := DoubleFromFloat64(1.5)
	got := x.Ldexp(4)
	require.Equal(t, 24.0, got.Float64())
}
