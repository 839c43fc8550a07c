package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoublePowi(t *testing.T) {
	t.Run("ZeroExponentIsOne", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(0).Powi(0).Eq(doubleOne))
		require.True(t, DoubleFromFloat64(5).Powi(0).Eq(doubleOne))
	})

	t.Run("MatchesRepeatedMultiplication", func(t *testing.T) {
		two := DoubleFromFloat64(2)
		require.True(t, two.Powi(10).Eq(DoubleFromFloat64(1024)))
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		two := DoubleFromFloat64(2)
		got := two.Powi(-2)
		require.InDelta(t, 0.25, got.Float64(), 1e-30)
	})

	t.Run("ComposesViaSqr", func(t *testing.T) {
		two := DoubleFromFloat64(2)
		lhs := two.Powi(100)
		rhs := two.Powi(50).Sqr()
		require.True(t, lhs.Eq(rhs), "got %v want %v", lhs, rhs)
	})
}

func TestDoubleNrootCbrt(t *testing.T) {
	t.Run("CbrtOfNegative", func(t *testing.T) {
		got := DoubleFromFloat64(-8).Cbrt()
		require.InDelta(t, -2.0, got.Float64(), 1e-28)
	})

	t.Run("NrootEvenOfNegativeIsNaN", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(-4).Nroot(2).IsNaN())
	})

	t.Run("FourthRootOfSixteen", func(t *testing.T) {
		got := DoubleFromFloat64(16).Nroot(4)
		require.InDelta(t, 2.0, got.Float64(), 1e-28)
	})
}

func TestDoublePowf(t *testing.T) {
	t.Run("IdentityCases", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(5).Powf(doubleZero).Eq(doubleOne))
		require.True(t, doubleOne.Powf(DoubleFromFloat64(123)).Eq(doubleOne))
	})

	t.Run("TwoToTen", func(t *testing.T) {
		got := DoubleFromFloat64(2).Powf(DoubleFromFloat64(10))
		require.InDelta(t, 1024.0, got.Float64(), 1e-24)
	})
}
