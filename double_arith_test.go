package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoubleAdd(t *testing.T) {
	t.Run("ExactIntegers", func(t *testing.T) {
		a := DoubleFromInt64(1<<60 + 1)
		b := DoubleFromInt64(1)
		got := a.Add(b)
		want := DoubleFromInt64(1<<60 + 2)
		require.True(t, got.Eq(want), "got %v want %v", got, want)
	})

	t.Run("AgreesWithSloppy", func(t *testing.T) {
		a := DoubleFromFloat64(1.0)
		b := DoubleFromFloat64(1e-20)
		accurate := a.Add(b)
		sloppy := a.AddSloppy(b)
		require.InDelta(t, accurate.Float64(), sloppy.Float64(), 1e-18)
	})

	t.Run("NonFinitePropagates", func(t *testing.T) {
		inf := DoublePositiveInfinity()
		require.True(t, inf.Add(DoubleFromFloat64(1)).IsInf(1))
		require.True(t, DoubleNaN().Add(DoubleFromFloat64(1)).IsNaN())
	})
}

func TestDoubleSub(t *testing.T) {
	a := DoubleFromFloat64(3)
	b := DoubleFromFloat64(1)
	require.True(t, a.Sub(b).Eq(DoubleFromFloat64(2)))
}

func TestDoubleMul(t *testing.T) {
	t.Run("BeatsFloat64Precision", func(t *testing.T) {
		// (2^30+1) squares to a value needing more than 53 bits to hold
		// exactly; a Double must still round-trip it exactly through Mul.
		const n = int64(1)<<30 + 1
		a := DoubleFromInt64(n)
		got := a.Mul(a)
		want := DoubleFromInt64(n * n)
		require.True(t, got.Eq(want), "got %v want %v", got, want)
	})
}

func TestDoubleDiv(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		a := DoubleFromFloat64(7)
		b := DoubleFromFloat64(3)
		got := a.Div(b).Mul(b)
		require.InDelta(t, 7.0, got.Float64(), 1e-28)
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(1).Div(doubleZero).IsInf(1))
		require.True(t, DoubleFromFloat64(-1).Div(doubleZero).IsInf(-1))
		require.True(t, doubleZero.Div(doubleZero).IsNaN())
	})
}

func TestDoubleSqrt(t *testing.T) {
	t.Run("TwoSquared", func(t *testing.T) {
		two := DoubleFromFloat64(2)
		s := two.Sqrt()
		diff := s.Mul(s).Sub(two).Abs()
		require.Less(t, diff.Float64(), 1e-30)
	})

	t.Run("NegativeIsNaN", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(-1).Sqrt().IsNaN())
	})

	t.Run("SignedZero", func(t *testing.T) {
		require.True(t, doubleZero.Sqrt().Eq(doubleZero))
		require.True(t, doubleNegZero.Sqrt().IsSignNegative())
	})
}

func TestDoubleRecip(t *testing.T) {
	t.Run("PowerOfTwoFastPath", func(t *testing.T) {
		eight := DoubleFromFloat64(8)
		got := eight.Recip()
		require.True(t, got.Eq(DoubleFromFloat64(0.125)))
	})

	t.Run("GeneralCase", func(t *testing.T) {
		three := DoubleFromFloat64(3)
		got := three.Recip().Mul(three)
		require.InDelta(t, 1.0, got.Float64(), 1e-28)
	})
}
