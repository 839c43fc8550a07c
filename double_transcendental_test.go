package qd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoubleExpLn(t *testing.T) {
	t.Run("ExpOfOneIsE", func(t *testing.T) {
		got := doubleOne.Exp()
		require.Less(t, UlpErrorDouble(got, DoubleE), 8.0)
	})

	t.Run("LnUndoesExp", func(t *testing.T) {
		x := DoubleFromFloat64(12.5)
		got := x.Exp().Ln()
		require.InDelta(t, 12.5, got.Float64(), 1e-25)
	})

	t.Run("LnOfZeroIsNegInf", func(t *testing.T) {
		require.True(t, doubleZero.Ln().IsInf(-1))
	})

	t.Run("LnOfNegativeIsNaN", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(-1).Ln().IsNaN())
	})

	t.Run("ExpOverflowsToInf", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(1000).Exp().IsInf(1))
	})
}

func TestDoubleLogBases(t *testing.T) {
	require.InDelta(t, 10.0, DoubleFromFloat64(1024).Log2().Float64(), 1e-25)
	require.InDelta(t, 3.0, DoubleFromFloat64(1000).Log10().Float64(), 1e-25)
}

func TestDoubleSinCos(t *testing.T) {
	t.Run("PiMinusFracPi2IsFracPi2", func(t *testing.T) {
		got := DoublePI.Sub(DoubleFracPi2)
		require.InDelta(t, DoubleFracPi2.Float64(), got.Float64(), 1e-28)
	})

	t.Run("SinOfPiIsTinyNonzero", func(t *testing.T) {
		s := DoublePI.Sin()
		require.Less(t, math.Abs(s.Float64()), 1e-31)
		require.NotZero(t, s.Float64())
	})

	t.Run("PythagoreanIdentity", func(t *testing.T) {
		for _, x := range []float64{0.1, 1.0, 2.3, -4.7, 10.0} {
			s, c := DoubleFromFloat64(x).SinCos()
			sum := s.Sqr().Add(c.Sqr())
			require.InDelta(t, 1.0, sum.Float64(), 1e-28, "x=%v", x)
		}
	})

	t.Run("KnownValues", func(t *testing.T) {
		got := DoubleFracPi2.Sin()
		require.InDelta(t, 1.0, got.Float64(), 1e-28)
		got = doubleZero.Cos()
		require.InDelta(t, 1.0, got.Float64(), 1e-28)
	})
}

func TestDoubleInverseTrig(t *testing.T) {
	t.Run("AsinSinRoundTrip", func(t *testing.T) {
		x := DoubleFromFloat64(0.3)
		got := x.Sin().Asin()
		require.InDelta(t, 0.3, got.Float64(), 1e-25)
	})

	t.Run("Atan2Quadrants", func(t *testing.T) {
		got := DoubleFromFloat64(1).Atan2(DoubleFromFloat64(1))
		require.InDelta(t, math.Pi/4, got.Float64(), 1e-28)
	})
}

func TestDoubleHyperbolic(t *testing.T) {
	t.Run("CoshSquaredMinusSinhSquared", func(t *testing.T) {
		x := DoubleFromFloat64(1.7)
		sh, ch := x.SinhCosh()
		diff := ch.Sqr().Sub(sh.Sqr())
		require.InDelta(t, 1.0, diff.Float64(), 1e-26)
	})

	t.Run("AsinhUndoesSinh", func(t *testing.T) {
		x := DoubleFromFloat64(0.02)
		got := x.Sinh().Asinh()
		require.InDelta(t, 0.02, got.Float64(), 1e-25)
	})

	t.Run("AtanhDomain", func(t *testing.T) {
		require.True(t, DoubleFromFloat64(1).Atanh().IsNaN())
		require.True(t, DoubleFromFloat64(-1).Atanh().IsNaN())
	})
}
