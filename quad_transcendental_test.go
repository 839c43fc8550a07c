package qd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuadPiComponents(t *testing.T) {
	// Regression anchor: the leading two components of QuadPI must match
	// Double precision pi exactly once demoted.
	require.True(t, QuadPI.ToDouble().Eq(DoublePI))
}

func TestQuadExpLn(t *testing.T) {
	t.Run("ExpLnRoundTrip", func(t *testing.T) {
		x := QuadFromFloat64(3.75)
		got := x.Exp().Ln()
		diff := got.Sub(x).Abs()
		require.Less(t, diff.Float64(), 1e-58)
	})

	t.Run("DoubleELiftDemoteRoundTrip", func(t *testing.T) {
		got := QuadFromDouble(DoubleE).ToDouble()
		require.True(t, got.Eq(DoubleE))
	})
}

func TestQuadSinCos(t *testing.T) {
	t.Run("SinOfPiIsTinyNonzero", func(t *testing.T) {
		s := QuadPI.Sin()
		require.Less(t, math.Abs(s.Float64()), 1e-60)
	})

	t.Run("PythagoreanIdentity", func(t *testing.T) {
		x := QuadFromFloat64(2.34)
		s, c := x.SinCos()
		sum := s.Sqr().Add(c.Sqr())
		diff := sum.Sub(quadOne).Abs()
		require.Less(t, diff.Float64(), 1e-58)
	})
}
