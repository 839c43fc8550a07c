package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPiFamilyConsistency(t *testing.T) {
	require.True(t, DoubleTAU.Eq(DoublePI.Mul(DoubleFromFloat64(2))))
	require.InDelta(t, DoublePI.Float64()/2, DoubleFracPi2.Float64(), 1e-28)
	require.InDelta(t, DoublePI.Float64()/4, DoubleFracPi4.Float64(), 1e-28)
}

func TestEpsilonMatchesMantissaDigits(t *testing.T) {
	// DoubleEpsilon is 2^-104 (106-bit significand) and QuadEpsilon is
	// 2^-211 (212-bit significand).
	require.Less(t, DoubleEpsilon.Float64(), 1e-30)
	require.Less(t, QuadEpsilon.Float64(), 1e-60)
}

func TestInvFactsTable(t *testing.T) {
	// InvFacts[0] == 1/3! == 1/6.
	got := InvFacts[0]
	require.Less(t, UlpErrorQuad(got, QuadFromFloat64(1).Div(QuadFromFloat64(6))), 4.0)
}

func TestExpSeedTableBoundary(t *testing.T) {
	require.True(t, expSeedTable(0).Eq(doubleOne))
	require.Greater(t, expSeedTable(1).Float64(), 1.0)
}
