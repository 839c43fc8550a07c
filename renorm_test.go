package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenorm2NonFiniteShortCircuits(t *testing.T) {
	d := renorm2(posInf, 5)
	require.Equal(t, posInf, d[0])
	require.Equal(t, 0.0, d[1])
}

func TestRenorm3MatchesManualCascade(t *testing.T) {
	got := renorm3(1.0, 1e-17, 1e-34)
	require.Equal(t, 1.0, got[0])
	require.Greater(t, got[1], 0.0)
}

func TestRenorm5ProducesNonincreasingMagnitudes(t *testing.T) {
	got := renorm5(1.0, 1e-17, 1e-34, 1e-51, 1e-68)
	require.Equal(t, 1.0, got[0])
	for i := 0; i < 3; i++ {
		if got[i+1] == 0 {
			continue
		}
		require.LessOrEqual(t, absFloat(got[i+1]), absFloat(got[i]))
	}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
