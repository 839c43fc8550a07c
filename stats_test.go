package qd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUlpErrorDouble(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		require.Equal(t, 0.0, UlpErrorDouble(DoublePI, DoublePI))
	})

	t.Run("ZeroVsNonzero", func(t *testing.T) {
		require.True(t, math.IsInf(UlpErrorDouble(DoubleFromFloat64(1), doubleZero), 1))
	})
}

func TestSummarizeUlpErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		summary, err := SummarizeUlpErrors(nil)
		require.NoError(t, err)
		require.Equal(t, UlpErrorSummary{}, summary)
	})

	t.Run("Basic", func(t *testing.T) {
		summary, err := SummarizeUlpErrors([]float64{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, 4, summary.Count)
		require.InDelta(t, 2.5, summary.Mean, 1e-9)
		require.InDelta(t, 4.0, summary.Max, 1e-9)
	})
}
