package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumDoubles(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.True(t, SumDoubles(nil).Eq(doubleZero))
	})

	t.Run("AccumulatesBeyondFloat64Precision", func(t *testing.T) {
		values := make([]Double, 0, 1000)
		for i := 0; i < 1000; i++ {
			values = append(values, DoubleFromFloat64(0.1))
		}
		got := SumDoubles(values)
		require.InDelta(t, 100.0, got.Float64(), 1e-26)
	})
}

func TestProductDoubles(t *testing.T) {
	require.True(t, ProductDoubles(nil).Eq(doubleOne))
	values := []Double{DoubleFromFloat64(2), DoubleFromFloat64(3), DoubleFromFloat64(4)}
	require.True(t, ProductDoubles(values).Eq(DoubleFromFloat64(24)))
}

func TestSumQuads(t *testing.T) {
	require.True(t, SumQuads(nil).Eq(quadZero))
	values := []Quad{QuadFromFloat64(1), QuadFromFloat64(2), QuadFromFloat64(3)}
	require.True(t, SumQuads(values).Eq(QuadFromFloat64(6)))
}
