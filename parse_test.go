package qd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDouble(t *testing.T) {
	t.Run("Integer", func(t *testing.T) {
		got, err := ParseDouble("42")
		require.NoError(t, err)
		require.True(t, got.Eq(DoubleFromFloat64(42)))
	})

	t.Run("NegativeDecimal", func(t *testing.T) {
		got, err := ParseDouble("-3.5")
		require.NoError(t, err)
		require.InDelta(t, -3.5, got.Float64(), 1e-30)
	})

	t.Run("Exponent", func(t *testing.T) {
		got, err := ParseDouble("1.5e3")
		require.NoError(t, err)
		require.InDelta(t, 1500.0, got.Float64(), 1e-25)
	})

	t.Run("SqrtTwoOverTwo", func(t *testing.T) {
		got, err := ParseDouble("0.70710678118654752440084436210485")
		require.NoError(t, err)
		want := DoubleFromFloat64(2).Sqrt().Div(DoubleFromFloat64(2))
		require.Less(t, UlpErrorDouble(got, want), 4.0)
	})

	t.Run("Special", func(t *testing.T) {
		n, err := ParseDouble("nan")
		require.NoError(t, err)
		require.True(t, n.IsNaN())

		inf, err := ParseDouble("-Infinity")
		require.NoError(t, err)
		require.True(t, inf.IsInf(-1))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseDouble("   ")
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		require.Equal(t, ParseErrorEmpty, pe.Kind)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDouble("12x34")
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		require.Equal(t, ParseErrorInvalid, pe.Kind)
	})
}

func TestParseQuadRoundTripsThroughFormat(t *testing.T) {
	x := QuadFromFloat64(123.456)
	s := x.String()
	got, err := ParseQuad(s)
	require.NoError(t, err)
	require.Less(t, UlpErrorQuad(got, x), 8.0)
}
