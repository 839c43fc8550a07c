package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDoubleDefault(t *testing.T) {
	require.Equal(t, "0", doubleZero.String())
	require.Equal(t, "-0", doubleNegZero.String())
	require.Equal(t, "NaN", DoubleNaN().String())
	require.Equal(t, "inf", DoublePositiveInfinity().String())
	require.Equal(t, "-inf", DoubleNegativeInfinity().String())
}

func TestFormatDoubleScientific(t *testing.T) {
	x := DoubleFromFloat64(123.456)
	got := x.Format(FormatOptions{Precision: 6, Scientific: true})
	require.Equal(t, "1.23456e+02", got)
}

func TestFormatDoublePlain(t *testing.T) {
	x := DoubleFromFloat64(123.5)
	got := x.Format(FormatOptions{Precision: 4})
	require.Equal(t, "123.5", got)
}

func TestDebugShowsRawComponents(t *testing.T) {
	d := DoublePair(1.0, 1e-20)
	got := d.Debug()
	require.Contains(t, got, "Double{")
	require.Contains(t, got, "1e-20")
}
