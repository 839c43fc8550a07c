package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoSum(t *testing.T) {
	a, b := 1.0, 1e-20
	s, e := twoSum(a, b)
	require.Equal(t, a+b, s)
	// s+e must reconstruct a+b exactly, in real-number terms.
	require.Equal(t, b, e)
}

func TestTwoProdBothImplementationsAgree(t *testing.T) {
	a, b := 1.0000000001, 0.9999999999
	hiD, loD := twoProdDekker(a, b)
	hiF, loF := twoProdFMA(a, b)
	require.Equal(t, hiD, hiF)
	require.InDelta(t, loD, loF, 1e-18)
}

func TestQuickTwoSumRequiresOrderedMagnitude(t *testing.T) {
	s, e := quickTwoSum(1.0, 1e-20)
	require.Equal(t, 1.0, s)
	require.InDelta(t, 1e-20, e, 1e-35)
}
