package fuzzseed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedIsDeterministic(t *testing.T) {
	a := Seed("TestDoubleAdd/ExactIntegers")
	b := Seed("TestDoubleAdd/ExactIntegers")
	require.Equal(t, a, b)
}

func TestSeedDiffersByName(t *testing.T) {
	a := Seed("TestDoubleAdd")
	b := Seed("TestDoubleSub")
	require.NotEqual(t, a, b)
}

func TestNewProducesAStream(t *testing.T) {
	r := New("TestDoubleMul/BeatsFloat64Precision")
	a := r.Uint64()
	b := r.Uint64()
	require.NotEqual(t, a, b)
}
