package qd

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/hpfloat/qd/internal/fuzzseed"
)

// randDouble draws a Double from a deliberately awkward exponent range so
// property tests exercise more than the [1,10) neighborhood.
func randDouble(r *rand.Rand) Double {
	mantissa := r.Float64()*2 - 1
	exp := r.Intn(40) - 20
	return DoubleFromFloat64(mantissa).Ldexp(exp)
}

func TestPropertyAddSubInverse(t *testing.T) {
	r := fuzzseed.New(t.Name())
	for i := 0; i < 200; i++ {
		a := randDouble(r)
		b := randDouble(r)
		got := a.Add(b).Sub(b)
		require.Less(t, UlpErrorDouble(got, a), 4.0, "a=%v b=%v", a, b)
	}
}

func TestPropertyMulDivInverse(t *testing.T) {
	r := fuzzseed.New(t.Name())
	for i := 0; i < 200; i++ {
		a := randDouble(r)
		b := randDouble(r)
		if b.IsZero() {
			continue
		}
		got := a.Mul(b).Div(b)
		require.Less(t, UlpErrorDouble(got, a), 8.0, "a=%v b=%v", a, b)
	}
}

func TestPropertyParseFormatRoundTrip(t *testing.T) {
	r := fuzzseed.New(t.Name())
	for i := 0; i < 200; i++ {
		a := randDouble(r)
		// 33 significant digits carry all 106 bits; DoubleDigits (31) alone
		// leaves a rounding error of up to about 10 DoubleEpsilon.
		s := a.Format(FormatOptions{Precision: DoubleDigits + 2, Scientific: true})
		got, err := ParseDouble(s)
		require.NoError(t, err)
		require.Less(t, UlpErrorDouble(got, a), 2.0, "s=%q", s)
	}
}

func TestPropertySqrtSquareInverse(t *testing.T) {
	r := fuzzseed.New(t.Name())
	for i := 0; i < 200; i++ {
		a := randDouble(r).Abs()
		if a.IsZero() {
			continue
		}
		got := a.Sqrt().Sqr()
		require.Less(t, UlpErrorDouble(got, a), 8.0, "a=%v", a)
	}
}
