package qd

import "math"

// This file implements the L3 "algebraic" operations on Double: powi, powf,
// nroot, cbrt.

// Powi returns a^n for an integer exponent n, via binary exponentiation
// (square-and-multiply), O(log|n|) multiplications. a^0 is 1, including
// 0^0 == 1. Negative n is handled by computing the positive power and
// reciprocating.
func (a Double) Powi(n int) Double {
	if n == 0 {
		return doubleOne
	}
	neg := n < 0
	if neg {
		n = -n
	}
	base := a
	result := doubleOne
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Sqr()
		n >>= 1
	}
	if neg {
		return result.Recip()
	}
	return result
}

// Powf returns a^y for a > 0, computed as exp(y*ln(a)). Special cases
// follow IEEE-754: 1^y == 1, a^±0 == 1, 0^y == 0 for y > 0 and +Inf for
// y < 0; NaN propagates.
func (a Double) Powf(y Double) Double {
	if y.IsZero() {
		return doubleOne
	}
	if a.Eq(doubleOne) {
		return doubleOne
	}
	if a.IsZero() {
		if y.IsSignPositive() {
			return doubleZero
		}
		return DoublePositiveInfinity()
	}
	if a.IsNaN() || y.IsNaN() || a.IsSignNegative() {
		return DoubleNaN()
	}
	return y.Mul(a.Ln()).Exp()
}

// Nroot returns the n'th root of a (n != 0) via Newton's iteration on
// f(y) = y^n - x, seeded from the hardware n'th root and refined to Double
// precision in a handful of iterations.
func (a Double) Nroot(n int) Double {
	if n == 0 {
		return DoubleNaN()
	}
	if a.IsZero() {
		return a
	}
	if a.IsSignNegative() && n%2 == 0 {
		return DoubleNaN()
	}

	sign := 1.0
	x := a
	if a.IsSignNegative() {
		sign = -1.0
		x = a.Neg()
	}

	seed := math.Pow(x[0], 1/float64(n))
	r := DoubleFromFloat64(seed)
	nD := DoubleFromFloat64(float64(n))
	for i := 0; i < 4; i++ {
		// y_{k+1} = y_k + y_k*(x - y_k^n/x... ) is numerically delicate;
		// use the standard stable form y_{k+1} = y_k - (y_k^n - x)/(n*y_k^(n-1)).
		pow := r.Powi(n)
		powPrev := r.Powi(n - 1)
		r = r.Sub(pow.Sub(x).Div(nD.Mul(powPrev)))
	}
	if sign < 0 {
		return r.Neg()
	}
	return r
}

// Cbrt returns the cube root of a, preserving sign (Cbrt(-8) == -2).
func (a Double) Cbrt() Double {
	return a.Nroot(3)
}
