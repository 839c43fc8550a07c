package qd

import "math"

// This file implements the L3 "elementary" operations on Double: abs,
// floor, ceil, trunc, round, fract, signum, ldexp, recip's power-of-two
// helper.

// Abs returns |a|.
func (a Double) Abs() Double {
	if a.IsSignNegative() {
		return a.Neg()
	}
	return a
}

// Floor returns the largest integral Double <= a. The high component is
// floored first; if that changes it, the low component is discarded
// (it can no longer contribute once the high component has moved to a
// different integer). Otherwise the low component is floored too and the
// pair is renormalized, which correctly handles values that sit exactly on
// an integer boundary up to a tiny negative low correction.
func (a Double) Floor() Double {
	if !a.IsFinite() {
		return a
	}
	hiFloor := math.Floor(a[0])
	if hiFloor != a[0] {
		return Double{hiFloor, 0}
	}
	return renorm2(hiFloor, math.Floor(a[1]))
}

// Ceil returns the smallest integral Double >= a, mirroring Floor.
func (a Double) Ceil() Double {
	if !a.IsFinite() {
		return a
	}
	hiCeil := math.Ceil(a[0])
	if hiCeil != a[0] {
		return Double{hiCeil, 0}
	}
	return renorm2(hiCeil, math.Ceil(a[1]))
}

// Trunc returns a truncated toward zero.
func (a Double) Trunc() Double {
	if a.IsSignNegative() {
		return a.Neg().Floor().Neg()
	}
	return a.Floor()
}

// Round returns a rounded to the nearest integer, ties to even (banker's
// rounding). Unlike rounding just the high component, this compares the
// full expansion against the halfway point so a tiny nonzero low component
// always breaks a tie correctly.
func (a Double) Round() Double {
	if !a.IsFinite() {
		return a
	}
	floor := a.Floor()
	rem := a.Sub(floor)
	half := Double{0.5, 0}
	switch {
	case rem.Lt(half):
		return floor
	case rem.Gt(half):
		return floor.Add(doubleOne)
	default:
		if math.Abs(math.Mod(floor[0], 2)) == math.Abs(math.Mod(floor[1], 2)) {
			return floor
		}
		return floor.Add(doubleOne)
	}
}

// Fract returns a - trunc(a), the signed fractional part.
func (a Double) Fract() Double {
	return a.Sub(a.Trunc())
}

// Signum returns +1, -1, a signed zero, or NaN according to a's sign.
func (a Double) Signum() Double {
	switch {
	case a.IsNaN():
		return DoubleNaN()
	case a[0] > 0:
		return doubleOne
	case a[0] < 0:
		return doubleNegOne
	case math.Signbit(a[0]):
		return doubleNegZero
	default:
		return doubleZero
	}
}

// Ldexp returns a * 2^n, exact for |n| small enough not to overflow or
// underflow either component.
func (a Double) Ldexp(n int) Double {
	return Double{scalePow2(a[0], n), scalePow2(a[1], n)}
}

// isPowerOfTwo reports whether a is an exact positive power of two (both
// components considered, since a normalized power of two always has a zero
// low component).
func (a Double) isPowerOfTwo() bool {
	if a[1] != 0 || a[0] <= 0 {
		return false
	}
	frac, _ := math.Frexp(a[0])
	return frac == 0.5
}
