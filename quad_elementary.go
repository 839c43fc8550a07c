package qd

import "math"

// This file implements the L3 "elementary" operations on Quad: abs, floor,
// ceil, trunc, round, fract, signum, ldexp, recip's power-of-two helper.

// Abs returns |a|.
func (a Quad) Abs() Quad {
	if a.IsSignNegative() {
		return a.Neg()
	}
	return a
}

// Floor returns the largest integral Quad <= a, flooring each component in
// turn and discarding anything below a component that moved.
func (a Quad) Floor() Quad {
	if !a.IsFinite() {
		return a
	}
	c := [4]float64{}
	for i := 0; i < 4; i++ {
		f := math.Floor(a[i])
		c[i] = f
		if f != a[i] {
			for j := i + 1; j < 4; j++ {
				c[j] = 0
			}
			return renorm4(c[0], c[1], c[2], c[3])
		}
	}
	return renorm4(c[0], c[1], c[2], c[3])
}

// Ceil returns the smallest integral Quad >= a, mirroring Floor.
func (a Quad) Ceil() Quad {
	if !a.IsFinite() {
		return a
	}
	c := [4]float64{}
	for i := 0; i < 4; i++ {
		f := math.Ceil(a[i])
		c[i] = f
		if f != a[i] {
			for j := i + 1; j < 4; j++ {
				c[j] = 0
			}
			return renorm4(c[0], c[1], c[2], c[3])
		}
	}
	return renorm4(c[0], c[1], c[2], c[3])
}

// Trunc returns a truncated toward zero.
func (a Quad) Trunc() Quad {
	if a.IsSignNegative() {
		return a.Neg().Floor().Neg()
	}
	return a.Floor()
}

// Round returns a rounded to the nearest integer, ties to even.
func (a Quad) Round() Quad {
	if !a.IsFinite() {
		return a
	}
	floor := a.Floor()
	rem := a.Sub(floor)
	half := Quad{0.5, 0, 0, 0}
	switch {
	case rem.Lt(half):
		return floor
	case rem.Gt(half):
		return floor.Add(quadOne)
	default:
		parity := 0.0
		for _, c := range floor {
			parity += math.Abs(math.Mod(c, 2))
		}
		if math.Mod(parity, 2) == 0 {
			return floor
		}
		return floor.Add(quadOne)
	}
}

// Fract returns a - trunc(a), the signed fractional part.
func (a Quad) Fract() Quad { return a.Sub(a.Trunc()) }

// Signum returns +1, -1, a signed zero, or NaN according to a's sign.
func (a Quad) Signum() Quad {
	switch {
	case a.IsNaN():
		return QuadNaN()
	case a[0] > 0:
		return quadOne
	case a[0] < 0:
		return quadNegOne
	case math.Signbit(a[0]):
		return quadNegZero
	default:
		return quadZero
	}
}

// Ldexp returns a * 2^n, exact for |n| small enough not to overflow or
// underflow any component.
func (a Quad) Ldexp(n int) Quad {
	return Quad{scalePow2(a[0], n), scalePow2(a[1], n), scalePow2(a[2], n), scalePow2(a[3], n)}
}

// isPowerOfTwo reports whether a is an exact positive power of two.
func (a Quad) isPowerOfTwo() bool {
	if a[1] != 0 || a[2] != 0 || a[3] != 0 || a[0] <= 0 {
		return false
	}
	frac, _ := math.Frexp(a[0])
	return frac == 0.5
}
