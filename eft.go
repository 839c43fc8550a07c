package qd

import "math"

// This file implements the L0 layer: the classical error-free
// transformations (EFTs) that every higher layer builds on. Each function
// returns both a correctly-rounded result and the exact correction term
// needed to recover the true mathematical sum or product.
//
// Adapted from the two-float64 "double-double" primitives historically
// shipped as Float128Add/Float128Mul et al.; generalized here to back both
// Double (two components) and Quad (four components), and extended with the
// FMA-based two_prod path selected by UseFMA.

// twoSum computes s = fl(a+b) and e such that s+e == a+b exactly.
// Works for any a, b; no ordering requirement.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return
}

// quickTwoSum computes s = fl(a+b) and e such that s+e == a+b exactly.
// Requires |a| >= |b|; cheaper than twoSum when that precondition holds.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return
}

// twoDiff computes s = fl(a-b) and e such that s+e == a-b exactly.
func twoDiff(a, b float64) (s, e float64) {
	s = a - b
	bb := s - a
	e = (a - (s - bb)) - (b + bb)
	return
}

// splitter is 2^27 + 1, the Dekker splitting constant for float64's 53-bit
// significand: multiplying by splitter and subtracting back out isolates the
// top 26 bits of the significand exactly.
const splitter = 134217729.0

// split divides a into two 26-bit-significand halves hi, lo with
// hi+lo == a exactly and no rounding in the reconstruction.
func split(a float64) (hi, lo float64) {
	t := splitter * a
	hi = t - (t - a)
	lo = a - hi
	return
}

// twoProdDekker computes p = fl(a*b) and e such that p+e == a*b exactly,
// using Dekker's splitting method. Used when UseFMA is false.
func twoProdDekker(a, b float64) (p, e float64) {
	p = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	e = ((aHi*bHi - p) + aHi*bLo + aLo*bHi) + aLo*bLo
	return
}

// twoProdFMA computes p = fl(a*b) and e such that p+e == a*b exactly,
// using a single fused multiply-add for the correction term. Used when
// UseFMA is true; preferred whenever a hardware FMA instruction exists,
// since it is both faster and simpler than the Dekker path.
func twoProdFMA(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return
}

// twoProd computes p = fl(a*b) and e such that p+e == a*b exactly, routing
// to the FMA or Dekker implementation according to UseFMA.
func twoProd(a, b float64) (p, e float64) {
	if UseFMA {
		return twoProdFMA(a, b)
	}
	return twoProdDekker(a, b)
}

// scalePow2 returns x * 2^p, exact whenever the result does not overflow or
// underflow to a subnormal, since multiplying by an exact power of two never
// rounds.
func scalePow2(x float64, p int) float64 {
	return math.Ldexp(x, p)
}
