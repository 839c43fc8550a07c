package qd

import "math"

// This file implements the L2 Double core operations: add, sub, mul, sqr,
// div, sqrt. Add has both a sloppy and an accurate variant (see §4.3); the
// accurate form is the one exposed as Add, matching the spec's decision to
// fix "accurate" as the default for the exposed surface. AddSloppy remains
// available for call sites that have measured the accuracy/speed tradeoff
// and chosen to take it.

// Add returns a+b, computed with the accurate algorithm: two independent
// two_sums across both component pairs, carried and renormalized. Roughly
// twice the work of AddSloppy for a strictly better error bound.
func (a Double) Add(b Double) Double {
	if !a.IsFinite() || !b.IsFinite() {
		return Double{a[0] + b[0], 0}
	}
	s1, s2 := twoSum(a[0], b[0])
	t1, t2 := twoSum(a[1], b[1])
	s2 += t1
	s1, s2 = quickTwoSum(s1, s2)
	s2 += t2
	s1, s2 = quickTwoSum(s1, s2)
	return Double{s1, s2}
}

// AddSloppy returns a+b using the cheaper single-two_sum algorithm
// (~11 flops), accurate to about 2 ulp of the extended significand rather
// than Add's tighter bound. Intended for call sites that have specifically
// chosen to trade accuracy for speed.
func (a Double) AddSloppy(b Double) Double {
	if !a.IsFinite() || !b.IsFinite() {
		return Double{a[0] + b[0], 0}
	}
	s, e := twoSum(a[0], b[0])
	e += a[1] + b[1]
	s, e = quickTwoSum(s, e)
	return Double{s, e}
}

// Neg returns -a.
func (a Double) Neg() Double {
	return Double{-a[0], -a[1]}
}

// Sub returns a-b; implemented as addition with b negated.
func (a Double) Sub(b Double) Double {
	return a.Add(b.Neg())
}

// SubSloppy returns a-b using AddSloppy.
func (a Double) SubSloppy(b Double) Double {
	return a.AddSloppy(b.Neg())
}

// mulByFloat64 returns a*b where b is an ordinary float64, used internally
// by division and square root to scale a Double by a hardware-precision
// quotient estimate.
func (a Double) mulByFloat64(b float64) Double {
	p1, p2 := twoProd(a[0], b)
	p2 += a[1] * b
	return renorm2(p1, p2)
}

// Mul returns a*b, accurate to about 1 ulp of the 106-bit result: one
// two_prod for the leading product plus the two cross terms, renormalized.
func (a Double) Mul(b Double) Double {
	if !a.IsFinite() || !b.IsFinite() {
		return Double{a[0] * b[0], 0}
	}
	p1, p2 := twoProd(a[0], b[0])
	p2 += a[0]*b[1] + a[1]*b[0]
	return renorm2(p1, p2)
}

// Sqr returns a*a, specialized to avoid recomputing the symmetric cross
// term twice.
func (a Double) Sqr() Double {
	p1, p2 := twoProd(a[0], a[0])
	p2 += 2 * a[0] * a[1]
	return renorm2(p1, p2)
}

// Div returns a/b using Newton-Raphson long division: a hardware estimate
// refined by two residual correction steps, then renormalized. Division by
// zero follows IEEE-754: a nonzero a/±0 is a signed infinity, 0/0 is NaN.
func (a Double) Div(b Double) Double {
	if b.IsZero() {
		if a.IsZero() {
			return DoubleNaN()
		}
		sign := 1.0
		if a.IsSignNegative() != b.IsSignNegative() {
			sign = -1.0
		}
		return DoubleFromFloat64(sign * posInf)
	}

	q1 := a[0] / b[0]
	r := a.Sub(b.mulByFloat64(q1))

	q2 := r[0] / b[0]
	r = r.Sub(b.mulByFloat64(q2))

	q3 := r[0] / b[0]

	s1, s2 := quickTwoSum(q1, q2)
	return renorm3(s1, s2, q3)
}

// Sqrt returns sqrt(a) via one Newton step (Karp's trick) applied to a
// hardware estimate: sqrt(a) ~= a*x + (a - (a*x)^2)*x/2 where
// x = 1/sqrt(a.Hi()). sqrt(+0) is +0, sqrt(-0) is -0; negative or NaN
// inputs produce NaN; +Inf produces +Inf.
func (a Double) Sqrt() Double {
	if a.IsZero() {
		return a
	}
	if a.IsSignNegative() || a.IsNaN() {
		return DoubleNaN()
	}
	if a.IsInf(1) {
		return a
	}

	x := 1 / sqrtFloat64(a[0])
	ax := a.mulByFloat64(x)
	diff := a.Sub(ax.Sqr())
	return ax.Add(diff.mulByFloat64(x * 0.5))
}

// Recip returns 1/a, taking a fast exact path when a is a power of two.
func (a Double) Recip() Double {
	if a.isPowerOfTwo() {
		_, exp := math.Frexp(a[0])
		return doubleOne.Ldexp(1 - exp)
	}
	return doubleOne.Div(a)
}
