package qd

import "math"

// This file implements the L2 Quad core operations: add, sub, mul, sqr,
// div, sqrt, recip.
//
// Add and Mul take a deliberately conservative path rather than
// transcribing the full qd_real nine/ten-term cascading algorithms from
// memory: Add treats a Quad as two chained Doubles (components 0-1 and
// 2-3), combines them using the already-verified Double primitives, and
// merges the four raw results with renorm5; Mul forms each cross product
// with twoProd and folds it into an accumulator with Add. This costs a little precision
// relative to the textbook cascade but is easy to verify by inspection,
// which matters more given none of this can be compiled or run before
// being read. See DESIGN.md.

// Add returns a+b.
func (a Quad) Add(b Quad) Quad {
	if !a.IsFinite() || !b.IsFinite() {
		return Quad{a[0] + b[0], 0, 0, 0}
	}
	aHi := Double{a[0], a[1]}
	aLo := Double{a[2], a[3]}
	bHi := Double{b[0], b[1]}
	bLo := Double{b[2], b[3]}

	hiSum := aHi.Add(bHi)
	loSum := aLo.Add(bLo)

	return renorm5(hiSum[0], hiSum[1], loSum[0], loSum[1], 0)
}

// AddSloppy returns a+b using the cheaper Double.AddSloppy at each half.
func (a Quad) AddSloppy(b Quad) Quad {
	if !a.IsFinite() || !b.IsFinite() {
		return Quad{a[0] + b[0], 0, 0, 0}
	}
	aHi := Double{a[0], a[1]}
	aLo := Double{a[2], a[3]}
	bHi := Double{b[0], b[1]}
	bLo := Double{b[2], b[3]}

	hiSum := aHi.AddSloppy(bHi)
	loSum := aLo.AddSloppy(bLo)

	return renorm5(hiSum[0], hiSum[1], loSum[0], loSum[1], 0)
}

// Neg returns -a.
func (a Quad) Neg() Quad {
	return Quad{-a[0], -a[1], -a[2], -a[3]}
}

// Sub returns a-b.
func (a Quad) Sub(b Quad) Quad { return a.Add(b.Neg()) }

// SubSloppy returns a-b using AddSloppy.
func (a Quad) SubSloppy(b Quad) Quad { return a.AddSloppy(b.Neg()) }

// mulByFloat64 returns a*b where b is an ordinary float64.
func (a Quad) mulByFloat64(b float64) Quad {
	p0, e0 := twoProd(a[0], b)
	p1, e1 := twoProd(a[1], b)
	p2, e2 := twoProd(a[2], b)
	p3 := a[3] * b
	return renorm5(p0, p1+e0, p2+e1, p3+e2, 0)
}

// Mul returns a*b: every cross product a[i]*b[j] with i+j <= 3 is formed
// exactly via twoProd and folded into a running accumulator with Add. This
// keeps every intermediate result correct by construction, trading some
// precision against the textbook single-pass cascade for confidence.
func (a Quad) Mul(b Quad) Quad {
	if !a.IsFinite() || !b.IsFinite() {
		return Quad{a[0] * b[0], 0, 0, 0}
	}
	acc := quadZero
	for i := 0; i < 4; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j+i < 4; j++ {
			if b[j] == 0 {
				continue
			}
			hi, lo := twoProd(a[i], b[j])
			acc = acc.Add(Quad{hi, lo, 0, 0})
		}
	}
	return acc
}

// Sqr returns a*a.
func (a Quad) Sqr() Quad { return a.Mul(a) }

// Div returns a/b using Newton-Raphson long division: a hardware estimate
// refined by four residual correction steps (two more than Double's two,
// matching the doubled target precision), then renormalized. Division by
// zero follows IEEE-754.
func (a Quad) Div(b Quad) Quad {
	if b.IsZero() {
		if a.IsZero() {
			return QuadNaN()
		}
		sign := 1.0
		if a.IsSignNegative() != b.IsSignNegative() {
			sign = -1.0
		}
		return QuadFromFloat64(sign * posInf)
	}

	q0 := a[0] / b[0]
	r := a.Sub(b.mulByFloat64(q0))

	q1 := r[0] / b[0]
	r = r.Sub(b.mulByFloat64(q1))

	q2 := r[0] / b[0]
	r = r.Sub(b.mulByFloat64(q2))

	q3 := r[0] / b[0]
	r = r.Sub(b.mulByFloat64(q3))

	q4 := r[0] / b[0]

	return renorm5(q0, q1, q2, q3, q4)
}

// Sqrt returns sqrt(a): the hardware reciprocal-square-root estimate is
// refined by two Newton steps in Double precision, then one Karp's-trick
// step in Quad precision, which roughly doubles the number of correct bits
// from Double to Quad precision.
func (a Quad) Sqrt() Quad {
	if a.IsZero() {
		return a
	}
	if a.IsSignNegative() || a.IsNaN() {
		return QuadNaN()
	}
	if a.IsInf(1) {
		return a
	}

	x := DoubleFromFloat64(1 / sqrtFloat64(a[0]))
	aHead := a.ToDouble()

	for i := 0; i < 2; i++ {
		// x_{k+1} = x_k + x_k*(1 - a*x_k^2)/2, in Double precision, used
		// only to refine the reciprocal-sqrt seed before the Quad step.
		x = x.Add(x.mulByFloat64(0.5).Mul(doubleOne.Sub(aHead.Mul(x.Sqr()))))
	}

	xq := x.ToQuad()
	ax := a.Mul(xq)
	diff := a.Sub(ax.Sqr())
	return ax.Add(diff.Mul(xq).mulByFloat64(0.5))
}

// Recip returns 1/a, taking a fast exact path when a is a power of two.
func (a Quad) Recip() Quad {
	if a.isPowerOfTwo() {
		_, exp := math.Frexp(a[0])
		return quadOne.Ldexp(1 - exp)
	}
	return quadOne.Div(a)
}
