package qd

import "math"

// This file implements the L3 transcendental operations on Double: exp,
// ln, log2, log10, log(base), sin/cos/tan with argument reduction, inverse
// trig, and the hyperbolics.
//
// Argument reduction for exp follows §4.7: x = k*ln2/512 + r with
// |r| <= ln2/1024, Taylor-summed, then recombined via an exact power of two
// and a precomputed seed table. Trig reduction composes the spec's first
// two reduction levels (modulo 2*pi, then to a quadrant via pi/2) into a
// single round(x/(pi/2)) step, since the two compose mathematically into
// exactly that; see DESIGN.md for the rationale. The third level (reducing
// to an octant <= pi/32 against the SINES/COSINES[1..4] tables) is kept as
// its own explicit step, matching the spec.

const (
	expOverflowThreshold  = 709.8
	expUnderflowThreshold = -745.2
	taylorConvergedDouble = 1e-33
	taylorMaxTerms        = 12
)

// expTaylorDouble sums exp(r) for |r| small via the Taylor series,
// converging in well under taylorMaxTerms for the reduced ranges this
// package calls it with.
func expTaylorDouble(r Double) Double {
	if r.IsZero() {
		return doubleOne
	}
	sum := doubleOne.Add(r)
	term := r
	for i := 2; i <= taylorMaxTerms; i++ {
		term = term.Mul(r).Div(DoubleFromFloat64(float64(i)))
		sum = sum.Add(term)
		if math.Abs(term[0]) < taylorConvergedDouble {
			break
		}
	}
	return sum
}

// Exp returns e^x.
func (x Double) Exp() Double {
	switch {
	case x.IsNaN():
		return DoubleNaN()
	case x.IsInf(1):
		return x
	case x.IsInf(-1):
		return doubleZero
	case x.IsZero():
		return doubleOne
	case x[0] > expOverflowThreshold:
		return DoublePositiveInfinity()
	case x[0] < expUnderflowThreshold:
		return doubleZero
	}

	kF := x.Mul(invLn2Div512).Round()
	k := int64(kF[0])
	r := x.Sub(kF.Mul(ln2Div512))

	expR := expTaylorDouble(r)

	kDiv := k / 512
	kMod := k % 512
	if kMod < 0 {
		kMod += 512
		kDiv--
	}

	return expR.Mul(expSeedTable(int(kMod))).Ldexp(int(kDiv))
}

// Ln returns the natural logarithm of x. ln(0) is -Inf; ln of a negative
// number is NaN.
func (x Double) Ln() Double {
	switch {
	case x.IsNaN() || x.IsSignNegative():
		return DoubleNaN()
	case x.IsZero():
		return DoubleNegativeInfinity()
	case x.IsInf(1):
		return x
	case x.Eq(doubleOne):
		return doubleZero
	}
	y := DoubleFromFloat64(math.Log(x[0]))
	return y.Add(x.Mul(y.Neg().Exp())).Sub(doubleOne)
}

// Log2 returns log base 2 of x.
func (x Double) Log2() Double { return x.Ln().Mul(log2EDouble) }

// Log10 returns log base 10 of x.
func (x Double) Log10() Double { return x.Ln().Mul(log10EDouble) }

// Log returns the logarithm of x in the given base.
func (x Double) Log(base Double) Double { return x.Ln().Div(base.Ln()) }

// sinCosTaylorDouble sums the Taylor series for sin(t) and cos(t) for small
// |t| (the package only ever calls this with |t| <= pi/32).
func sinCosTaylorDouble(t Double) (sin, cos Double) {
	if t.IsZero() {
		return doubleZero, doubleOne
	}
	t2 := t.Sqr()
	negT2 := t2.Neg()

	cosSum := doubleOne
	cosTerm := doubleOne
	sinSum := t
	sinTerm := t

	for k := 1; k <= taylorMaxTerms; k++ {
		cosTerm = cosTerm.Mul(negT2).Div(DoubleFromFloat64(float64((2*k - 1) * (2 * k))))
		cosSum = cosSum.Add(cosTerm)

		sinTerm = sinTerm.Mul(negT2).Div(DoubleFromFloat64(float64((2 * k) * (2*k + 1))))
		sinSum = sinSum.Add(sinTerm)

		if math.Abs(cosTerm[0]) < taylorConvergedDouble && math.Abs(sinTerm[0]) < taylorConvergedDouble {
			break
		}
	}
	return sinSum, cosSum
}

// SinCos returns sin(x) and cos(x) together, sharing the argument
// reduction.
func (x Double) SinCos() (sin, cos Double) {
	if !x.IsFinite() {
		return DoubleNaN(), DoubleNaN()
	}
	if x.IsZero() {
		return x, doubleOne
	}

	k := x.Mul(invFracPi2Double).Round()
	r := x.Sub(k.Mul(fracPi2Double))
	// fracPi2Double holds pi/2 only to Double precision; also subtracting k
	// times the part of pi/2 it leaves out keeps, e.g., sin(DoublePI) from
	// cancelling to exactly zero.
	r = r.Sub(k.Mul(fracPi2Quad.Sub(fracPi2Double.ToQuad()).ToDouble()))

	j := r.Mul(invOctantStepDouble).Round()
	t := r.Sub(j.Mul(octantStepDouble))

	sinT, cosT := sinCosTaylorDouble(t)

	jI := int(j[0])
	var sinJ, cosJ Double
	switch {
	case jI == 0:
		sinJ, cosJ = doubleZero, doubleOne
	case jI > 0:
		sinJ, cosJ = sinesDouble[jI-1], cosinesDouble[jI-1]
	default:
		sinJ, cosJ = sinesDouble[-jI-1].Neg(), cosinesDouble[-jI-1]
	}

	s := sinJ.Mul(cosT).Add(cosJ.Mul(sinT))
	c := cosJ.Mul(cosT).Sub(sinJ.Mul(sinT))

	kI := ((int(k[0]) % 4) + 4) % 4
	switch kI {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case 2:
		return s.Neg(), c.Neg()
	default:
		return c.Neg(), s
	}
}

// Sin returns sin(x).
func (x Double) Sin() Double { s, _ := x.SinCos(); return s }

// Cos returns cos(x).
func (x Double) Cos() Double { _, c := x.SinCos(); return c }

// Tan returns sin(x)/cos(x); undefined where cos(x) == 0, where Div already
// yields a signed infinity.
func (x Double) Tan() Double {
	s, c := x.SinCos()
	return s.Div(c)
}

// Atan2 returns the angle of (x, y) in (-pi, pi], via one Newton correction
// to a hardware-seeded estimate.
func (y Double) Atan2(x Double) Double {
	if x.IsNaN() || y.IsNaN() {
		return DoubleNaN()
	}
	if x.IsZero() {
		if y.IsZero() {
			return DoubleNaN()
		}
		if y.IsSignPositive() {
			return fracPi2Double
		}
		return fracPi2Double.Neg()
	}
	if y.IsZero() {
		if x.IsSignPositive() {
			return doubleZero
		}
		return piDouble
	}
	if x.Eq(y) {
		if y.IsSignPositive() {
			return fracPi4Double
		}
		return frac3Pi4Double.Neg()
	}
	if x.Eq(y.Neg()) {
		if y.IsSignPositive() {
			return frac3Pi4Double
		}
		return fracPi4Double.Neg()
	}

	r := x.Sqr().Add(y.Sqr()).Sqrt()
	xx := x.Div(r)
	yy := y.Div(r)

	z := DoubleFromFloat64(math.Atan2(y[0], x[0]))

	if math.Abs(xx[0]) > math.Abs(yy[0]) {
		sinZ, cosZ := z.SinCos()
		z = z.Add(yy.Sub(sinZ).Div(cosZ))
	} else {
		sinZ, cosZ := z.SinCos()
		z = z.Sub(xx.Sub(cosZ).Div(sinZ))
	}
	return z
}

// Atan returns atan(x).
func (x Double) Atan() Double { return x.Atan2(doubleOne) }

// Asin returns asin(x) for x in [-1, 1]; out of range is NaN.
func (x Double) Asin() Double {
	if x[0] > 1 || x[0] < -1 {
		return DoubleNaN()
	}
	return x.Atan2(doubleOne.Sub(x.Sqr()).Sqrt())
}

// Acos returns acos(x) for x in [-1, 1]; out of range is NaN.
func (x Double) Acos() Double {
	if x[0] > 1 || x[0] < -1 {
		return DoubleNaN()
	}
	return doubleOne.Sub(x.Sqr()).Sqrt().Atan2(x)
}

// sinhTaylorDouble sums the (non-alternating) Taylor series for sinh(x),
// used to avoid the cancellation that (exp(x)-exp(-x))/2 suffers for small
// |x|.
func sinhTaylorDouble(x Double) Double {
	if x.IsZero() {
		return x
	}
	x2 := x.Sqr()
	sum := x
	term := x
	for k := 1; k <= taylorMaxTerms; k++ {
		term = term.Mul(x2).Div(DoubleFromFloat64(float64((2 * k) * (2*k + 1))))
		sum = sum.Add(term)
		if math.Abs(term[0]) < taylorConvergedDouble {
			break
		}
	}
	return sum
}

// SinhCosh returns sinh(x) and cosh(x) together, sharing one Exp call when
// the direct formula doesn't suffer cancellation.
func (x Double) SinhCosh() (sinh, cosh Double) {
	if x.IsZero() {
		return x, doubleOne
	}
	if math.Abs(x[0]) > 0.05 {
		ex := x.Exp()
		exInv := ex.Recip()
		sinh = ex.Sub(exInv).mulByFloat64(0.5)
		cosh = ex.Add(exInv).mulByFloat64(0.5)
		return
	}
	sinh = sinhTaylorDouble(x)
	cosh = doubleOne.Add(sinh.Sqr()).Sqrt()
	return
}

// Sinh returns sinh(x).
func (x Double) Sinh() Double { s, _ := x.SinhCosh(); return s }

// Cosh returns cosh(x).
func (x Double) Cosh() Double { _, c := x.SinhCosh(); return c }

// Tanh returns tanh(x).
func (x Double) Tanh() Double {
	s, c := x.SinhCosh()
	return s.Div(c)
}

// Asinh returns the inverse hyperbolic sine of x.
func (x Double) Asinh() Double {
	if math.Abs(x[0]) > 0.05 {
		return x.Add(x.Sqr().Add(doubleOne).Sqrt()).Ln()
	}
	// near the origin, x + sqrt(x^2+1) loses relative precision; fall
	// back to the direct series instead.
	return asinhTaylorDouble(x)
}

// asinhTaylorDouble sums the Taylor series of asinh(x) = x - x^3/6 +
// 3x^5/40 - ... for small |x|.
func asinhTaylorDouble(x Double) Double {
	if x.IsZero() {
		return x
	}
	x2 := x.Sqr()
	term := x
	sum := x
	for k := 1; k <= taylorMaxTerms; k++ {
		num := float64((2*k - 1) * (2*k - 1))
		den := float64((2 * k) * (2*k + 1))
		term = term.Mul(x2).mulByFloat64(-num / den)
		sum = sum.Add(term)
		if math.Abs(term[0]) < taylorConvergedDouble {
			break
		}
	}
	return sum
}

// Acosh returns the inverse hyperbolic cosine of x, defined for x >= 1.
func (x Double) Acosh() Double {
	if x[0] < 1 {
		return DoubleNaN()
	}
	return x.Add(x.Sqr().Sub(doubleOne).Sqrt()).Ln()
}

// Atanh returns the inverse hyperbolic tangent of x, defined on (-1, 1).
func (x Double) Atanh() Double {
	if x[0] <= -1 || x[0] >= 1 {
		return DoubleNaN()
	}
	return doubleOne.Add(x).Div(doubleOne.Sub(x)).Ln().mulByFloat64(0.5)
}
