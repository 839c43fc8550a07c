package qd

import "math"

// This file implements the L3 transcendental operations on Quad, mirroring
// double_transcendental.go at the wider precision: more Taylor terms (the
// series needs to converge an extra ~100 bits further) and two Newton
// corrections in Ln rather than Double's one, per §4.7.

const (
	taylorConvergedQuad = 1e-65
	taylorMaxTermsQuad  = 18
)

func expTaylorQuad(r Quad) Quad {
	if r.IsZero() {
		return quadOne
	}
	sum := quadOne.Add(r)
	term := r
	for i := 2; i <= taylorMaxTermsQuad; i++ {
		term = term.Mul(r).Div(QuadFromFloat64(float64(i)))
		sum = sum.Add(term)
		if math.Abs(term[0]) < taylorConvergedQuad {
			break
		}
	}
	return sum
}

// Exp returns e^x.
func (x Quad) Exp() Quad {
	switch {
	case x.IsNaN():
		return QuadNaN()
	case x.IsInf(1):
		return x
	case x.IsInf(-1):
		return quadZero
	case x.IsZero():
		return quadOne
	case x[0] > expOverflowThreshold:
		return QuadPositiveInfinity()
	case x[0] < expUnderflowThreshold:
		return quadZero
	}

	kF := x.Mul(invLn2Div512Quad).Round()
	k := int64(kF[0])
	r := x.Sub(kF.Mul(ln2Div512Quad))

	expR := expTaylorQuad(r)

	kDiv := k / 512
	kMod := k % 512
	if kMod < 0 {
		kMod += 512
		kDiv--
	}

	return expR.Mul(expSeedTableQuad(int(kMod))).Ldexp(int(kDiv))
}

// Ln returns the natural logarithm of x.
func (x Quad) Ln() Quad {
	switch {
	case x.IsNaN() || x.IsSignNegative():
		return QuadNaN()
	case x.IsZero():
		return QuadNegativeInfinity()
	case x.IsInf(1):
		return x
	case x.Eq(quadOne):
		return quadZero
	}
	y := DoubleFromFloat64(math.Log(x[0])).ToQuad()
	y = y.Add(x.Mul(y.Neg().Exp())).Sub(quadOne)
	y = y.Add(x.Mul(y.Neg().Exp())).Sub(quadOne)
	return y
}

// Log2 returns log base 2 of x.
func (x Quad) Log2() Quad { return x.Ln().Mul(log2EQuad) }

// Log10 returns log base 10 of x.
func (x Quad) Log10() Quad { return x.Ln().Mul(log10EQuad) }

// Log returns the logarithm of x in the given base.
func (x Quad) Log(base Quad) Quad { return x.Ln().Div(base.Ln()) }

func sinCosTaylorQuad(t Quad) (sin, cos Quad) {
	if t.IsZero() {
		return quadZero, quadOne
	}
	t2 := t.Sqr()
	negT2 := t2.Neg()

	cosSum := quadOne
	cosTerm := quadOne
	sinSum := t
	sinTerm := t

	for k := 1; k <= taylorMaxTermsQuad; k++ {
		cosTerm = cosTerm.Mul(negT2).Div(QuadFromFloat64(float64((2*k - 1) * (2 * k))))
		cosSum = cosSum.Add(cosTerm)

		sinTerm = sinTerm.Mul(negT2).Div(QuadFromFloat64(float64((2 * k) * (2*k + 1))))
		sinSum = sinSum.Add(sinTerm)

		if math.Abs(cosTerm[0]) < taylorConvergedQuad && math.Abs(sinTerm[0]) < taylorConvergedQuad {
			break
		}
	}
	return sinSum, cosSum
}

// SinCos returns sin(x) and cos(x) together.
func (x Quad) SinCos() (sin, cos Quad) {
	if !x.IsFinite() {
		return QuadNaN(), QuadNaN()
	}
	if x.IsZero() {
		return x, quadOne
	}

	k := x.Mul(invFracPi2Quad).Round()
	r := x.Sub(k.Mul(fracPi2Quad))

	j := r.Mul(invOctantStepQuad).Round()
	t := r.Sub(j.Mul(octantStepQuad))

	sinT, cosT := sinCosTaylorQuad(t)

	jI := int(j[0])
	var sinJ, cosJ Quad
	switch {
	case jI == 0:
		sinJ, cosJ = quadZero, quadOne
	case jI > 0:
		sinJ, cosJ = sinesQuad[jI-1], cosinesQuad[jI-1]
	default:
		sinJ, cosJ = sinesQuad[-jI-1].Neg(), cosinesQuad[-jI-1]
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
func (x Quad) Sin() Quad { s, _ := x.SinCos(); return s }

// Cos returns cos(x).
func (x Quad) Cos() Quad { _, c := x.SinCos(); return c }

// Tan returns sin(x)/cos(x).
func (x Quad) Tan() Quad {
	s, c := x.SinCos()
	return s.Div(c)
}

// Atan2 returns the angle of (x, y) in (-pi, pi].
func (y Quad) Atan2(x Quad) Quad {
	if x.IsNaN() || y.IsNaN() {
		return QuadNaN()
	}
	if x.IsZero() {
		if y.IsZero() {
			return QuadNaN()
		}
		if y.IsSignPositive() {
			return fracPi2Quad
		}
		return fracPi2Quad.Neg()
	}
	if y.IsZero() {
		if x.IsSignPositive() {
			return quadZero
		}
		return piQuad
	}
	if x.Eq(y) {
		if y.IsSignPositive() {
			return fracPi4Quad
		}
		return frac3Pi4Quad.Neg()
	}
	if x.Eq(y.Neg()) {
		if y.IsSignPositive() {
			return frac3Pi4Quad
		}
		return fracPi4Quad.Neg()
	}

	r := x.Sqr().Add(y.Sqr()).Sqrt()
	xx := x.Div(r)
	yy := y.Div(r)

	z := DoubleFromFloat64(math.Atan2(y[0], x[0])).ToQuad()

	// One Newton step only recovers Double-level accuracy (~106 bits) from
	// the float64 seed; a second step is needed to reach Quad precision,
	// the same reasoning Ln applies for its two correction passes.
	for i := 0; i < 2; i++ {
		if math.Abs(xx[0]) > math.Abs(yy[0]) {
			sinZ, cosZ := z.SinCos()
			z = z.Add(yy.Sub(sinZ).Div(cosZ))
		} else {
			sinZ, cosZ := z.SinCos()
			z = z.Sub(xx.Sub(cosZ).Div(sinZ))
		}
	}
	return z
}

// Atan returns atan(x).
func (x Quad) Atan() Quad { return x.Atan2(quadOne) }

// Asin returns asin(x) for x in [-1, 1]; out of range is NaN.
func (x Quad) Asin() Quad {
	if x[0] > 1 || x[0] < -1 {
		return QuadNaN()
	}
	return x.Atan2(quadOne.Sub(x.Sqr()).Sqrt())
}

// Acos returns acos(x) for x in [-1, 1]; out of range is NaN.
func (x Quad) Acos() Quad {
	if x[0] > 1 || x[0] < -1 {
		return QuadNaN()
	}
	return quadOne.Sub(x.Sqr()).Sqrt().Atan2(x)
}

func sinhTaylorQuad(x Quad) Quad {
	if x.IsZero() {
		return x
	}
	x2 := x.Sqr()
	sum := x
	term := x
	for k := 1; k <= taylorMaxTermsQuad; k++ {
		term = term.Mul(x2).Div(QuadFromFloat64(float64((2 * k) * (2*k + 1))))
		sum = sum.Add(term)
		if math.Abs(term[0]) < taylorConvergedQuad {
			break
		}
	}
	return sum
}

// SinhCosh returns sinh(x) and cosh(x) together.
func (x Quad) SinhCosh() (sinh, cosh Quad) {
	if x.IsZero() {
		return x, quadOne
	}
	if math.Abs(x[0]) > 0.05 {
		ex := x.Exp()
		exInv := ex.Recip()
		sinh = ex.Sub(exInv).mulByFloat64(0.5)
		cosh = ex.Add(exInv).mulByFloat64(0.5)
		return
	}
	sinh = sinhTaylorQuad(x)
	cosh = quadOne.Add(sinh.Sqr()).Sqrt()
	return
}

// Sinh returns sinh(x).
func (x Quad) Sinh() Quad { s, _ := x.SinhCosh(); return s }

// Cosh returns cosh(x).
func (x Quad) Cosh() Quad { _, c := x.SinhCosh(); return c }

// Tanh returns tanh(x).
func (x Quad) Tanh() Quad {
	s, c := x.SinhCosh()
	return s.Div(c)
}

func asinhTaylorQuad(x Quad) Quad {
	if x.IsZero() {
		return x
	}
	x2 := x.Sqr()
	term := x
	sum := x
	for k := 1; k <= taylorMaxTermsQuad; k++ {
		num := float64((2*k - 1) * (2*k - 1))
		den := float64((2 * k) * (2*k + 1))
		term = term.Mul(x2).mulByFloat64(-num / den)
		sum = sum.Add(term)
		if math.Abs(term[0]) < taylorConvergedQuad {
			break
		}
	}
	return sum
}

// Asinh returns the inverse hyperbolic sine of x.
func (x Quad) Asinh() Quad {
	if math.Abs(x[0]) > 0.05 {
		return x.Add(x.Sqr().Add(quadOne).Sqrt()).Ln()
	}
	return asinhTaylorQuad(x)
}

// Acosh returns the inverse hyperbolic cosine of x, defined for x >= 1.
func (x Quad) Acosh() Quad {
	if x[0] < 1 {
		return QuadNaN()
	}
	return x.Add(x.Sqr().Sub(quadOne).Sqrt()).Ln()
}

// Atanh returns the inverse hyperbolic tangent of x, defined on (-1, 1).
func (x Quad) Atanh() Quad {
	if x[0] <= -1 || x[0] >= 1 {
		return QuadNaN()
	}
	return quadOne.Add(x).Div(quadOne.Sub(x)).Ln().mulByFloat64(0.5)
}
