package qd

import (
	"math"
	"sync"
)

// This file is the L4 constants table: the machine-epsilon-style facts
// about both types (§ GLOSSARY "RADIX" through "MAX_10_EXP"), the
// mathematical constant family (pi and its common fractions, e, the
// logarithm bases, sqrt(2)), and the lookup tables the L3 transcendental
// routines reduce against (the exp seed table and the SINES/COSINES
// octant table).
//
// Five leading-order quantities — pi, e, ln(2), ln(10), sqrt(2) — cannot be
// derived from anything else and are seeded here as literal high-precision
// expansions (the same values published by the Bailey/Hida/Li QD library).
// Every other mathematical constant in this file is derived from those five
// by Quad arithmetic in init(), including the octant sine and cosine
// tables; the exp seed tables are derived the same way on first use (see
// expSeedTable). None of them is transcribed as additional literals: see
// DESIGN.md for why (the seed values are citable; a hand-transcribed table
// of 512 more isn't a risk worth taking when the package can compute them
// itself once, correctly, by construction).
//
// The genconst command (internal/genconst) independently regenerates this file's
// literal seeds from arbitrary-precision math via ALTree/bigfloat, for
// anyone who wants to check them against a different source than memory.

var (
	piRawQuad    = QuadRaw(3.141592653589793116, 1.224646799147353207e-16, -2.994769809718339666e-33, 1.112454220863365282e-49)
	eRawQuad     = QuadRaw(2.718281828459045091, 1.445646891729250158e-16, -2.127717108038176765e-33, 1.515630159841218954e-49)
	ln2RawQuad   = QuadRaw(6.931471805599452862e-01, 2.319046813846299558e-17, 5.707708438416212066e-34, -3.582432210601811423e-50)
	ln10RawQuad  = QuadRaw(2.302585092994045901e+00, -2.170756223382249351e-16, -9.984262454465776570e-33, -4.023357454450206379e-49)
	sqrt2RawQuad = QuadRaw(1.414213562373095049e+00, 1.090123301187678700e-16, 4.238976119212144825e-33, 2.140868390386169186e-49)
)

// Exported mathematical constants, Quad precision.
var (
	QuadPI    Quad
	QuadTAU   Quad
	QuadE     Quad
	QuadLN2   Quad
	QuadLN10  Quad
	QuadSQRT2 Quad

	QuadFracPi2  Quad
	QuadFracPi3  Quad
	QuadFracPi4  Quad
	QuadFracPi6  Quad
	QuadFracPi8  Quad
	QuadFracPi16 Quad
	Quad3FracPi4 Quad
	QuadFrac3Pi2 Quad
	QuadFrac5Pi4 Quad
	QuadFrac7Pi4 Quad
	QuadFrac1Pi  Quad
	QuadFrac2Pi  Quad

	QuadFrac1Sqrt2  Quad
	QuadFrac2SqrtPi Quad
	QuadLog2E       Quad
	QuadLog10E      Quad
	QuadLog2_10     Quad
	QuadLog10_2     Quad
)

// Exported mathematical constants, Double precision (demoted from the Quad
// values above).
var (
	DoublePI    Double
	DoubleTAU   Double
	DoubleE     Double
	DoubleLN2   Double
	DoubleLN10  Double
	DoubleSQRT2 Double

	DoubleFracPi2  Double
	DoubleFracPi3  Double
	DoubleFracPi4  Double
	DoubleFracPi6  Double
	DoubleFracPi8  Double
	DoubleFracPi16 Double
	Double3FracPi4 Double
	DoubleFrac3Pi2 Double
	DoubleFrac5Pi4 Double
	DoubleFrac7Pi4 Double
	DoubleFrac1Pi  Double
	DoubleFrac2Pi  Double

	DoubleFrac1Sqrt2  Double
	DoubleFrac2SqrtPi Double
	DoubleLog2E       Double
	DoubleLog10E      Double
	DoubleLog2_10     Double
	DoubleLog10_2     Double
)

// InvFacts holds 1/3!, 1/4!, ..., 1/17!, the reciprocal factorial table
// named in the L4 layout. The Taylor summations in double_transcendental.go
// and quad_transcendental.go compute their reciprocal factorials directly
// via Div instead of indexing into this table (simpler to get right
// without a compiler to catch an off-by-one); InvFacts is exposed because
// callers outside this package may want the same series coefficients.
var InvFacts [15]Quad

// machine-epsilon-style facts, matching the IEEE-754 binary64 exponent
// range shared by both types.
const (
	Radix = 2

	DoubleMantissaDigits = 106
	DoubleDigits         = 31
	DoubleMinExp         = -1021
	DoubleMaxExp         = 1024
	DoubleMin10Exp       = -307
	DoubleMax10Exp       = 308

	QuadMantissaDigits = 212
	QuadDigits         = 63
	QuadMinExp         = -1021
	QuadMaxExp         = 1024
	QuadMin10Exp       = -307
	QuadMax10Exp       = 308
)

var (
	DoubleEpsilon     = Double{math.Ldexp(1, -104), 0}
	DoubleMinPositive = Double{minNormalFloat64, 0}
	DoubleMax         = Double{math.MaxFloat64, 0}
	DoubleMin         = Double{-math.MaxFloat64, 0}
	DoubleMinValue    = Double{math.SmallestNonzeroFloat64, 0}
	DoubleOne         = Double{1, 0}
	DoubleNegOne      = Double{-1, 0}

	QuadEpsilon     = Quad{math.Ldexp(1, -211), 0, 0, 0}
	QuadMinPositive = Quad{minNormalFloat64, 0, 0, 0}
	QuadMax         = Quad{math.MaxFloat64, 0, 0, 0}
	QuadMin         = Quad{-math.MaxFloat64, 0, 0, 0}
	QuadMinValue    = Quad{math.SmallestNonzeroFloat64, 0, 0, 0}
	QuadOne         = Quad{1, 0, 0, 0}
	QuadNegOne      = Quad{-1, 0, 0, 0}
)

var (
	invLn2Div512     Double
	ln2Div512        Double
	invFracPi2Double Double
	fracPi2Double    Double
	fracPi4Double    Double
	frac3Pi4Double   Double
	piDouble         Double
	octantStepDouble    Double
	invOctantStepDouble Double
	sinesDouble   [4]Double
	cosinesDouble [4]Double
	log2EDouble   Double
	log10EDouble  Double

	invLn2Div512Quad     Quad
	ln2Div512Quad        Quad
	invFracPi2Quad Quad
	fracPi2Quad    Quad
	fracPi4Quad    Quad
	frac3Pi4Quad   Quad
	piQuad         Quad
	octantStepQuad    Quad
	invOctantStepQuad Quad
	sinesQuad   [4]Quad
	cosinesQuad [4]Quad
	log2EQuad  Quad
	log10EQuad Quad
)

func init() {
	QuadPI = piRawQuad
	QuadE = eRawQuad
	QuadLN2 = ln2RawQuad
	QuadLN10 = ln10RawQuad
	QuadSQRT2 = sqrt2RawQuad
	QuadTAU = QuadPI.Ldexp(1)

	QuadFracPi2 = QuadPI.Ldexp(-1)
	QuadFracPi3 = QuadPI.Div(QuadFromFloat64(3))
	QuadFracPi4 = QuadPI.Ldexp(-2)
	QuadFracPi6 = QuadPI.Div(QuadFromFloat64(6))
	QuadFracPi8 = QuadPI.Ldexp(-3)
	QuadFracPi16 = QuadPI.Ldexp(-4)
	Quad3FracPi4 = QuadFracPi4.Mul(QuadFromFloat64(3))
	QuadFrac3Pi2 = QuadFracPi2.Mul(QuadFromFloat64(3))
	QuadFrac5Pi4 = QuadFracPi4.Mul(QuadFromFloat64(5))
	QuadFrac7Pi4 = QuadFracPi4.Mul(QuadFromFloat64(7))
	QuadFrac1Pi = quadOne.Div(QuadPI)
	QuadFrac2Pi = QuadFrac1Pi.Ldexp(1)

	QuadFrac1Sqrt2 = QuadSQRT2.Recip()
	QuadFrac2SqrtPi = QuadPI.Sqrt().Recip().Ldexp(1)
	QuadLog2E = QuadLN2.Recip()
	QuadLog10E = QuadLN10.Recip()
	QuadLog2_10 = QuadLN10.Div(QuadLN2)
	QuadLog10_2 = QuadLN2.Div(QuadLN10)

	DoublePI = QuadPI.ToDouble()
	DoubleE = QuadE.ToDouble()
	DoubleLN2 = QuadLN2.ToDouble()
	DoubleLN10 = QuadLN10.ToDouble()
	DoubleSQRT2 = QuadSQRT2.ToDouble()
	DoubleTAU = QuadTAU.ToDouble()
	DoubleFracPi2 = QuadFracPi2.ToDouble()
	DoubleFracPi3 = QuadFracPi3.ToDouble()
	DoubleFracPi4 = QuadFracPi4.ToDouble()
	DoubleFracPi6 = QuadFracPi6.ToDouble()
	DoubleFracPi8 = QuadFracPi8.ToDouble()
	DoubleFracPi16 = QuadFracPi16.ToDouble()
	Double3FracPi4 = Quad3FracPi4.ToDouble()
	DoubleFrac3Pi2 = QuadFrac3Pi2.ToDouble()
	DoubleFrac5Pi4 = QuadFrac5Pi4.ToDouble()
	DoubleFrac7Pi4 = QuadFrac7Pi4.ToDouble()
	DoubleFrac1Pi = QuadFrac1Pi.ToDouble()
	DoubleFrac2Pi = QuadFrac2Pi.ToDouble()
	DoubleFrac1Sqrt2 = QuadFrac1Sqrt2.ToDouble()
	DoubleFrac2SqrtPi = QuadFrac2SqrtPi.ToDouble()
	DoubleLog2E = QuadLog2E.ToDouble()
	DoubleLog10E = QuadLog10E.ToDouble()
	DoubleLog2_10 = QuadLog2_10.ToDouble()
	DoubleLog10_2 = QuadLog10_2.ToDouble()

	piDouble = DoublePI
	piQuad = QuadPI
	fracPi2Double = DoubleFracPi2
	fracPi2Quad = QuadFracPi2
	fracPi4Double = DoubleFracPi4
	fracPi4Quad = QuadFracPi4
	frac3Pi4Double = Double3FracPi4
	frac3Pi4Quad = Quad3FracPi4
	log2EDouble = DoubleLog2E
	log2EQuad = QuadLog2E
	log10EDouble = DoubleLog10E
	log10EQuad = QuadLog10E

	ln2Div512Quad = QuadLN2.Div(QuadFromFloat64(512))
	ln2Div512 = ln2Div512Quad.ToDouble()
	invLn2Div512Quad = ln2Div512Quad.Recip()
	invLn2Div512 = invLn2Div512Quad.ToDouble()

	invFracPi2Quad = QuadFracPi2.Recip()
	invFracPi2Double = invFracPi2Quad.ToDouble()

	octantStepQuad = QuadPI.Div(QuadFromFloat64(16))
	octantStepDouble = octantStepQuad.ToDouble()
	invOctantStepQuad = octantStepQuad.Recip()
	invOctantStepDouble = invOctantStepQuad.ToDouble()

	for k := 1; k <= 4; k++ {
		angle := octantStepQuad.mulByFloat64(float64(k))
		s, c := sinCosTaylorBootstrapQuad(angle)
		sinesQuad[k-1] = s
		cosinesQuad[k-1] = c
		sinesDouble[k-1] = s.ToDouble()
		cosinesDouble[k-1] = c.ToDouble()
	}

	fact := QuadFromFloat64(1)
	for n := 1; n <= 17; n++ {
		fact = fact.mulByFloat64(float64(n))
		if n >= 3 {
			InvFacts[n-3] = quadOne.Div(fact)
		}
	}
}

// sinCosTaylorBootstrapQuad sums sin/cos of a small angle (here, always a
// multiple of pi/16) directly via the Taylor series, with no argument
// reduction. It exists separately from sinCosTaylorQuad in
// quad_transcendental.go only to break the initialization cycle: the
// general Sin/Cos routines reduce against the very table this function is
// used to build.
func sinCosTaylorBootstrapQuad(t Quad) (sin, cos Quad) {
	t2 := t.Sqr()
	negT2 := t2.Neg()
	cosSum, cosTerm := quadOne, quadOne
	sinSum, sinTerm := t, t
	for k := 1; k <= 30; k++ {
		cosTerm = cosTerm.Mul(negT2).Div(QuadFromFloat64(float64((2*k - 1) * (2 * k))))
		cosSum = cosSum.Add(cosTerm)
		sinTerm = sinTerm.Mul(negT2).Div(QuadFromFloat64(float64((2 * k) * (2*k + 1))))
		sinSum = sinSum.Add(sinTerm)
		if math.Abs(cosTerm[0]) < 1e-70 && math.Abs(sinTerm[0]) < 1e-70 {
			break
		}
	}
	return sinSum, cosSum
}

var (
	expSeedTableDoubleOnce sync.Once
	expSeedTableDoubleData [512]Double

	expSeedTableQuadOnce sync.Once
	expSeedTableQuadData [512]Quad
)

// expSeedTable returns exp(j*ln2/512) at Double precision, j in [0,512),
// built once on first use by repeated multiplication from the Taylor sum
// of the single step exp(ln2/512).
func expSeedTable(j int) Double {
	expSeedTableDoubleOnce.Do(func() {
		step := expTaylorDouble(ln2Div512)
		expSeedTableDoubleData[0] = doubleOne
		for i := 1; i < 512; i++ {
			expSeedTableDoubleData[i] = expSeedTableDoubleData[i-1].Mul(step)
		}
	})
	return expSeedTableDoubleData[j]
}

// expSeedTableQuad returns exp(j*ln2/512) at Quad precision, j in [0,512).
func expSeedTableQuad(j int) Quad {
	expSeedTableQuadOnce.Do(func() {
		step := expTaylorQuad(ln2Div512Quad)
		expSeedTableQuadData[0] = quadOne
		for i := 1; i < 512; i++ {
			expSeedTableQuadData[i] = expSeedTableQuadData[i-1].Mul(step)
		}
	})
	return expSeedTableQuadData[j]
}
