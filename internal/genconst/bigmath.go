// This file holds the genconst command's arithmetic: it regenerates the
// literal seed constants in constants.go (pi, e, ln(2), ln(10), sqrt(2))
// from arbitrary-precision math, independent of the hand-transcribed
// QD-library literals currently checked in. It exists so those literals can
// be checked against a second source rather than trusted from memory alone.
package main

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// precisionBits is comfortably more than the 212 bits a Quad needs, so
// each split step below extracts a clean float64 with no residual
// rounding noise left over from the big.Float computation itself.
const precisionBits = 512

// splitToQuad decomposes x into four float64 components (c0, c1, c2, c3)
// such that c0+c1+c2+c3 approximates x to the full precision x was
// computed at, by repeatedly taking the nearest float64 and subtracting it
// back out. This is the standard way to seed a multi-component expansion
// from an arbitrary-precision value.
func splitToQuad(x *big.Float) (c0, c1, c2, c3 float64) {
	remaining := new(big.Float).SetPrec(precisionBits).Copy(x)
	out := make([]float64, 4)
	for i := range out {
		f, _ := remaining.Float64()
		out[i] = f
		remaining.Sub(remaining, new(big.Float).SetPrec(precisionBits).SetFloat64(f))
	}
	return out[0], out[1], out[2], out[3]
}

// computePi returns pi to precisionBits of precision.
func computePi() *big.Float {
	return bigfloat.Pi(precisionBits)
}

// computeE returns e = exp(1) to precisionBits of precision.
func computeE() *big.Float {
	one := new(big.Float).SetPrec(precisionBits).SetInt64(1)
	return bigfloat.Exp(one)
}

// computeLn2 returns ln(2) to precisionBits of precision.
func computeLn2() *big.Float {
	two := new(big.Float).SetPrec(precisionBits).SetInt64(2)
	return bigfloat.Log(two)
}

// computeLn10 returns ln(10) to precisionBits of precision.
func computeLn10() *big.Float {
	ten := new(big.Float).SetPrec(precisionBits).SetInt64(10)
	return bigfloat.Log(ten)
}

// computeSqrt2 returns sqrt(2) to precisionBits of precision, via
// math/big.Float's own Sqrt (added in Go 1.10) rather than bigfloat, since
// the standard library already covers this one exactly.
func computeSqrt2() *big.Float {
	two := new(big.Float).SetPrec(precisionBits).SetInt64(2)
	return new(big.Float).SetPrec(precisionBits).Sqrt(two)
}

// Seeds holds the regenerated literal constants, in the same (c0, c1, c2,
// c3) shape constants.go's QuadRaw calls expect.
type Seeds struct {
	Pi, E, Ln2, Ln10, Sqrt2 [4]float64
}

// Compute regenerates every seed constant.
func Compute() Seeds {
	toArray := func(x *big.Float) [4]float64 {
		c0, c1, c2, c3 := splitToQuad(x)
		return [4]float64{c0, c1, c2, c3}
	}
	return Seeds{
		Pi:    toArray(computePi()),
		E:     toArray(computeE()),
		Ln2:   toArray(computeLn2()),
		Ln10:  toArray(computeLn10()),
		Sqrt2: toArray(computeSqrt2()),
	}
}
