package qd

import "math"

// Foundational values needed by the arithmetic core itself, before the
// generated L4 constants table (constants.go) is available. These are not
// part of that table because every other entry in it is defined in terms of
// arithmetic that, in turn, needs these to exist first.

var (
	doubleZero    = Double{0, 0}
	doubleNegZero = Double{math.Copysign(0, -1), 0}
	doubleOne     = Double{1, 0}
	doubleNegOne  = Double{-1, 0}

	quadZero    = Quad{0, 0, 0, 0}
	quadNegZero = Quad{math.Copysign(0, -1), 0, 0, 0}
	quadOne     = Quad{1, 0, 0, 0}
	quadNegOne  = Quad{-1, 0, 0, 0}
)

var posInf = math.Inf(1)
var negInf = math.Inf(-1)

// sqrtFloat64 is the hardware square root, named to keep call sites reading
// as "this is the seed estimate", not "we dropped to float64 precision by
// accident".
func sqrtFloat64(x float64) float64 { return math.Sqrt(x) }

// DoubleNaN returns the canonical Double NaN.
func DoubleNaN() Double { return Double{math.NaN(), 0} }

// DoubleZero returns +0 as a Double.
func DoubleZero() Double { return doubleZero }

// DoubleNegZero returns -0 as a Double.
func DoubleNegZero() Double { return doubleNegZero }

// DoublePositiveInfinity returns +Inf as a Double.
func DoublePositiveInfinity() Double { return Double{posInf, 0} }

// DoubleNegativeInfinity returns -Inf as a Double.
func DoubleNegativeInfinity() Double { return Double{negInf, 0} }

// QuadNaN returns the canonical Quad NaN.
func QuadNaN() Quad { return Quad{math.NaN(), 0, 0, 0} }

// QuadZero returns +0 as a Quad.
func QuadZero() Quad { return quadZero }

// QuadNegZero returns -0 as a Quad.
func QuadNegZero() Quad { return quadNegZero }

// QuadPositiveInfinity returns +Inf as a Quad.
func QuadPositiveInfinity() Quad { return Quad{posInf, 0, 0, 0} }

// QuadNegativeInfinity returns -Inf as a Quad.
func QuadNegativeInfinity() Quad { return Quad{negInf, 0, 0, 0} }
