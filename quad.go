package qd

import "math"

// Quad is an extended-precision floating point number represented as an
// ordered 4-tuple (c0, c1, c2, c3) of float64 components with value
// c0+c1+c2+c3, giving roughly 212 bits of significand while retaining
// float64's exponent range.
//
// Normalized form (NF-4): either q holds a NaN or infinity in q[0] with
// q[1..3] == 0, or the components are strictly nonincreasing in magnitude
// with each |q[i+1]| <= ulp(q[i])/2, collectively summing to the value with
// no double-rounding. Every Quad returned by a function in this package
// satisfies NF-4.
//
// Quad is a plain value type: safe to copy, safe to share across goroutines
// without synchronization once constructed.
type Quad [4]float64

// QuadFromFloat64 lifts a float64 to Quad exactly.
func QuadFromFloat64(x float64) Quad {
	return Quad{x, 0, 0, 0}
}

// QuadFromFloat32 lifts a float32 to Quad exactly.
func QuadFromFloat32(x float32) Quad {
	return Quad{float64(x), 0, 0, 0}
}

// QuadFromInt64 constructs a Quad from a signed 64-bit integer, exactly.
func QuadFromInt64(n int64) Quad {
	hi := float64(n)
	lo := float64(n - int64(hi))
	return renorm4(hi, lo, 0, 0)
}

// QuadFromUint64 constructs a Quad from an unsigned 64-bit integer, exactly.
func QuadFromUint64(n uint64) Quad {
	hi := float64(n)
	var lo float64
	if hi == 0x1p64 {
		lo = -float64(-n)
	} else if hi >= 0 {
		rounded := uint64(hi)
		if rounded > n {
			lo = -float64(rounded - n)
		} else {
			lo = float64(n - rounded)
		}
	}
	return renorm4(hi, lo, 0, 0)
}

// QuadFromDouble lifts a Double to Quad exactly.
func QuadFromDouble(d Double) Quad {
	return d.ToQuad()
}

// QuadFour builds a Quad from four components, renormalizing to restore
// NF-4. Use QuadRaw instead when the caller already guarantees the
// invariant holds.
func QuadFour(c0, c1, c2, c3 float64) Quad {
	return renorm4(c0, c1, c2, c3)
}

// QuadRaw constructs a Quad from components that are already known to
// satisfy NF-4, skipping renormalization. This exists for defining
// constants and for callers translating from another already-normalized
// representation; misuse silently breaks later operations' accuracy.
func QuadRaw(c0, c1, c2, c3 float64) Quad {
	return Quad{c0, c1, c2, c3}
}

// At returns the i'th component (0-3). Indexing outside [0,3] is a
// programmer error and panics.
func (q Quad) At(i int) float64 { return q[i] }

// Components returns all four components such that their sum is q.
func (q Quad) Components() (c0, c1, c2, c3 float64) {
	return q[0], q[1], q[2], q[3]
}

// Hi is the leading (most significant) component.
func (q Quad) Hi() float64 { return q[0] }

// Float64 returns the nearest float64 to q (the leading component).
func (q Quad) Float64() float64 { return q[0] }

// ToDouble demotes q to Double by renormalizing its leading two components
// plus what the trailing two fold in.
func (q Quad) ToDouble() Double {
	return renorm3(q[0], q[1], q[2]+q[3])
}

// IsNaN reports whether q is NaN.
func (q Quad) IsNaN() bool { return math.IsNaN(q[0]) }

// IsInf reports whether q is an infinity of the given sign (sign > 0 for
// +Inf, sign < 0 for -Inf, sign == 0 for either).
func (q Quad) IsInf(sign int) bool { return math.IsInf(q[0], sign) }

// IsFinite reports whether q is neither NaN nor infinite.
func (q Quad) IsFinite() bool { return !math.IsNaN(q[0]) && !math.IsInf(q[0], 0) }

// IsZero reports whether q is positive or negative zero.
func (q Quad) IsZero() bool { return q[0] == 0 }

// IsSignPositive reports whether q's sign bit is unset.
func (q Quad) IsSignPositive() bool { return !math.Signbit(q[0]) }

// IsSignNegative reports whether q's sign bit is set.
func (q Quad) IsSignNegative() bool { return math.Signbit(q[0]) }

// IsNormal reports whether q's leading component is a normal float64.
func (q Quad) IsNormal() bool {
	a := math.Abs(q[0])
	return a >= minNormalFloat64 && a != math.Inf(1) && !math.IsNaN(q[0])
}

// IsSubnormal reports whether q's leading component is a subnormal float64.
func (q Quad) IsSubnormal() bool {
	a := math.Abs(q[0])
	return a != 0 && a < minNormalFloat64
}

// Class reports q's classification, derived entirely from the leading
// component.
func (q Quad) Class() FloatClass {
	switch {
	case math.IsNaN(q[0]):
		return ClassNaN
	case math.IsInf(q[0], 0):
		return ClassInf
	case q[0] == 0:
		return ClassZero
	case math.Abs(q[0]) < minNormalFloat64:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// Cmp compares a and b, returning -1, 0, or +1. NaN operands compare as
// unordered, reported via ok being false.
func (a Quad) Cmp(b Quad) (cmp int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		if a[i] < b[i] {
			return -1, true
		}
		if a[i] > b[i] {
			return 1, true
		}
	}
	return 0, true
}

// Eq reports whether a and b are exactly equal component-wise; NaN is never
// equal to anything.
func (a Quad) Eq(b Quad) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a == b
}

// Lt, Le, Gt, Ge implement the remaining IEEE-754 comparison predicates;
// each reports false whenever either operand is NaN.
func (a Quad) Lt(b Quad) bool { c, ok := a.Cmp(b); return ok && c < 0 }
func (a Quad) Le(b Quad) bool { c, ok := a.Cmp(b); return ok && c <= 0 }
func (a Quad) Gt(b Quad) bool { c, ok := a.Cmp(b); return ok && c > 0 }
func (a Quad) Ge(b Quad) bool { c, ok := a.Cmp(b); return ok && c >= 0 }

// String renders q using the default decimal formatting rules (see
// format.go); it exists so Quad satisfies fmt.Stringer.
func (q Quad) String() string {
	return formatQuad(q, defaultFormatOptions())
}
