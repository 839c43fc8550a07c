package qd

import "math"

// Double is an extended-precision floating point number represented as an
// ordered pair (hi, lo) of float64 components with value hi+lo, giving
// roughly 106 bits of significand (twice float64's 53) while retaining
// float64's exponent range.
//
// Normalized form (NF-2): either d holds a NaN or infinity in d[0] with
// d[1] == 0, or |d[1]| <= ulp(d[0])/2 and d[0]+d[1] rounds exactly to
// d[0]. Zero is uniquely (+0, +0); negative zero is uniquely (-0, +0).
// Every Double returned by a function in this package satisfies NF-2.
//
// Double is a plain value type: it carries no allocation and no interior
// handles, is safe to copy, and is safe to share across goroutines without
// synchronization once constructed.
type Double [2]float64

// DoubleFromFloat64 lifts a float64 to Double exactly; the low component is
// always zero.
func DoubleFromFloat64(x float64) Double {
	return Double{x, 0}
}

// DoubleFromFloat32 lifts a float32 to Double exactly.
func DoubleFromFloat32(x float32) Double {
	return Double{float64(x), 0}
}

// DoubleFromInt64 constructs a Double from a signed 64-bit integer. The
// conversion is exact: a Double's 106-bit significand always has room for a
// 64-bit integer.
func DoubleFromInt64(n int64) Double {
	hi := float64(n)
	lo := float64(n - int64(hi))
	return renorm2(hi, lo)
}

// DoubleFromUint64 constructs a Double from an unsigned 64-bit integer,
// exactly.
func DoubleFromUint64(n uint64) Double {
	hi := float64(n)
	// float64(n) rounds to the nearest representable value; recover the
	// exact residual by working back through uint64 arithmetic so values
	// above 2^53 remain exact.
	var lo float64
	if hi == 0x1p64 {
		// n rounded up to 2^64, which uint64 cannot hold; the residual is
		// n - 2^64, and 2^64 - n is -n in uint64 arithmetic.
		lo = -float64(-n)
	} else if hi >= 0 {
		rounded := uint64(hi)
		if rounded > n {
			lo = -float64(rounded - n)
		} else {
			lo = float64(n - rounded)
		}
	}
	return renorm2(hi, lo)
}

// DoublePair lifts an exact pair of float64 components to a Double,
// renormalizing to restore NF-2. Use DoubleRaw instead when the caller
// already guarantees the invariant holds (e.g. when defining constants).
func DoublePair(hi, lo float64) Double {
	return renorm2(hi, lo)
}

// DoubleRaw constructs a Double from components that are already known to
// satisfy NF-2, skipping renormalization. Misuse (passing components that
// violate the invariant) will silently break every later operation's
// accuracy guarantees; this constructor exists for defining constants and
// for callers translating from another already-normalized representation.
func DoubleRaw(hi, lo float64) Double {
	return Double{hi, lo}
}

// At returns the i'th component (0 or 1). Indexing outside [0,1] is a
// programmer error and panics, matching Go's native array bounds check.
func (d Double) At(i int) float64 {
	return d[i]
}

// Components returns the two components (hi, lo) such that hi+lo == d.
func (d Double) Components() (hi, lo float64) {
	return d[0], d[1]
}

// Hi is the leading (most significant) component.
func (d Double) Hi() float64 { return d[0] }

// Lo is the trailing correction component.
func (d Double) Lo() float64 { return d[1] }

// Float64 returns the nearest float64 to d (simply the leading component,
// since NF-2 guarantees it is already the correctly-rounded float64 value).
func (d Double) Float64() float64 { return d[0] }

// IsNaN reports whether d is NaN.
func (d Double) IsNaN() bool { return math.IsNaN(d[0]) }

// IsInf reports whether d is an infinity of the given sign (sign > 0 for
// +Inf, sign < 0 for -Inf, sign == 0 for either).
func (d Double) IsInf(sign int) bool { return math.IsInf(d[0], sign) }

// IsFinite reports whether d is neither NaN nor infinite.
func (d Double) IsFinite() bool { return !math.IsNaN(d[0]) && !math.IsInf(d[0], 0) }

// IsZero reports whether d is positive or negative zero.
func (d Double) IsZero() bool { return d[0] == 0 }

// IsSignPositive reports whether d's sign bit is unset (positive, +0, or
// +Inf; true for NaN's sign bit too, matching math.Signbit semantics).
func (d Double) IsSignPositive() bool { return !math.Signbit(d[0]) }

// IsSignNegative reports whether d's sign bit is set.
func (d Double) IsSignNegative() bool { return math.Signbit(d[0]) }

// IsNormal reports whether d's leading component is a normal float64 (not
// zero, subnormal, infinite, or NaN).
func (d Double) IsNormal() bool {
	a := math.Abs(d[0])
	return a >= minNormalFloat64 && a != math.Inf(1) && !math.IsNaN(d[0])
}

// IsSubnormal reports whether d's leading component is a subnormal float64.
func (d Double) IsSubnormal() bool {
	a := math.Abs(d[0])
	return a != 0 && a < minNormalFloat64
}

const minNormalFloat64 = 2.2250738585072014e-308 // math.SmallestNonzeroFloat64 * 2^52

// FloatClass categorizes a Double the way the underlying float64 leading
// component is categorized.
type FloatClass int

const (
	ClassNormal FloatClass = iota
	ClassSubnormal
	ClassZero
	ClassInf
	ClassNaN
)

// Class reports d's classification, derived entirely from the high
// component.
func (d Double) Class() FloatClass {
	switch {
	case math.IsNaN(d[0]):
		return ClassNaN
	case math.IsInf(d[0], 0):
		return ClassInf
	case d[0] == 0:
		return ClassZero
	case math.Abs(d[0]) < minNormalFloat64:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// Cmp compares a and b, returning -1, 0, or +1. NaN operands compare as
// "unordered"; Cmp reports that case via the ok return being false (the
// numeric return value is then meaningless).
func (a Double) Cmp(b Double) (cmp int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	if a[0] < b[0] || (a[0] == b[0] && a[1] < b[1]) {
		return -1, true
	}
	if a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) {
		return 1, true
	}
	return 0, true
}

// Eq reports whether a and b are exactly equal. Since both operands are
// normalized, exact equality of both components is necessary and
// sufficient; NaN is never equal to anything, including itself.
func (a Double) Eq(b Double) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a[0] == b[0] && a[1] == b[1]
}

// Lt, Le, Gt, Ge implement the remaining IEEE-754 comparison predicates;
// each reports false whenever either operand is NaN.
func (a Double) Lt(b Double) bool { c, ok := a.Cmp(b); return ok && c < 0 }
func (a Double) Le(b Double) bool { c, ok := a.Cmp(b); return ok && c <= 0 }
func (a Double) Gt(b Double) bool { c, ok := a.Cmp(b); return ok && c > 0 }
func (a Double) Ge(b Double) bool { c, ok := a.Cmp(b); return ok && c >= 0 }

// ToQuad lifts d to Quad exactly: (d[0], d[1], 0, 0).
func (d Double) ToQuad() Quad {
	return Quad{d[0], d[1], 0, 0}
}

// String renders d using the default decimal formatting rules (see
// format.go); it exists so Double satisfies fmt.Stringer.
func (d Double) String() string {
	return formatDouble(d, defaultFormatOptions())
}
