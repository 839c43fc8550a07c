package qd

import (
	"strconv"
	"strings"
)

// This file implements decimal formatting for Double and Quad: the default
// form, a fixed precision form, and a debug form that prints the raw
// components. Formatting works by repeatedly extracting the leading
// decimal digit (multiply by ten, take the integer part, subtract it back
// out) in the value's own arithmetic, mirroring the way parse.go
// reconstructs a value digit by digit in the other direction.

// FormatOptions controls how Double.Format / Quad.Format render a value.
type FormatOptions struct {
	// Precision is the number of significant decimal digits to print.
	// Zero selects a type-appropriate default (DoubleDigits / QuadDigits).
	Precision int
	// Scientific forces scientific notation (mantissa "e" exponent)
	// instead of the shortest-fit plain decimal form.
	Scientific bool
}

func defaultFormatOptions() FormatOptions {
	return FormatOptions{Precision: 0, Scientific: false}
}

func formatSpecial(isNaN, isPosInf, isNegInf bool) (string, bool) {
	switch {
	case isNaN:
		return "NaN", true
	case isPosInf:
		return "inf", true
	case isNegInf:
		return "-inf", true
	default:
		return "", false
	}
}

// digitsDouble extracts the leading `count` significant decimal digits of
// |d| (d must be finite and nonzero), rounded to nearest (half up), plus
// the base-10 exponent of the first digit, via repeated digit extraction
// in Double arithmetic. One extra digit is extracted beyond count to
// decide the rounding direction, then folded back in via
// roundHalfUpLastDigit.
func digitsDouble(d Double, count int) (digits []byte, exp10 int) {
	v := d.Abs()
	ten := DoubleFromFloat64(10)

	exp10 = 0
	for v.Lt(doubleOne) {
		v = v.Mul(ten)
		exp10--
	}
	for v.Ge(ten) {
		v = v.Div(ten)
		exp10++
	}

	raw := make([]byte, count+1)
	for i := 0; i < count+1; i++ {
		digit := v.Trunc()
		raw[i] = byte(digit[0]) + '0'
		v = v.Sub(digit).Mul(ten)
	}
	digits, carryOut := roundHalfUpLastDigit(raw[:count], raw[count] >= '5')
	if carryOut == 1 {
		digits[0] = '1'
		for i := 1; i < len(digits); i++ {
			digits[i] = '0'
		}
		exp10++
	}
	return digits, exp10
}

func digitsQuad(q Quad, count int) (digits []byte, exp10 int) {
	v := q.Abs()
	ten := QuadFromFloat64(10)

	exp10 = 0
	for v.Lt(quadOne) {
		v = v.Mul(ten)
		exp10--
	}
	for v.Ge(ten) {
		v = v.Div(ten)
		exp10++
	}

	raw := make([]byte, count+1)
	for i := 0; i < count+1; i++ {
		digit := v.Trunc()
		raw[i] = byte(digit[0]) + '0'
		v = v.Sub(digit).Mul(ten)
	}
	digits, carryOut := roundHalfUpLastDigit(raw[:count], raw[count] >= '5')
	if carryOut == 1 {
		digits[0] = '1'
		for i := 1; i < len(digits); i++ {
			digits[i] = '0'
		}
		exp10++
	}
	return digits, exp10
}

func roundHalfUpLastDigit(digits []byte, roundUp bool) (out []byte, carryOut int) {
	if !roundUp {
		return append([]byte(nil), digits...), 0
	}
	out = append([]byte(nil), digits...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < '9' {
			out[i]++
			return out, 0
		}
		out[i] = '0'
	}
	return out, 1
}

func assembleDecimal(negative bool, digits []byte, exp10 int, scientific bool) string {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}

	if scientific || exp10 < -4 || exp10 >= len(digits)+6 {
		b.WriteByte(digits[0])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.Write(digits[1:])
		}
		b.WriteByte('e')
		if exp10 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(itoa(exp10))
		return b.String()
	}

	switch {
	case exp10 < 0:
		b.WriteString("0.")
		for i := 0; i < -exp10-1; i++ {
			b.WriteByte('0')
		}
		b.Write(digits)
	case exp10+1 >= len(digits):
		b.Write(digits)
		for i := 0; i < exp10+1-len(digits); i++ {
			b.WriteByte('0')
		}
	default:
		b.Write(digits[:exp10+1])
		b.WriteByte('.')
		b.Write(digits[exp10+1:])
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0'+n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// formatDouble renders d per opts.
func formatDouble(d Double, opts FormatOptions) string {
	if s, ok := formatSpecial(d.IsNaN(), d.IsInf(1), d.IsInf(-1)); ok {
		return s
	}
	if d.IsZero() {
		if d.IsSignNegative() {
			return "-0"
		}
		return "0"
	}

	precision := opts.Precision
	if precision <= 0 {
		precision = DoubleDigits
	}

	digits, exp10 := digitsDouble(d, precision)
	return assembleDecimal(d.IsSignNegative(), digits, exp10, opts.Scientific)
}

// formatQuad renders q per opts.
func formatQuad(q Quad, opts FormatOptions) string {
	if s, ok := formatSpecial(q.IsNaN(), q.IsInf(1), q.IsInf(-1)); ok {
		return s
	}
	if q.IsZero() {
		if q.IsSignNegative() {
			return "-0"
		}
		return "0"
	}

	precision := opts.Precision
	if precision <= 0 {
		precision = QuadDigits
	}

	digits, exp10 := digitsQuad(q, precision)
	return assembleDecimal(q.IsSignNegative(), digits, exp10, opts.Scientific)
}

// Format renders d with explicit options (see FormatOptions).
func (d Double) Format(opts FormatOptions) string { return formatDouble(d, opts) }

// Format renders q with explicit options (see FormatOptions).
func (q Quad) Format(opts FormatOptions) string { return formatQuad(q, opts) }

// Debug renders every raw component of d, for diagnostics.
func (d Double) Debug() string {
	return "Double{" + formatComponents(d[:]) + "}"
}

// Debug renders every raw component of q, for diagnostics.
func (q Quad) Debug() string {
	return "Quad{" + formatComponents(q[:]) + "}"
}

func formatComponents(cs []float64) string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	return b.String()
}
