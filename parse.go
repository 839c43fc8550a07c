package qd

import (
	"strconv"
	"strings"
)

// This file implements decimal string parsing, grounded on the classical
// QD-library read routine: scan sign, digits, an optional decimal point,
// and an optional exponent into a plain digit string plus an effective
// power-of-ten, then reconstruct the value digit by digit (v = v*10+d) in
// the target type's own arithmetic so the result carries that type's
// precision rather than first being rounded to float64. The result is not
// guaranteed to be correctly rounded: scaling by the power of ten adds a
// few roundings of its own.

type decimalLiteral struct {
	negative bool
	digits   string
	exponent int
}

func parseDecimalLiteral(s string) (decimalLiteral, *ParseError) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimalLiteral{}, &ParseError{Kind: ParseErrorEmpty, Input: s}
	}

	i := 0
	negative := false
	if trimmed[i] == '+' || trimmed[i] == '-' {
		negative = trimmed[i] == '-'
		i++
	}

	var digits strings.Builder
	fracDigits := 0
	sawPoint := false
	sawDigit := false
	for i < len(trimmed) {
		c := trimmed[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			sawDigit = true
			if sawPoint {
				fracDigits++
			}
			i++
		case c == '.' && !sawPoint:
			sawPoint = true
			i++
		default:
			goto exponentPart
		}
	}
exponentPart:
	if !sawDigit {
		return decimalLiteral{}, &ParseError{Kind: ParseErrorInvalid, Input: s}
	}

	exponent := 0
	if i < len(trimmed) && (trimmed[i] == 'e' || trimmed[i] == 'E') {
		expStart := i + 1
		n, err := strconv.Atoi(trimmed[expStart:])
		if err != nil {
			return decimalLiteral{}, &ParseError{Kind: ParseErrorInvalid, Input: s}
		}
		exponent = n
		i = len(trimmed)
	}

	if i != len(trimmed) {
		return decimalLiteral{}, &ParseError{Kind: ParseErrorInvalid, Input: s}
	}

	return decimalLiteral{
		negative: negative,
		digits:   digits.String(),
		exponent: exponent - fracDigits,
	}, nil
}

func specialValueDouble(trimmed string) (Double, bool) {
	neg := false
	s := trimmed
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	switch strings.ToLower(s) {
	case "nan":
		return DoubleNaN(), true
	case "inf", "infinity":
		if neg {
			return DoubleNegativeInfinity(), true
		}
		return DoublePositiveInfinity(), true
	default:
		return Double{}, false
	}
}

func specialValueQuad(trimmed string) (Quad, bool) {
	neg := false
	s := trimmed
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	switch strings.ToLower(s) {
	case "nan":
		return QuadNaN(), true
	case "inf", "infinity":
		if neg {
			return QuadNegativeInfinity(), true
		}
		return QuadPositiveInfinity(), true
	default:
		return Quad{}, false
	}
}

// ParseDouble parses a decimal string into a Double. It accepts an optional
// leading sign, digits with an optional decimal point, an optional
// exponent ("e" or "E" followed by a signed integer), and the
// case-insensitive special forms "inf", "infinity", and "nan" (themselves
// optionally signed).
func ParseDouble(s string) (Double, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Double{}, &ParseError{Kind: ParseErrorEmpty, Input: s}
	}
	if v, ok := specialValueDouble(trimmed); ok {
		return v, nil
	}

	lit, perr := parseDecimalLiteral(s)
	if perr != nil {
		return Double{}, perr
	}

	v := doubleZero
	ten := DoubleFromFloat64(10)
	for _, c := range lit.digits {
		v = v.Mul(ten).Add(DoubleFromInt64(int64(c - '0')))
	}
	if lit.exponent != 0 {
		v = v.Mul(ten.Powi(lit.exponent))
	}
	if lit.negative {
		v = v.Neg()
	}
	return v, nil
}

// ParseQuad parses a decimal string into a Quad, following the same
// grammar as ParseDouble.
func ParseQuad(s string) (Quad, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Quad{}, &ParseError{Kind: ParseErrorEmpty, Input: s}
	}
	if v, ok := specialValueQuad(trimmed); ok {
		return v, nil
	}

	lit, perr := parseDecimalLiteral(s)
	if perr != nil {
		return Quad{}, perr
	}

	v := quadZero
	ten := QuadFromFloat64(10)
	for _, c := range lit.digits {
		v = v.Mul(ten).Add(QuadFromInt64(int64(c - '0')))
	}
	if lit.exponent != 0 {
		v = v.Mul(ten.Powi(lit.exponent))
	}
	if lit.negative {
		v = v.Neg()
	}
	return v, nil
}
