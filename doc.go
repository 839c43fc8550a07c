// Package qd implements extended-precision floating point arithmetic using
// the unevaluated-sum (error-free transformation) technique popularized by
// the Bailey/Hida/Li QD library. Two types are provided: Double, a pair of
// float64 components giving roughly 106 bits of significand, and Quad, a
// quadruple of float64 components giving roughly 212 bits. Both retain the
// exponent range of float64, so values become more precise, not larger.
//
// Every operation is pure, total and reentrant: there is no shared mutable
// state beyond the package-level build switch (see UseFMA), and results are
// produced by value with no allocation on the arithmetic path.
package qd
