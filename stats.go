package qd

import (
	"math"

	"github.com/montanaflynn/stats"
)

// This file provides a diagnostic for precision regression tests: how many
// units in the last significant place a computed value differs from a
// reference value by, and summary statistics over a batch of such errors.
// It is not used by the arithmetic itself; it exists for _test.go files
// (and external callers building their own regression suites) to quantify
// "how close" rather than just "equal or not".

// UlpErrorDouble returns the difference between got and want, relative to
// |want| and measured in units of DoubleEpsilon. Returns 0 if both are equal
// (including both zero or both the same infinity); returns +Inf if want is
// zero and got isn't (or vice versa), since a relative ulp count isn't
// meaningful there.
func UlpErrorDouble(got, want Double) float64 {
	if got.Eq(want) {
		return 0
	}
	return ulpError(got.Sub(want).Abs()[0], got[0], want[0], DoubleEpsilon[0])
}

// UlpErrorQuad returns the ulp error of got against want, relative to
// |want| and measured in units of QuadEpsilon, with the same special cases
// as UlpErrorDouble.
func UlpErrorQuad(got, want Quad) float64 {
	if got.Eq(want) {
		return 0
	}
	return ulpError(got.Sub(want).Abs()[0], got[0], want[0], QuadEpsilon[0])
}

func ulpError(absDiff, got, want, eps float64) float64 {
	if absDiff == 0 {
		return 0
	}
	if want == 0 || got == 0 {
		return math.Inf(1)
	}
	return absDiff / (math.Abs(want) * eps)
}

// UlpErrorSummary holds descriptive statistics (via montanaflynn/stats)
// over a batch of ulp-error samples from a precision regression test.
type UlpErrorSummary struct {
	Count  int
	Mean   float64
	Max    float64
	StdDev float64
}

// SummarizeUlpErrors computes UlpErrorSummary over a batch of ulp-error
// samples, as produced by UlpErrorDouble / UlpErrorQuad across many test
// vectors. Returns the zero value for an empty input.
func SummarizeUlpErrors(samples []float64) (UlpErrorSummary, error) {
	if len(samples) == 0 {
		return UlpErrorSummary{}, nil
	}
	data := stats.Float64Data(samples)

	mean, err := data.Mean()
	if err != nil {
		return UlpErrorSummary{}, err
	}
	max, err := data.Max()
	if err != nil {
		return UlpErrorSummary{}, err
	}
	stddev, err := data.StandardDeviation()
	if err != nil {
		return UlpErrorSummary{}, err
	}

	return UlpErrorSummary{
		Count:  len(samples),
		Mean:   mean,
		Max:    max,
		StdDev: stddev,
	}, nil
}
