package qd

import "math"

// This file implements the L1 layer: turning an unnormalized expansion of
// up to five components into a canonical NF-2 (Double) or NF-4 (Quad)
// result. renorm5 is the classical five-term qd renormalization routine
// from the Bailey/Hida/Li QD library, translated from its double-out-param
// C++ form into Go's multiple-return style.

// renorm2 reduces an unnormalized two-term expansion (s, e) to canonical
// NF-2 form. It is idempotent: renorm2 applied to an already-normalized
// pair returns it unchanged.
func renorm2(s, e float64) Double {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return Double{s, 0}
	}
	hi, lo := quickTwoSum(s, e)
	return Double{hi, lo}
}

// renorm3 reduces an unnormalized three-term expansion (s, e1, e2) to
// canonical NF-2 form: (s, e1) is renormalized first, then e2 is folded
// into the new correction and the pair renormalized again.
func renorm3(s, e1, e2 float64) Double {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return Double{s, 0}
	}
	s, e1 = quickTwoSum(s, e1)
	return renorm2(s, e1+e2)
}

// renorm4 reduces an unnormalized four-term expansion to canonical NF-4
// form; equivalent to renorm5 with a zero fifth term.
func renorm4(c0, c1, c2, c3 float64) Quad {
	return renorm5(c0, c1, c2, c3, 0)
}

// renorm5 reduces an unnormalized five-term expansion (c0..c4), assumed to
// already be in roughly decreasing order of magnitude, to canonical NF-4
// form. This is the standard QD-library renormalization algorithm: a first
// pass of quick_two_sum folds the trailing terms upward, carrying a
// correction into the next-more-significant slot, followed by a second pass
// that distributes the carries into their final four slots.
func renorm5(c0, c1, c2, c3, c4 float64) Quad {
	if math.IsNaN(c0) || math.IsInf(c0, 0) {
		return Quad{c0, 0, 0, 0}
	}

	s, e := quickTwoSum(c3, c4)
	c4 = e
	s, e = quickTwoSum(c2, s)
	c3 = e
	s, e = quickTwoSum(c1, s)
	c2 = e
	c0, e = quickTwoSum(c0, s)
	c1 = e

	s0 := c0
	s1 := c1
	var s2, s3 float64

	if s1 != 0 {
		s1, s2 = quickTwoSum(s1, c2)
		if s2 != 0 {
			s2, s3 = quickTwoSum(s2, c3)
		} else {
			s1, s2 = quickTwoSum(s1, c3)
		}
	} else {
		s0, s1 = quickTwoSum(s0, c2)
		if s1 != 0 {
			s1, s2 = quickTwoSum(s1, c3)
		} else {
			s0, s1 = quickTwoSum(s0, c3)
		}
	}

	if s2 != 0 {
		s2, s3 = quickTwoSum(s2, c4)
	} else {
		s1, s2 = quickTwoSum(s1, c4)
	}

	return Quad{s0, s1, s2, s3}
}
