package qd

// SumDoubles returns the sum of all values, accumulated left to right with
// the accurate Add so the result doesn't accrue extra error beyond each
// individual addition's own bound. Returns +0 for an empty slice.
func SumDoubles(values []Double) Double {
	acc := doubleZero
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// ProductDoubles returns the product of all values, accumulated left to
// right. Returns 1 for an empty slice.
func ProductDoubles(values []Double) Double {
	acc := doubleOne
	for _, v := range values {
		acc = acc.Mul(v)
	}
	return acc
}

// SumQuads returns the sum of all values, accumulated left to right.
// Returns +0 for an empty slice.
func SumQuads(values []Quad) Quad {
	acc := quadZero
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// ProductQuads returns the product of all values, accumulated left to
// right. Returns 1 for an empty slice.
func ProductQuads(values []Quad) Quad {
	acc := quadOne
	for _, v := range values {
		acc = acc.Mul(v)
	}
	return acc
}
