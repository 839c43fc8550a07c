// Command genconst prints Go source for the literal seed constants in
// ../../constants.go, recomputed from arbitrary precision math rather than
// transcribed from the QD library source. Run it and diff the output
// against constants.go's piRawQuad/eRawQuad/ln2RawQuad/ln10RawQuad/
// sqrt2RawQuad literals when in doubt about their correctness.
package main

import "fmt"

func main() {
	seeds := Compute()

	print := func(name string, v [4]float64) {
		fmt.Printf("%sRawQuad = QuadRaw(%#v, %#v, %#v, %#v)\n", name, v[0], v[1], v[2], v[3])
	}

	print("pi", seeds.Pi)
	print("e", seeds.E)
	print("ln2", seeds.Ln2)
	print("ln10", seeds.Ln10)
	print("sqrt2", seeds.Sqrt2)
}
