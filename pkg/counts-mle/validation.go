package countsmle

import "fmt"

// mustLen panics unless par has exactly want entries. Parameter vector
// length is a programming error, not a search direction, so it is not
// absorbed into the penalty the way infeasible values are.
func mustLen(name string, par []float64, want int) {
	if len(par) != want {
		panic(fmt.Sprintf("countsmle: %s: parameter vector has length %d, want %d", name, len(par), want))
	}
}

// splitZeros partitions counts into the number of zeros and the slice of
// non-zero observations, preserving order. When there are no zeros the
// input slice is returned as is.
func splitZeros(xs []float64) (n0 int, nz []float64) {
	for _, x := range xs {
		if x == 0 {
			n0++
		}
	}
	if n0 == 0 {
		return 0, xs
	}
	nz = make([]float64, 0, len(xs)-n0)
	for _, x := range xs {
		if x != 0 {
			nz = append(nz, x)
		}
	}
	return n0, nz
}
