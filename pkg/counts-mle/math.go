package countsmle

import "math"

// logAdd returns log(exp(a) + exp(b)) without overflowing either exponent.
// Either argument may be -Inf, meaning a zero term.
func logAdd(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, -1) {
		return math.Inf(-1)
	}
	d := b - a
	if d < -36 {
		// The smaller term is below double precision.
		return a
	}
	return a + math.Log1p(math.Exp(d))
}

// lgamma is math.Lgamma without the sign result; every argument in this
// package is positive.
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// reuse returns dst with length n, allocating when dst is nil.
func reuse(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	}
	if len(dst) != n {
		panic("countsmle: destination length mismatch")
	}
	return dst
}
