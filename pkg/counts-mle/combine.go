package countsmle

import "math"

// Rescaling window of CombineLogTerms, in decimal orders of magnitude. A
// term anchored to the window midpoint sits at most anchorOffset decimal
// orders from zero, so exponentiating it cannot overflow or underflow a
// float64; a gap wider than dominance means the smaller term is far below
// the precision of the larger one.
const (
	anchorOffset = 300
	dominance    = 600
)

// CombineLogTerms returns the negated log-sum of two per-observation log
// terms,
//
//	-sum_i log(exp(t1[i]) + exp(t2[i])),
//
// the mixture likelihood contraction used by the two-population objectives.
// Exponent ranges far beyond float64 are handled by recentering each pair on
// a shared decimal anchor before leaving log space; when one term is more
// than dominance decimal orders below the other, the pair reduces to the
// larger term unchanged. A term of -Inf marks zero mass for that component;
// a pair with both terms -Inf makes the result +Inf. Terms must not be NaN
// or +Inf. Panics if the slices differ in length.
func CombineLogTerms(t1, t2 []float64) float64 {
	if len(t1) != len(t2) {
		panic("countsmle: combine: slice length mismatch")
	}
	var sum float64
	for i := range t1 {
		a := t1[i] / math.Ln10
		b := t2[i] / math.Ln10

		// Anchor on the mean of the finite window edges around both terms.
		var anchor float64
		nfinite := 0
		for _, edge := range [4]float64{a - anchorOffset, a + anchorOffset, b - anchorOffset, b + anchorOffset} {
			if !math.IsInf(edge, 0) {
				anchor += edge
				nfinite++
			}
		}
		if nfinite == 0 {
			// Zero mass in both components: the observation contributes
			// log 0 and the total is pinned at -Inf.
			sum = math.Inf(-1)
			continue
		}
		anchor /= float64(nfinite)

		u1 := a - anchor
		u2 := b - anchor
		switch {
		case u1-u2 > dominance:
			sum += t1[i]
		case u2-u1 > dominance:
			sum += t2[i]
		default:
			sum += anchor*math.Ln10 + math.Log(math.Pow(10, u1)+math.Pow(10, u2))
		}
	}
	return -sum
}
