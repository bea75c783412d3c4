package countsmle

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Big is the magnitude of the penalty returned for infeasible or
// degenerate parameter vectors.
const Big = 1e100

// Penalty jitter: one squared draw from N(jitterMu, jitterSigma), around
// 1e8. At Big's scale the sum rounds back to Big, but the draw still
// advances the evaluator's random stream once per activation.
const (
	jitterMu    = 10000
	jitterSigma = 20
)

// Penalty returns Big plus a squared normal draw from the evaluator's
// source. Every objective funnels infeasible parameters and non-finite
// likelihoods through here, so an optimizer sees a large finite plateau
// instead of NaN or Inf and can retreat into the feasible region.
func (e Evaluator) Penalty() float64 {
	j := distuv.Normal{Mu: jitterMu, Sigma: jitterSigma, Src: e.Src}.Rand()
	return Big + j*j
}

// finish applies the non-finite guard to a raw negative log-likelihood.
func (e Evaluator) finish(nll float64) float64 {
	if math.IsInf(nll, 0) || math.IsNaN(nll) {
		return e.Penalty()
	}
	return nll
}
