package countsmle

import (
	"gonum.org/v1/gonum/floats"
)

// NLL returns the negative log-likelihood of the counts xs under family f
// with parameter vector par. Infeasible par, or a likelihood that overflows
// to zero or infinity, returns Penalty instead. Panics if par does not have
// f.NumParams() entries.
func (e Evaluator) NLL(f Family, xs, par []float64) float64 {
	mustLen(f.Name(), par, f.NumParams())
	if !f.Feasible(par) {
		return e.Penalty()
	}
	return e.finish(-floats.Sum(f.LogProbs(nil, xs, par)))
}

// PoissonNLL is the Poisson negative log-likelihood of the counts xs.
// par is [lambda] with lambda > 0.
func PoissonNLL(xs, par []float64) float64 {
	return Evaluator{}.NLL(Poisson, xs, par)
}

// NegBinomialNLL is the negative binomial negative log-likelihood of the
// counts xs. par is [size, mu] with size > 0 and mean mu >= 0.
func NegBinomialNLL(xs, par []float64) float64 {
	return Evaluator{}.NLL(NegBinomial, xs, par)
}

// PoisInvGaussNLL is the Poisson-inverse-Gaussian negative log-likelihood of
// the counts xs. par is [mu, sigma] with mean mu > 0 and dispersion
// sigma >= 0; sigma == 0 is Poisson(mu).
func PoisInvGaussNLL(xs, par []float64) float64 {
	return Evaluator{}.NLL(PoisInvGauss, xs, par)
}

// PoisBetaNLL is the Poisson-beta negative log-likelihood of the counts xs.
// par is [alpha, beta, c] with alpha >= 0, beta >= 0 and rate c > 0.
func PoisBetaNLL(xs, par []float64) float64 {
	return Evaluator{}.NLL(PoisBeta, xs, par)
}
