package countsmle

import "math"

// MixNLL returns the negative log-likelihood of the counts xs under a
// two-population mixture of family f,
//
//	w f(x; par1) + (1-w) f(x; par2),
//
// with par laid out as [w, par1..., par2...]. Infeasible component
// parameters, w outside [0, 1], or a non-finite likelihood return Penalty.
// Panics if par does not have 1+2*f.NumParams() entries.
func (e Evaluator) MixNLL(f Family, xs, par []float64) float64 {
	np := f.NumParams()
	mustLen(f.Name()+" mixture", par, 1+2*np)
	w := par[0]
	p1 := par[1 : 1+np]
	p2 := par[1+np : 1+2*np]
	if w < 0 || w > 1 || !f.Feasible(p1) || !f.Feasible(p2) {
		return e.Penalty()
	}
	if w == 0 {
		// Re-express with the live component first so the w == 0 and
		// w == 1 encodings of a one-population fit agree exactly.
		w, p1, p2 = 1, p2, p1
	}
	t1, t2 := mixLogTerms(f, xs, math.Log(w), math.Log1p(-w), p1, p2)
	return e.finish(CombineLogTerms(t1, t2))
}

// mixLogTerms builds the weighted per-observation component log terms
// logw1 + log f(x; p1) and logw2 + log f(x; p2) for CombineLogTerms.
func mixLogTerms(f Family, xs []float64, logw1, logw2 float64, p1, p2 []float64) (t1, t2 []float64) {
	t1 = f.LogProbs(nil, xs, p1)
	t2 = f.LogProbs(nil, xs, p2)
	for i := range t1 {
		t1[i] += logw1
		t2[i] += logw2
	}
	return t1, t2
}

// PoissonMixNLL is the two-population Poisson mixture negative
// log-likelihood of the counts xs. par is [w, lambda1, lambda2].
func PoissonMixNLL(xs, par []float64) float64 {
	return Evaluator{}.MixNLL(Poisson, xs, par)
}

// NegBinomialMixNLL is the two-population negative binomial mixture negative
// log-likelihood of the counts xs. par is [w, size1, mu1, size2, mu2].
func NegBinomialMixNLL(xs, par []float64) float64 {
	return Evaluator{}.MixNLL(NegBinomial, xs, par)
}

// PoisInvGaussMixNLL is the two-population Poisson-inverse-Gaussian mixture
// negative log-likelihood of the counts xs. par is [w, mu1, sigma1, mu2, sigma2].
func PoisInvGaussMixNLL(xs, par []float64) float64 {
	return Evaluator{}.MixNLL(PoisInvGauss, xs, par)
}

// PoisBetaMixNLL is the two-population Poisson-beta mixture negative
// log-likelihood of the counts xs. par is
// [w, alpha1, beta1, c1, alpha2, beta2, c2].
func PoisBetaMixNLL(xs, par []float64) float64 {
	return Evaluator{}.MixNLL(PoisBeta, xs, par)
}
