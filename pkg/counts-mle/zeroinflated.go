package countsmle

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// zeroInflater is implemented by a family with a native zero-inflated
// likelihood; ZeroInfNLL delegates to it instead of assembling the inflated
// mass from the plain one.
type zeroInflater interface {
	zeroInfNLL(xs []float64, nu float64, par []float64) float64
}

// ZeroInfNLL returns the negative log-likelihood of the counts xs under a
// zero-inflated family f,
//
//	P(0) = nu + (1-nu) f(0; parf),    P(x) = (1-nu) f(x; parf)  for x > 0,
//
// with par laid out as [nu, parf...]. Infeasible parameters, nu outside
// [0, 1], or a non-finite likelihood return Penalty. Panics if par does not
// have 1+f.NumParams() entries.
func (e Evaluator) ZeroInfNLL(f Family, xs, par []float64) float64 {
	np := f.NumParams()
	mustLen("zero-inflated "+f.Name(), par, 1+np)
	nu := par[0]
	fp := par[1:]
	if nu < 0 || nu > 1 || !f.Feasible(fp) {
		return e.Penalty()
	}
	if zi, ok := f.(zeroInflater); ok {
		return e.finish(zi.zeroInfNLL(xs, nu, fp))
	}
	n0, nz := splitZeros(xs)
	var ll float64
	if n0 > 0 {
		z := math.Log(nu + (1-nu)*math.Exp(f.LogProb(0, fp)))
		if math.IsInf(z, -1) || math.IsNaN(z) {
			// nu == 0 with a zero mass too small for exp: take the
			// nu -> 0 limit and stay in log space.
			z = f.LogProb(0, fp)
		}
		ll += float64(n0) * z
	}
	if len(nz) > 0 {
		ll += float64(len(nz)) * math.Log1p(-nu)
		ll += floats.Sum(f.LogProbs(nil, nz, fp))
	}
	return e.finish(-ll)
}

// ZeroInfMixNLL returns the negative log-likelihood of the counts xs under a
// zero-inflated two-population mixture of family f,
//
//	nu 1{x==0} + w f(x; par1) + (1-nu-w) f(x; par2),
//
// with par laid out as [nu, w, par1..., par2...]. Infeasible component
// parameters, weights outside nu, w >= 0 and nu+w <= 1, or a non-finite
// likelihood return Penalty. Panics if par does not have 2+2*f.NumParams()
// entries.
func (e Evaluator) ZeroInfMixNLL(f Family, xs, par []float64) float64 {
	np := f.NumParams()
	mustLen("zero-inflated "+f.Name()+" mixture", par, 2+2*np)
	nu, w := par[0], par[1]
	p1 := par[2 : 2+np]
	p2 := par[2+np : 2+2*np]
	if nu < 0 || nu > 1 || w < 0 || w > 1 || nu+w > 1 ||
		!f.Feasible(p1) || !f.Feasible(p2) {
		return e.Penalty()
	}
	if w == 0 {
		// Same reordering as MixNLL: the live component moves to the first
		// slot and takes the whole non-inflated weight.
		w, p1, p2 = 1-nu, p2, p1
	}
	m := 1 - nu - w
	if m < 0 {
		// nu+w passed feasibility, so a negative remainder is rounding.
		m = 0
	}
	logW, logM := math.Log(w), math.Log(m)

	n0, nz := splitZeros(xs)
	var ll float64
	if n0 > 0 {
		c0 := CombineLogTerms(
			[]float64{logW + f.LogProb(0, p1)},
			[]float64{logM + f.LogProb(0, p2)},
		)
		if nu == 0 {
			ll += float64(n0) * (-c0)
		} else {
			ll += float64(n0) * math.Log(nu+math.Exp(-c0))
		}
	}
	if len(nz) > 0 {
		t1, t2 := mixLogTerms(f, nz, logW, logM, p1, p2)
		ll -= CombineLogTerms(t1, t2)
	}
	return e.finish(-ll)
}

// ZIPoissonNLL is the zero-inflated Poisson negative log-likelihood of the
// counts xs. par is [nu, lambda].
func ZIPoissonNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfNLL(Poisson, xs, par)
}

// ZINegBinomialNLL is the zero-inflated negative binomial negative
// log-likelihood of the counts xs. par is [nu, size, mu].
func ZINegBinomialNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfNLL(NegBinomial, xs, par)
}

// ZIPoisInvGaussNLL is the zero-inflated Poisson-inverse-Gaussian negative
// log-likelihood of the counts xs. par is [nu, mu, sigma].
func ZIPoisInvGaussNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfNLL(PoisInvGauss, xs, par)
}

// ZIPoisBetaNLL is the zero-inflated Poisson-beta negative log-likelihood of
// the counts xs. par is [nu, alpha, beta, c].
func ZIPoisBetaNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfNLL(PoisBeta, xs, par)
}

// ZIPoissonMixNLL is the zero-inflated two-population Poisson mixture
// negative log-likelihood of the counts xs. par is [nu, w, lambda1, lambda2].
func ZIPoissonMixNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfMixNLL(Poisson, xs, par)
}

// ZINegBinomialMixNLL is the zero-inflated two-population negative binomial
// mixture negative log-likelihood of the counts xs. par is
// [nu, w, size1, mu1, size2, mu2].
func ZINegBinomialMixNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfMixNLL(NegBinomial, xs, par)
}

// ZIPoisInvGaussMixNLL is the zero-inflated two-population
// Poisson-inverse-Gaussian mixture negative log-likelihood of the counts xs.
// par is [nu, w, mu1, sigma1, mu2, sigma2].
func ZIPoisInvGaussMixNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfMixNLL(PoisInvGauss, xs, par)
}

// ZIPoisBetaMixNLL is the zero-inflated two-population Poisson-beta mixture
// negative log-likelihood of the counts xs. par is
// [nu, w, alpha1, beta1, c1, alpha2, beta2, c2].
func ZIPoisBetaMixNLL(xs, par []float64) float64 {
	return Evaluator{}.ZeroInfMixNLL(PoisBeta, xs, par)
}
