// Package countsmle provides negative log-likelihood objectives for fitting
// count-data distributions: Poisson, negative binomial, Poisson-inverse-Gaussian
// and Poisson-beta, together with two-population mixtures and zero-inflated
// variants of each. The objectives are written for derivative-free optimizers
// such as Nelder-Mead: infeasible parameter vectors and overflowing likelihoods
// yield a large finite penalty rather than an error, NaN or Inf, so a search
// can step through the edge of the feasible region and recover.
//
// All observations are counts passed as []float64. Parameter vectors are flat
// []float64 in the layouts documented on each objective.
package countsmle

import (
	"golang.org/x/exp/rand"
)

// Family is a count distribution that can report its log probability mass.
// The four implementations are the package-level Poisson, NegBinomial,
// PoisInvGauss and PoisBeta values.
type Family interface {
	// Name is a short lowercase tag used in panic messages.
	Name() string

	// NumParams is the length of a single-population parameter vector.
	NumParams() int

	// Feasible reports whether par satisfies the distribution's parameter
	// constraints. par must have length NumParams.
	Feasible(par []float64) bool

	// LogProb returns the natural log of the probability mass at the count x
	// for a feasible par. It returns -Inf where the mass is exactly zero.
	LogProb(x float64, par []float64) float64

	// LogProbs evaluates LogProb at every element of xs, storing the results
	// in dst. dst is allocated when nil and must otherwise have len(xs).
	LogProbs(dst, xs []float64, par []float64) []float64
}

// Evaluator evaluates negative log-likelihood objectives. Src seeds the
// jitter added to penalty values; the zero value uses the global random
// source and is ready to use. The 16 package-level *NLL functions are
// shorthands for methods on a zero Evaluator.
type Evaluator struct {
	Src rand.Source
}
