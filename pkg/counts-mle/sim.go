package countsmle

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Sampler draws n counts from a fixed distribution using src. The
// Sample* functions below can be curried into one for the mixture and
// zero-inflation wrappers.
type Sampler func(src rand.Source, n int) []float64

// SamplePoisson draws n Poisson(lambda) counts.
func SamplePoisson(src rand.Source, n int, lambda float64) []float64 {
	if lambda <= 0 {
		panic("countsmle: SamplePoisson: lambda must be positive")
	}
	d := distuv.Poisson{Lambda: lambda, Src: src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand()
	}
	return xs
}

// SampleNegBinomial draws n negative binomial counts with the given size and
// mean, as a gamma-Poisson mixture: Poisson(L) with
// L ~ Gamma(shape size, rate size/mu).
func SampleNegBinomial(src rand.Source, n int, size, mu float64) []float64 {
	if size <= 0 || mu <= 0 {
		panic("countsmle: SampleNegBinomial: size and mu must be positive")
	}
	g := distuv.Gamma{Alpha: size, Beta: size / mu, Src: src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = distuv.Poisson{Lambda: g.Rand(), Src: src}.Rand()
	}
	return xs
}

// SamplePoisInvGauss draws n Poisson-inverse-Gaussian counts with the given
// mean and dispersion: Poisson(L) with L inverse-Gaussian of mean mu and
// shape mu/sigma. sigma == 0 draws plain Poisson(mu).
func SamplePoisInvGauss(src rand.Source, n int, mu, sigma float64) []float64 {
	if mu <= 0 || sigma < 0 {
		panic("countsmle: SamplePoisInvGauss: mu must be positive and sigma non-negative")
	}
	xs := make([]float64, n)
	if sigma == 0 {
		d := distuv.Poisson{Lambda: mu, Src: src}
		for i := range xs {
			xs[i] = d.Rand()
		}
		return xs
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	unif := distuv.Uniform{Min: 0, Max: 1, Src: src}
	for i := range xs {
		lam := invGaussRand(mu, mu/sigma, norm, unif)
		xs[i] = distuv.Poisson{Lambda: lam, Src: src}.Rand()
	}
	return xs
}

// invGaussRand draws one inverse-Gaussian variate by the
// Michael-Schucany-Haas transformation.
func invGaussRand(mean, shape float64, norm distuv.Normal, unif distuv.Uniform) float64 {
	v := norm.Rand()
	y := v * v
	x := mean + mean*mean*y/(2*shape) -
		mean/(2*shape)*math.Sqrt(4*mean*shape*y+mean*mean*y*y)
	if unif.Rand() <= mean/(mean+x) {
		return x
	}
	return mean * mean / x
}

// SamplePoisBeta draws n Poisson-beta counts: Poisson(c L) with
// L ~ Beta(alpha, beta).
func SamplePoisBeta(src rand.Source, n int, alpha, beta, c float64) []float64 {
	if alpha <= 0 || beta <= 0 || c <= 0 {
		panic("countsmle: SamplePoisBeta: alpha, beta and c must be positive")
	}
	b := distuv.Beta{Alpha: alpha, Beta: beta, Src: src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = distuv.Poisson{Lambda: c * b.Rand(), Src: src}.Rand()
	}
	return xs
}

// SampleMixture draws n counts from the two-population mixture
// w c1 + (1-w) c2, choosing the component independently per observation.
func SampleMixture(src rand.Source, n int, w float64, c1, c2 Sampler) []float64 {
	if w < 0 || w > 1 {
		panic("countsmle: SampleMixture: w must be in [0, 1]")
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if u.Rand() < w {
			xs = append(xs, c1(src, 1)[0])
		} else {
			xs = append(xs, c2(src, 1)[0])
		}
	}
	return xs
}

// SampleZeroInflated draws n counts that are structural zeros with
// probability nu and draws from c otherwise.
func SampleZeroInflated(src rand.Source, n int, nu float64, c Sampler) []float64 {
	if nu < 0 || nu > 1 {
		panic("countsmle: SampleZeroInflated: nu must be in [0, 1]")
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if u.Rand() < nu {
			xs = append(xs, 0)
		} else {
			xs = append(xs, c(src, 1)[0])
		}
	}
	return xs
}
