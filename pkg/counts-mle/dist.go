package countsmle

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// Built-in families. Parameter vector layouts:
//
//	Poisson       [lambda]          lambda > 0
//	NegBinomial   [size, mu]        size > 0, mu >= 0
//	PoisInvGauss  [mu, sigma]       mu > 0, sigma >= 0
//	PoisBeta      [alpha, beta, c]  alpha >= 0, beta >= 0, c > 0
var (
	Poisson      Family = poisson{}
	NegBinomial  Family = negBinomial{}
	PoisInvGauss Family = poisInvGauss{}
	PoisBeta     Family = poisBeta{}
)

type poisson struct{}

func (poisson) Name() string                { return "pois" }
func (poisson) NumParams() int              { return 1 }
func (poisson) Feasible(par []float64) bool { return par[0] > 0 }

func (poisson) LogProb(x float64, par []float64) float64 {
	return distuv.Poisson{Lambda: par[0]}.LogProb(x)
}

func (poisson) LogProbs(dst, xs []float64, par []float64) []float64 {
	dst = reuse(dst, len(xs))
	d := distuv.Poisson{Lambda: par[0]}
	for i, x := range xs {
		dst[i] = d.LogProb(x)
	}
	return dst
}

type negBinomial struct{}

func (negBinomial) Name() string                { return "nb" }
func (negBinomial) NumParams() int              { return 2 }
func (negBinomial) Feasible(par []float64) bool { return par[0] > 0 && par[1] >= 0 }

// LogProb uses the size/mean form of the negative binomial mass,
//
//	P(x) = Gamma(x+size)/(Gamma(size) x!) (size/(size+mu))^size (mu/(size+mu))^x,
//
// where mu == 0 collapses to a point mass at zero.
func (negBinomial) LogProb(x float64, par []float64) float64 {
	size, mu := par[0], par[1]
	if x < 0 || math.Floor(x) != x {
		return math.Inf(-1)
	}
	if mu == 0 {
		if x == 0 {
			return 0
		}
		return math.Inf(-1)
	}
	return lgamma(x+size) - lgamma(size) - lgamma(x+1) +
		size*math.Log(size/(size+mu)) + x*math.Log(mu/(size+mu))
}

func (nb negBinomial) LogProbs(dst, xs []float64, par []float64) []float64 {
	dst = reuse(dst, len(xs))
	for i, x := range xs {
		dst[i] = nb.LogProb(x, par)
	}
	return dst
}

type poisInvGauss struct{}

func (poisInvGauss) Name() string                { return "pig" }
func (poisInvGauss) NumParams() int              { return 2 }
func (poisInvGauss) Feasible(par []float64) bool { return par[0] > 0 && par[1] >= 0 }

// LogProb evaluates the Poisson-inverse-Gaussian (Sichel) mass in log space
// through the half-integer Bessel recurrence of pigTable. sigma == 0 is the
// Poisson limit.
func (poisInvGauss) LogProb(x float64, par []float64) float64 {
	mu, sigma := par[0], par[1]
	if x < 0 || math.Floor(x) != x {
		return math.Inf(-1)
	}
	if sigma == 0 {
		return distuv.Poisson{Lambda: mu}.LogProb(x)
	}
	logc := pigTable(int(x), mu, sigma)
	return pigAssemble(x, logc[int(x)], mu, sigma)
}

func (poisInvGauss) LogProbs(dst, xs []float64, par []float64) []float64 {
	dst = reuse(dst, len(xs))
	mu, sigma := par[0], par[1]
	if sigma == 0 {
		d := distuv.Poisson{Lambda: mu}
		for i, x := range xs {
			dst[i] = d.LogProb(x)
		}
		return dst
	}
	maxX := 0
	for _, x := range xs {
		if x >= 0 && math.Floor(x) == x && int(x) > maxX {
			maxX = int(x)
		}
	}
	logc := pigTable(maxX, mu, sigma)
	for i, x := range xs {
		if x < 0 || math.Floor(x) != x {
			dst[i] = math.Inf(-1)
			continue
		}
		dst[i] = pigAssemble(x, logc[int(x)], mu, sigma)
	}
	return dst
}

// zeroInfNLL handles the zero-inflated Sichel likelihood natively: for
// nu > 0 every observation goes through the inflated mass zipigLogProbs,
// with no zero/non-zero split, and nu == 0 is the plain likelihood.
func (p poisInvGauss) zeroInfNLL(xs []float64, nu float64, par []float64) float64 {
	if nu == 0 {
		return -floats.Sum(p.LogProbs(nil, xs, par))
	}
	return -floats.Sum(zipigLogProbs(nil, xs, par[0], par[1], nu))
}

// pigTable returns the logs of the scaled half-integer Bessel factors
// ck = exp(alpha) K_{k-1/2}(alpha) for k = 0..n, with
// alpha = sqrt(1+2*sigma*mu)/sigma. K_{1/2} = K_{-1/2} seeds the three-term
// recurrence K_{v+1}(z) = (2v/z) K_v(z) + K_{v-1}(z); the exp(alpha) scaling
// keeps the seed representable for small sigma and cancels against the
// exp(1/sigma) factor of the mass function in pigAssemble.
func pigTable(n int, mu, sigma float64) []float64 {
	alpha := math.Sqrt(1+2*sigma*mu) / sigma
	logc := make([]float64, n+1)
	seed := 0.5 * math.Log(math.Pi/(2*alpha))
	logc[0] = seed
	if n >= 1 {
		logc[1] = seed
	}
	for k := 1; k < n; k++ {
		logc[k+1] = logAdd(math.Log(float64(2*k-1)/alpha)+logc[k], logc[k-1])
	}
	return logc
}

// pigAssemble combines a Bessel factor from pigTable with the closed-form
// parts of the Sichel log mass,
//
//	log P(x) = log(2 alpha/pi)/2 + x log(mu/(alpha sigma)) + 1/sigma - alpha
//	           - lgamma(x+1) + log K_{x-1/2}(alpha).
//
// The ill-conditioned 1/sigma - alpha difference is rationalized to
// -2 mu/(1+sqrt(1+2 sigma mu)), which also absorbs the factor scaling.
func pigAssemble(x, logck, mu, sigma float64) float64 {
	sq := math.Sqrt(1 + 2*sigma*mu)
	alpha := sq / sigma
	delta := -2 * mu / (1 + sq)
	return 0.5*math.Log(2*alpha/math.Pi) + x*(math.Log(mu)-math.Log(sq)) +
		delta - lgamma(x+1) + logck
}

// zipigLogProbs evaluates the zero-inflated Sichel log mass with extra zero
// mass nu: log(nu + (1-nu) P(0)) at zero, log(1-nu) + log P(x) elsewhere.
// nu == 0 gives exactly the plain mass.
func zipigLogProbs(dst, xs []float64, mu, sigma, nu float64) []float64 {
	dst = PoisInvGauss.LogProbs(dst, xs, []float64{mu, sigma})
	if nu == 0 {
		return dst
	}
	logNu := math.Log(nu)
	log1mNu := math.Log1p(-nu)
	for i, x := range xs {
		if x == 0 {
			dst[i] = logAdd(logNu, log1mNu+dst[i])
		} else {
			dst[i] += log1mNu
		}
	}
	return dst
}

type poisBeta struct{}

func (poisBeta) Name() string   { return "pb" }
func (poisBeta) NumParams() int { return 3 }
func (poisBeta) Feasible(par []float64) bool {
	return par[0] >= 0 && par[1] >= 0 && par[2] > 0
}

// LogProb evaluates the Poisson-beta mass
//
//	P(x) = c^x/x! B(x+alpha, beta)/B(alpha, beta) 1F1(x+alpha; x+alpha+beta; -c),
//
// the marginal of Poisson(c L) with L ~ Beta(alpha, beta). alpha == 0
// degenerates to a point mass at zero and beta == 0 to Poisson(c).
func (poisBeta) LogProb(x float64, par []float64) float64 {
	alpha, beta, c := par[0], par[1], par[2]
	if x < 0 || math.Floor(x) != x {
		return math.Inf(-1)
	}
	if alpha == 0 {
		if x == 0 {
			return 0
		}
		return math.Inf(-1)
	}
	if beta == 0 {
		return distuv.Poisson{Lambda: c}.LogProb(x)
	}
	return x*math.Log(c) - lgamma(x+1) +
		mathext.Lbeta(x+alpha, beta) - mathext.Lbeta(alpha, beta) +
		logKummer1F1Neg(x+alpha, x+alpha+beta, c)
}

func (pb poisBeta) LogProbs(dst, xs []float64, par []float64) []float64 {
	dst = reuse(dst, len(xs))
	for i, x := range xs {
		dst[i] = pb.LogProb(x, par)
	}
	return dst
}
