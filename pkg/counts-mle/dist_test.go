package countsmle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func pmfSum(f Family, par []float64, upto int) float64 {
	var sum float64
	for x := 0; x <= upto; x++ {
		sum += math.Exp(f.LogProb(float64(x), par))
	}
	return sum
}

func TestPoissonLogProb(t *testing.T) {
	// P(3; 2) = 8 exp(-2)/6.
	want := math.Log(8 * math.Exp(-2) / 6)
	assert.InDelta(t, want, Poisson.LogProb(3, []float64{2}), 1e-12)

	// log P(0; lambda) = -lambda.
	assert.InDelta(t, -0.5, Poisson.LogProb(0, []float64{0.5}), 1e-15)

	assert.True(t, math.IsInf(Poisson.LogProb(-1, []float64{2}), -1))
	assert.True(t, math.IsInf(Poisson.LogProb(2.5, []float64{2}), -1))
}

func TestNegBinomialGeometricIdentity(t *testing.T) {
	// At size 1 the mass is geometric: P(x) = p (1-p)^x with p = 1/(1+mu).
	for _, mu := range []float64{0.5, 4} {
		p := 1 / (1 + mu)
		for x := 0; x <= 20; x++ {
			want := math.Log(p) + float64(x)*math.Log(1-p)
			got := NegBinomial.LogProb(float64(x), []float64{1, mu})
			assert.InEpsilon(t, want, got, 1e-12, "mu=%v x=%d", mu, x)
		}
	}
}

func TestNegBinomialZeroMean(t *testing.T) {
	par := []float64{2, 0}
	assert.Equal(t, 0.0, NegBinomial.LogProb(0, par))
	assert.True(t, math.IsInf(NegBinomial.LogProb(3, par), -1))
}

func TestNegBinomialZeroCount(t *testing.T) {
	// log P(0) = size log(size/(size+mu)).
	size, mu := 2.5, 6.0
	want := size * (math.Log(size) - math.Log(size+mu))
	assert.InEpsilon(t, want, NegBinomial.LogProb(0, []float64{size, mu}), 1e-12)
}

func TestNegBinomialSumsToOne(t *testing.T) {
	assert.InDelta(t, 1, pmfSum(NegBinomial, []float64{2.5, 6}, 400), 1e-6)
	assert.InDelta(t, 1, pmfSum(NegBinomial, []float64{0.3, 2}, 400), 1e-6)
}

func TestNegBinomialPoissonLimit(t *testing.T) {
	// size -> Inf at fixed mean recovers the Poisson mass.
	pois := distuv.Poisson{Lambda: 5}
	for x := 0; x <= 20; x++ {
		got := NegBinomial.LogProb(float64(x), []float64{1e8, 5})
		assert.InDelta(t, pois.LogProb(float64(x)), got, 1e-4, "x=%d", x)
	}
}

func TestPoisInvGaussClosedForms(t *testing.T) {
	mu, sigma := 4.0, 1.5
	par := []float64{mu, sigma}
	sq := math.Sqrt(1 + 2*sigma*mu)

	p0 := math.Exp(-2 * mu / (1 + sq))
	assert.InEpsilon(t, p0, math.Exp(PoisInvGauss.LogProb(0, par)), 1e-12)

	p1 := mu / sq * p0
	assert.InEpsilon(t, p1, math.Exp(PoisInvGauss.LogProb(1, par)), 1e-12)

	p2 := p0 * mu * mu / (2 * (1 + 2*sigma*mu)) * (1 + sigma/sq)
	assert.InEpsilon(t, p2, math.Exp(PoisInvGauss.LogProb(2, par)), 1e-12)
}

func TestPoisInvGaussSumsToOne(t *testing.T) {
	assert.InDelta(t, 1, pmfSum(PoisInvGauss, []float64{4, 1.5}, 600), 1e-6)
	assert.InDelta(t, 1, pmfSum(PoisInvGauss, []float64{2, 0.5}, 400), 1e-6)
	assert.InDelta(t, 1, pmfSum(PoisInvGauss, []float64{0.4, 3}, 400), 1e-6)
}

func TestPoisInvGaussPoissonLimit(t *testing.T) {
	pois := distuv.Poisson{Lambda: 4}

	// sigma == 0 is the Poisson branch itself.
	for x := 0; x <= 15; x++ {
		require.Equal(t, pois.LogProb(float64(x)), PoisInvGauss.LogProb(float64(x), []float64{4, 0}))
	}

	// Small sigma approaches it through the Bessel recurrence.
	for x := 0; x <= 15; x++ {
		got := PoisInvGauss.LogProb(float64(x), []float64{4, 1e-9})
		assert.InDelta(t, pois.LogProb(float64(x)), got, 1e-6, "x=%d", x)
	}
}

func TestPoisInvGaussVectorMatchesScalar(t *testing.T) {
	par := []float64{3.2, 0.8}
	xs := []float64{0, 3, 7, 1, 12, 5, 0, 2}
	got := PoisInvGauss.LogProbs(nil, xs, par)
	for i, x := range xs {
		require.Equal(t, PoisInvGauss.LogProb(x, par), got[i], "x=%v", x)
	}
}

func TestPoisBetaUniformMixingIdentity(t *testing.T) {
	// With L ~ Beta(1, 1) the marginal has the closed form
	// P(x) = (1 - PoissonCDF(x; c))/c. The range is capped where the CDF
	// complement still has headroom above double-precision cancellation.
	cases := []struct {
		c    float64
		maxX int
	}{
		{0.8, 8},
		{5, 15},
	}
	for _, cs := range cases {
		pois := distuv.Poisson{Lambda: cs.c}
		for x := 0; x <= cs.maxX; x++ {
			want := (1 - pois.CDF(float64(x))) / cs.c
			got := math.Exp(PoisBeta.LogProb(float64(x), []float64{1, 1, cs.c}))
			assert.InEpsilon(t, want, got, 1e-8, "c=%v x=%d", cs.c, x)
		}
	}
}

func TestPoisBetaDegenerateShapes(t *testing.T) {
	// beta == 0 pushes the whole mixing mass to L = 1, i.e. Poisson(c).
	pois := distuv.Poisson{Lambda: 3}
	for x := 0; x <= 10; x++ {
		require.Equal(t, pois.LogProb(float64(x)), PoisBeta.LogProb(float64(x), []float64{2, 0, 3}))
	}

	// alpha == 0 pushes it to L = 0, a point mass at zero counts.
	assert.Equal(t, 0.0, PoisBeta.LogProb(0, []float64{0, 2, 3}))
	assert.True(t, math.IsInf(PoisBeta.LogProb(4, []float64{0, 2, 3}), -1))
}

func TestPoisBetaSumsToOne(t *testing.T) {
	assert.InDelta(t, 1, pmfSum(PoisBeta, []float64{2, 3, 10}, 150), 1e-8)
	assert.InDelta(t, 1, pmfSum(PoisBeta, []float64{0.6, 0.9, 25}, 200), 1e-8)
}

func TestKummerIdentities(t *testing.T) {
	// 1F1(a; b; 0) = 1.
	assert.Equal(t, 0.0, logKummerSeries(2.5, 4, 0))

	// 1F1(a; a; -z) = exp(-z).
	for _, z := range []float64{0.5, 10} {
		assert.Equal(t, -z, logKummer1F1Neg(3, 3, z))
	}

	// 1F1(1; 2; -z) = (1 - exp(-z))/z.
	for _, z := range []float64{0.3, 3, 30, 300} {
		want := math.Log((1 - math.Exp(-z)) / z)
		assert.InDelta(t, want, logKummer1F1Neg(1, 2, z), 1e-10, "z=%v", z)
	}
}

func TestZipigLogProbs(t *testing.T) {
	mu, sigma, nu := 4.0, 1.0, 0.3
	par := []float64{mu, sigma}
	xs := []float64{0, 1, 5, 0, 9}

	got := zipigLogProbs(nil, xs, mu, sigma, nu)
	for i, x := range xs {
		lp := PoisInvGauss.LogProb(x, par)
		var want float64
		if x == 0 {
			want = math.Log(nu + (1-nu)*math.Exp(lp))
		} else {
			want = math.Log(1-nu) + lp
		}
		assert.InEpsilon(t, want, got[i], 1e-12, "x=%v", x)
	}

	// nu == 0 is exactly the plain mass.
	plain := PoisInvGauss.LogProbs(nil, xs, par)
	require.Equal(t, plain, zipigLogProbs(nil, xs, mu, sigma, 0))
}

func TestFamilyMetadata(t *testing.T) {
	cases := []struct {
		f    Family
		name string
		np   int
	}{
		{Poisson, "pois", 1},
		{NegBinomial, "nb", 2},
		{PoisInvGauss, "pig", 2},
		{PoisBeta, "pb", 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.f.Name())
		assert.Equal(t, c.np, c.f.NumParams())
	}
}
