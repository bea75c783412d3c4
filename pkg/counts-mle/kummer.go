package countsmle

import "math"

// kummerMaxTerms bounds the hypergeometric series; the break condition below
// is reached long before this for any rate the Poisson-beta model can fit.
const kummerMaxTerms = 1 << 21

// logKummer1F1Neg returns log 1F1(a; b; -z) for b >= a >= 0 and z >= 0.
// The alternating series at a negative argument is hopeless in floating
// point, so it is evaluated through Kummer's transformation
// 1F1(a; b; -z) = exp(-z) 1F1(b-a; b; z), whose terms are all positive.
func logKummer1F1Neg(a, b, z float64) float64 {
	return -z + logKummerSeries(b-a, b, z)
}

// logKummerSeries returns log 1F1(a; b; z) for a >= 0, b > 0 and z >= 0,
// accumulating the series term by term in log space.
func logKummerSeries(a, b, z float64) float64 {
	if a == 0 || z == 0 {
		return 0
	}
	logSum := 0.0  // log of the partial sum, starting from the k=0 term 1
	logTerm := 0.0 // log of term k
	for k := 0; k < kummerMaxTerms; k++ {
		fk := float64(k)
		logTerm += math.Log((a+fk)*z) - math.Log((b+fk)*(fk+1))
		logSum = logAdd(logSum, logTerm)
		// Past k ~ 2z the term ratio is below 1/2, so once a term drops 36
		// logs under the sum the remaining tail cannot move the result.
		if fk+1 > 2*z && logTerm < logSum-36 {
			break
		}
	}
	return logSum
}
