package estimator

import "math"

// log2Factorial returns log2(n!) computed as a running sum of log2(i),
// matching log2_factorial(n) from the spec: 0 for n in {0, 1}.
//
// A programmer error (negative n) panics rather than returning a
// sentinel; this mirrors the spec's distinction between domain inputs
// that are merely infeasible (handled by +Inf) and inputs that are
// simply invalid.
func log2Factorial(n int) float64 {
	if n < 0 {
		panic("estimator: log2Factorial: negative argument")
	}
	sum := 0.0
	for i := 2; i <= n; i++ {
		sum += math.Log2(float64(i))
	}
	return sum
}

// log2Binomial returns log2(C(n, k)), or 0 if k < 0 or k > n (the spec's
// convention for the degenerate/out-of-range case, not +Inf: an empty
// choice contributes a multiplicative factor of 1).
func log2Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return log2Factorial(n) - log2Factorial(k) - log2Factorial(n-k)
}

// log2Multinomial returns log2(n! / (k1! k2! ... km!)) for a partition of
// n into the ks, which must sum to n. Negative or out-of-range ks are a
// programmer error, matching log2Binomial's stricter sibling in the spec
// (multinomial coefficients have no natural "out of range" degenerate
// case the way binomial does).
func log2Multinomial(n int, ks ...int) float64 {
	sum := 0
	for _, k := range ks {
		if k < 0 {
			panic("estimator: log2Multinomial: negative part")
		}
		sum += k
	}
	if sum != n {
		panic("estimator: log2Multinomial: parts do not sum to n")
	}
	result := log2Factorial(n)
	for _, k := range ks {
		result -= log2Factorial(k)
	}
	return result
}

// binaryEntropy returns the base-2 binary entropy function H(x) for
// x in (0, 1); H(0) and H(1) are defined as 0 by continuation.
func binaryEntropy(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return -x*math.Log2(x) - (1-x)*math.Log2(1-x)
}

// gaussianBinomial returns the Gaussian binomial coefficient
// [m choose r]_q = prod_{i=0..r-1} (1 - q^(m-i)) / (1 - q^(i+1)),
// accumulated as a real-valued magnitude (not in log space: the spec
// requires this one in magnitude form since it's used directly as a
// count, not composed with other log2 quantities until the caller
// takes its own log2).
func gaussianBinomial(m, r, q int) float64 {
	if r < 0 || r > m {
		return 0
	}
	if r == 0 {
		return 1
	}
	result := 1.0
	for i := 0; i < r; i++ {
		num := 1 - math.Pow(float64(q), float64(m-i))
		den := 1 - math.Pow(float64(q), float64(i+1))
		result *= num / den
	}
	return result
}

// log2Add returns log2(2^a + 2^b), computed stably as
// max(a,b) + log2(1 + 2^-|a-b|) so neither term overflows. +Inf absorbs:
// log2Add(+Inf, anything) is +Inf.
func log2Add(a, b float64) float64 {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.Inf(1)
	}
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	diff := hi - lo
	return hi + math.Log2(1+math.Exp2(-diff))
}

// ceilToPrecision rounds (or, if truncate is true, truncates) x to the
// given number of fractional base-10 digits.
func ceilToPrecision(x float64, digits int, truncate bool) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	scale := math.Pow(10, float64(digits))
	if truncate {
		if x >= 0 {
			return math.Floor(x*scale) / scale
		}
		return math.Ceil(x*scale) / scale
	}
	return math.Round(x*scale) / scale
}
