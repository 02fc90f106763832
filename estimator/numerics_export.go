package estimator

// This file exposes the numerics helpers of numerics.go to algorithm
// plug-in packages (problems/*, schemes/*): cost functions live outside
// this package since the core hosts attack algorithms rather than
// reimplementing their cryptanalysis, but they still need the same
// log2-space combinatorics the core itself uses, so the core is the
// natural home for a single, shared, well-tested implementation.

// Log2Factorial returns log2(n!); see log2Factorial.
func Log2Factorial(n int) float64 { return log2Factorial(n) }

// Log2Binomial returns log2(C(n,k)), 0 if k<0 or k>n; see log2Binomial.
func Log2Binomial(n, k int) float64 { return log2Binomial(n, k) }

// Log2Multinomial returns log2(n!/(k1!...km!)); see log2Multinomial.
func Log2Multinomial(n int, ks ...int) float64 { return log2Multinomial(n, ks...) }

// BinaryEntropy returns the base-2 binary entropy function; see binaryEntropy.
func BinaryEntropy(x float64) float64 { return binaryEntropy(x) }

// GaussianBinomial returns the Gaussian binomial coefficient [m choose r]_q
// as a real magnitude; see gaussianBinomial.
func GaussianBinomial(m, r, q int) float64 { return gaussianBinomial(m, r, q) }

// Log2Add returns log2(2^a + 2^b); see log2Add.
func Log2Add(a, b float64) float64 { return log2Add(a, b) }

// CeilToPrecision rounds or truncates x to digits fractional base-10 digits.
func CeilToPrecision(x float64, digits int, truncate bool) float64 {
	return ceilToPrecision(x, digits, truncate)
}
