package sd

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// sternModel implements Stern's 1989 collision-decoding variant of ISD:
// split a size-(k+l) information set into two halves, build the list of
// all weight-p combinations in each half, and look for a pair whose sum
// matches on an l-bit window and whose combined weight, together with
// the remaining n-k-l positions, totals w. r amortizes the per-iteration
// Gaussian elimination over r+1 consecutive iterations sharing most of
// their pivot structure (the Bernstein-Lange-Peters "early abort and
// reuse" trick), tuned through the {r, p, l} parameter triple.
type sternModel struct{}

// Stern is the registered Stern plug-in instance.
var Stern estimator.CostModel = sternModel{}

func (sternModel) ID() string          { return "SD.Stern" }
func (sternModel) DisplayName() string { return "Stern" }

func (sternModel) Applies(estimator.ProblemParameters) bool { return true }

// DeclareSchema declares r, p, l in that order — independents-first is
// vacuous here (all three are Joint), but the declaration order still
// governs enumeration order.
func (sternModel) DeclareSchema() *estimator.Schema {
	s := estimator.NewSchema()
	s.Declare("r", 0, 12, estimator.Joint)
	s.Declare("p", 0, 10, estimator.Joint)
	s.Declare("l", 0, 40, estimator.Joint)
	return s
}

// Invalid rejects tuples outside Stern's structural domain: p cannot
// exceed half the weight budget, l cannot exceed the redundancy n-k,
// and the residual weight w-2p must fit in the remaining n-k-l
// positions.
func (sternModel) Invalid(problem *estimator.Problem, a estimator.Assignment) bool {
	params := problem.Parameters().(Parameters)
	n, k, w := params.N, params.K, params.W
	p, l := a["p"], a["l"]

	if 2*p > w {
		return true
	}
	if l > n-k {
		return true
	}
	if w-2*p > n-k-l {
		return true
	}
	if (k+l)/2 < p {
		return true
	}
	return false
}

// Compute returns Stern's time/memory cost in basic (bit) operations.
func (sternModel) Compute(problem *estimator.Problem, a estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, k, w := params.N, params.K, params.W
	r, p, l := a["r"], a["p"], a["l"]

	half := (k + l) / 2
	listSizeLog2 := estimator.Log2Binomial(half, p)

	// Amortized Gaussian elimination: one full O(n^2) reduction shared
	// across r+1 iterations.
	gaussLog2 := 2*math.Log2(float64(n)) - math.Log2(float64(r+1))

	buildCostLog2 := listSizeLog2 + 1 // building both half-lists, ~2L ops
	expectedMatchesLog2 := 2*listSizeLog2 - float64(l)
	perIterationLog2 := estimator.Log2Add(gaussLog2, estimator.Log2Add(buildCostLog2, expectedMatchesLog2))

	iterationsLog2 := estimator.Log2Binomial(n, w) -
		(2*estimator.Log2Binomial(half, p) + estimator.Log2Binomial(n-k-l, w-2*p))
	if iterationsLog2 < 0 {
		iterationsLog2 = 0
	}

	timeLog2 := iterationsLog2 + perIterationLog2
	memoryLog2 := listSizeLog2 + math.Log2(float64(k+l+1))

	aux["list_size_log2"] = listSizeLog2
	aux["iterations_log2"] = iterationsLog2
	return timeLog2, memoryLog2
}

// ComputeTildeO strips the polynomial (non-exponential) factors,
// leaving only the exponential iteration count — the textbook
// definition of Stern's tilde-O complexity.
func (sternModel) ComputeTildeO(problem *estimator.Problem, a estimator.Assignment) (float64, float64, bool) {
	params := problem.Parameters().(Parameters)
	n, k, w := params.N, params.K, params.W
	p, l := a["p"], a["l"]

	half := (k + l) / 2
	iterationsLog2 := estimator.Log2Binomial(n, w) -
		(2*estimator.Log2Binomial(half, p) + estimator.Log2Binomial(n-k-l, w-2*p))
	if iterationsLog2 < 0 {
		iterationsLog2 = 0
	}
	listSizeLog2 := estimator.Log2Binomial(half, p)
	return iterationsLog2, listSizeLog2, true
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, Stern)
}
