package sd

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// prangeModel implements Prange's 1962 information-set-decoding attack:
// repeatedly pick a random size-k information set and hope none of the
// w errors fall inside it, then recover the error vector by a single
// Gaussian elimination. It has no tuning parameters of its own: the
// only "knob" is the implicit number of retries, folded directly into
// the closed-form cost below, the common shape for the simplest ISD
// variant.
type prangeModel struct{}

// Prange is the registered Prange plug-in instance.
var Prange estimator.CostModel = prangeModel{}

func (prangeModel) ID() string          { return "SD.Prange" }
func (prangeModel) DisplayName() string { return "Prange" }

func (prangeModel) Applies(estimator.ProblemParameters) bool {
	// Binary ISD; any SD.Parameters instance qualifies (the family is
	// binary-only by construction, so no q check is needed).
	return true
}

// DeclareSchema returns an empty schema: Prange has no tuning
// parameters to search over.
func (prangeModel) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

// Compute returns Prange's time/memory cost in basic (bit) operations,
// log2-valued throughout.
//
// Time: the expected number of retries is C(n,k) / C(n-w,k) (the
// fraction of size-k subsets entirely free of errors), each retry
// costing an O(n^2) Gaussian elimination pass (amortizable, but Prange
// itself does not amortize it — that refinement belongs to Stern/Dumer
// style algorithms).
// Memory: dominated by the parity-check matrix representation, O(n^2)
// bits.
func (prangeModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, k, w := params.N, params.K, params.W

	retriesLog2 := estimator.Log2Binomial(n, k) - estimator.Log2Binomial(n-w, k)
	gaussLog2 := 2 * math.Log2(float64(n))

	timeLog2 := retriesLog2 + gaussLog2
	memoryLog2 := 2 * math.Log2(float64(n))

	aux["retries_log2"] = retriesLog2
	return timeLog2, memoryLog2
}

// ComputeQuantum applies a Grover-style square-root speed-up to the
// retry count (the part of the cost that is a search over random
// information sets), leaving the per-iteration Gaussian elimination
// classical.
func (prangeModel) ComputeQuantum(problem *estimator.Problem, assignment estimator.Assignment) (float64, float64, bool) {
	params := problem.Parameters().(Parameters)
	n, k, w := params.N, params.K, params.W

	retriesLog2 := estimator.Log2Binomial(n, k) - estimator.Log2Binomial(n-w, k)
	gaussLog2 := 2 * math.Log2(float64(n))

	timeLog2 := retriesLog2/2 + gaussLog2
	memoryLog2 := 2 * math.Log2(float64(n))
	return timeLog2, memoryLog2, true
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, Prange)
}
