package pk

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/sd"
)

// pkCollisionModel attacks the Permuted Kernel Problem with a birthday
// (meet-in-the-middle) collision search over half-permutations: split
// the n coordinates in half, enumerate partial kernel-membership sums on
// each side, and look for a matching pair. The brute-force baseline that
// the collision trick halves in the exponent is estimated by an internal
// problems/sd sub-estimator, since both reduce to the same
// minimum-weight-codeword search once the permutation is fixed.
type pkCollisionModel struct{}

// PKCollision is the registered plug-in instance.
var PKCollision estimator.CostModel = pkCollisionModel{}

func (pkCollisionModel) ID() string          { return "PK.PKCollision" }
func (pkCollisionModel) DisplayName() string { return "PKCollision" }

func (pkCollisionModel) Applies(estimator.ProblemParameters) bool { return true }

func (pkCollisionModel) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

func minimumDistanceWeight(n, k int) int {
	w := (n - k) / 2
	if w < 1 {
		w = 1
	}
	if w > n {
		w = n
	}
	return w
}

// Compute applies the birthday square-root speed-up to the brute-force
// baseline's exponent, then adds the polynomial list-building overhead
// the collision search itself incurs.
func (pkCollisionModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, k := params.N, params.K

	w := minimumDistanceWeight(n, k)
	sdProblem, err := sd.NewProblem(sd.Parameters{N: n, K: k, W: w})
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}
	sdEstimator, err := estimator.NewEstimator(sdProblem, sd.FamilyID, params.InnerExcludedAlgorithms)
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}
	fastest, err := sdEstimator.FastestAlgorithm()
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}
	baselineTime, err := fastest.TimeComplexity(nil)
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}
	baselineMemory, err := fastest.MemoryComplexity(nil)
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}

	listBuildLog2 := math.Log2(float64(n))
	timeLog2 := baselineTime/2 + listBuildLog2
	memoryLog2 := baselineMemory/2 + listBuildLog2

	aux["baseline_time_log2"] = baselineTime
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, PKCollision)
}
