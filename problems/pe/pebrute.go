package pe

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/sd"
)

// peBruteModel attacks Permutation Equivalence the same way problems/le
// attacks Linear Equivalence: support splitting reduces the problem to
// decoding a minimum-weight codeword, handed off to an internal
// problems/sd estimator. No tuning parameters of its own.
type peBruteModel struct{}

// PEBrute is the registered plug-in instance.
var PEBrute estimator.CostModel = peBruteModel{}

func (peBruteModel) ID() string          { return "PE.PEBrute" }
func (peBruteModel) DisplayName() string { return "PEBrute" }

func (peBruteModel) Applies(estimator.ProblemParameters) bool { return true }

func (peBruteModel) DeclareSchema() *estimator.Schema {
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

// Compute mirrors problems/le.leBruteModel.Compute; permutation-only
// equivalence carries a slightly smaller support-splitting overhead than
// the full monomial case, since there is no scalar factor to rule out.
func (peBruteModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
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
	innerTime, err := fastest.TimeComplexity(nil)
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}
	innerMemory, err := fastest.MemoryComplexity(nil)
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}

	overheadLog2 := math.Log2(float64(n))
	timeLog2 := innerTime + overheadLog2
	memoryLog2 := innerMemory + math.Log2(float64(n))

	aux["inner_sd_time_log2"] = innerTime
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, PEBrute)
}
