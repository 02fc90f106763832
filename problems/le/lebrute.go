package le

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/sd"
)

// leBruteModel attacks Linear Equivalence by support splitting: it
// reduces distinguishing a monomial transform to decoding a minimum-
// weight codeword of an auxiliary code, delegating that sub-problem to
// an internal problems/sd estimator rather than re-implementing ISD. It
// has no tuning parameters of its own; all the tuning happens inside the
// SD sub-estimator it builds.
type leBruteModel struct{}

// LEBrute is the registered plug-in instance.
var LEBrute estimator.CostModel = leBruteModel{}

func (leBruteModel) ID() string          { return "LE.LEBrute" }
func (leBruteModel) DisplayName() string { return "LEBrute" }

func (leBruteModel) Applies(estimator.ProblemParameters) bool { return true }

func (leBruteModel) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

// minimumDistanceWeight approximates the typical minimum distance of a
// random [n,k] code via half the code's redundancy, a standard
// back-of-the-envelope stand-in for the Gilbert-Varshamov bound used when
// the exact minimum distance isn't tracked by the outer Parameters.
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

// Compute builds an internal SD instance around the approximate minimum
// distance of the code pair, runs its own (sub-)estimator excluding
// Parameters.InnerExcludedAlgorithms, and adds the polynomial
// support-splitting overhead on top of the fastest inner attack.
func (leBruteModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, k := params.N, params.K

	innerTime, innerMemory, ok := innerSDCost(n, k, params.InnerExcludedAlgorithms)
	if !ok {
		return math.Inf(1), math.Inf(1)
	}

	overheadLog2 := 2 * math.Log2(float64(n))
	timeLog2 := innerTime + overheadLog2
	memoryLog2 := innerMemory + math.Log2(float64(n))

	aux["inner_sd_time_log2"] = innerTime
	return timeLog2, memoryLog2
}

// innerSDCost builds an SD sub-problem at the code's approximate minimum
// distance and returns the fastest registered SD algorithm's cost, or
// ok=false if the sub-estimator could not be built (e.g. every SD
// algorithm excluded).
func innerSDCost(n, k int, innerExcluded []string) (timeLog2, memoryLog2 float64, ok bool) {
	w := minimumDistanceWeight(n, k)
	sdProblem, err := sd.NewProblem(sd.Parameters{N: n, K: k, W: w})
	if err != nil {
		return 0, 0, false
	}
	sdEstimator, err := estimator.NewEstimator(sdProblem, sd.FamilyID, innerExcluded)
	if err != nil {
		return 0, 0, false
	}
	fastest, err := sdEstimator.FastestAlgorithm()
	if err != nil {
		return 0, 0, false
	}
	t, err := fastest.TimeComplexity(nil)
	if err != nil {
		return 0, 0, false
	}
	m, err := fastest.MemoryComplexity(nil)
	if err != nil {
		return 0, 0, false
	}
	return t, m, true
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, LEBrute)
}
