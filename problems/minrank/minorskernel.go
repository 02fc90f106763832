package minrank

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// linearAlgebraExponent is the practical exponent for dense linear
// algebra over the minors system's coefficient matrix.
const linearAlgebraExponent = 2.8

// minorsKernelModel implements a support-minors/kernel-search style
// algebraic attack: guess a kernel vector's support (r+1 free
// coordinates), then solve the resulting system of maximal-minor
// equations by linearization.
type minorsKernelModel struct{}

// MinorsKernel is the registered plug-in instance.
var MinorsKernel estimator.CostModel = minorsKernelModel{}

func (minorsKernelModel) ID() string          { return "MinRank.MinorsKernel" }
func (minorsKernelModel) DisplayName() string { return "MinorsKernel" }

func (minorsKernelModel) Applies(estimator.ProblemParameters) bool { return true }

func (minorsKernelModel) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

// Compute guesses a kernel vector (q^(r+1) candidate supports), then
// linearizes the resulting system of maximal-minor equations, whose
// column count is bounded by C(n, r+1) (the number of distinct
// (r+1)-subsets of rows each minor spans).
func (minorsKernelModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, m, k, r, q := params.N, params.M, params.K, params.R, params.Q

	guessLog2 := float64(r+1) * math.Log2(float64(q))
	systemSizeLog2 := estimator.Log2Binomial(n, r+1) + math.Log2(float64(m)*float64(k))
	linAlgLog2 := linearAlgebraExponent * systemSizeLog2

	timeLog2 := guessLog2 + linAlgLog2
	memoryLog2 := 2 * systemSizeLog2

	aux["system_size_log2"] = systemSizeLog2
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, MinorsKernel)
}
