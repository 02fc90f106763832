package mq

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// linearAlgebraExponent is the exponent omega used for dense linear
// algebra over the resulting Macaulay-style matrices (a common practical
// value, just below Strassen's log2(7) ≈ 2.81).
const linearAlgebraExponent = 2.8

// booleanSolveFXLModel implements the FXL/BooleanSolve hybrid: guess k of
// the n variables exhaustively, then solve the resulting m-equation,
// (n-k)-variable system by linearization of all monomials up to the
// degree of regularity.
type booleanSolveFXLModel struct{}

// BooleanSolveFXL is the registered plug-in instance.
var BooleanSolveFXL estimator.CostModel = booleanSolveFXLModel{}

func (booleanSolveFXLModel) ID() string          { return "MQ.BooleanSolveFXL" }
func (booleanSolveFXLModel) DisplayName() string { return "BooleanSolveFXL" }

func (booleanSolveFXLModel) Applies(estimator.ProblemParameters) bool { return true }

// DeclareSchema declares the number of exhaustively-guessed variables k.
func (booleanSolveFXLModel) DeclareSchema() *estimator.Schema {
	s := estimator.NewSchema()
	s.Declare("k", 0, 30, estimator.Joint) // widen via Schema().SetRange for n > 30
	return s
}

func (booleanSolveFXLModel) Invalid(problem *estimator.Problem, a estimator.Assignment) bool {
	params := problem.Parameters().(Parameters)
	return a["k"] < 0 || a["k"] > params.N
}

// Compute guesses k variables exhaustively (q^k), then linearizes the
// remaining (n-k)-variable, m-equation system: the monomial count of
// degree <= dreg dominates both the matrix dimension and, raised to
// linearAlgebraExponent, the linear-algebra cost.
func (booleanSolveFXLModel) Compute(problem *estimator.Problem, a estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, m, q := params.N, params.M, params.Q
	k := a["k"]

	remaining := n - k
	dreg := degreeOfRegularity(remaining, m)
	monomialsLog2 := estimator.Log2Binomial(remaining+dreg, dreg)

	guessLog2 := float64(k) * math.Log2(float64(q))
	linAlgLog2 := linearAlgebraExponent * monomialsLog2

	timeLog2 := guessLog2 + linAlgLog2
	memoryLog2 := 2 * monomialsLog2

	aux["degree_of_regularity"] = float64(dreg)
	aux["monomials_log2"] = monomialsLog2
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, BooleanSolveFXL)
}
