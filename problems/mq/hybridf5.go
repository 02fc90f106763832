package mq

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// hybridF5Model implements the Bettale-Faugère-Perret hybrid approach:
// guess k of the n variables exhaustively and run F5 on the resulting
// smaller system for each guess, trading guessing cost for a cheaper
// Gröbner-basis step (the degree of regularity drops fast as n shrinks
// relative to m).
type hybridF5Model struct{}

// HybridF5 is the registered plug-in instance.
var HybridF5 estimator.CostModel = hybridF5Model{}

func (hybridF5Model) ID() string          { return "MQ.HybridF5" }
func (hybridF5Model) DisplayName() string { return "HybridF5" }

func (hybridF5Model) Applies(estimator.ProblemParameters) bool { return true }

// DeclareSchema declares k, the number of exhaustively-guessed variables.
func (hybridF5Model) DeclareSchema() *estimator.Schema {
	s := estimator.NewSchema()
	s.Declare("k", 0, 30, estimator.Joint)
	return s
}

func (hybridF5Model) Invalid(problem *estimator.Problem, a estimator.Assignment) bool {
	params := problem.Parameters().(Parameters)
	return a["k"] < 0 || a["k"] > params.N
}

// Compute runs F5 on the (n-k)-variable, m-equation system for each of
// the q^k guesses.
func (hybridF5Model) Compute(problem *estimator.Problem, a estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, m, q := params.N, params.M, params.Q
	k := a["k"]

	remaining := n - k
	dreg := degreeOfRegularity(remaining, m)
	monomialsLog2 := estimator.Log2Binomial(remaining+dreg, dreg)

	guessLog2 := float64(k) * math.Log2(float64(q))
	f5Log2 := linearAlgebraExponent * monomialsLog2

	timeLog2 := guessLog2 + f5Log2
	memoryLog2 := 2 * monomialsLog2

	aux["degree_of_regularity"] = float64(dreg)
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, HybridF5)
}
