package mq

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// crossbredModel implements Joux-Vitse's crossbred algorithm: guess k of
// the n variables, build a Macaulay matrix of a low degree D over the
// remaining variables, linearize only the degree-D "falling block" of
// monomials, and finish with exhaustive search or linearization on what's
// left. It trades a cheaper matrix (compared to BooleanSolveFXL's full
// degree-of-regularity matrix) for a larger guessing exponent.
type crossbredModel struct{}

// Crossbred is the registered plug-in instance.
var Crossbred estimator.CostModel = crossbredModel{}

func (crossbredModel) ID() string          { return "MQ.Crossbred" }
func (crossbredModel) DisplayName() string { return "Crossbred" }

func (crossbredModel) Applies(estimator.ProblemParameters) bool { return true }

// DeclareSchema declares k, the number of guessed variables, and D, the
// low Macaulay-matrix degree, in that order.
func (crossbredModel) DeclareSchema() *estimator.Schema {
	s := estimator.NewSchema()
	s.Declare("k", 0, 30, estimator.Joint)
	s.Declare("D", 1, 6, estimator.Joint)
	return s
}

func (crossbredModel) Invalid(problem *estimator.Problem, a estimator.Assignment) bool {
	params := problem.Parameters().(Parameters)
	k, d := a["k"], a["D"]
	if k < 0 || k > params.N {
		return true
	}
	remaining := params.N - k
	return d > remaining
}

// Compute guesses k variables (q^k), builds the degree-D Macaulay matrix
// over the remaining n-k variables (dimension ~ C(remaining+D, D)) and
// linearizes it; the found low-degree relations are then exhaustively
// searched over the guessed block.
func (crossbredModel) Compute(problem *estimator.Problem, a estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, m, q := params.N, params.M, params.Q
	k, d := a["k"], a["D"]

	remaining := n - k
	matrixSizeLog2 := estimator.Log2Binomial(remaining+d, d) + math.Log2(float64(m))

	guessLog2 := float64(k) * math.Log2(float64(q))
	linAlgLog2 := linearAlgebraExponent * matrixSizeLog2

	timeLog2 := estimator.Log2Add(guessLog2+linAlgLog2, guessLog2+matrixSizeLog2)
	memoryLog2 := 2 * matrixSizeLog2

	aux["matrix_size_log2"] = matrixSizeLog2
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, Crossbred)
}
