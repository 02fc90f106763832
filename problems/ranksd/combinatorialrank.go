package ranksd

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// combinatorialRankModel implements the standard combinatorial
// rank-decoding attack: guess a basis of the r-dimensional error support
// over F_q, then verify by linear algebra over F_{q^m}. Its exponent
// structure is the q-ary analogue of Prange's ISD retry count.
type combinatorialRankModel struct{}

// CombinatorialRank is the registered plug-in instance.
var CombinatorialRank estimator.CostModel = combinatorialRankModel{}

func (combinatorialRankModel) ID() string          { return "RankSD.CombinatorialRank" }
func (combinatorialRankModel) DisplayName() string { return "CombinatorialRank" }

func (combinatorialRankModel) Applies(estimator.ProblemParameters) bool { return true }

func (combinatorialRankModel) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

// Compute guesses the (r-1)*(k+1) free coordinates of a rank-r error's
// support basis over F_q (the textbook combinatorial rank-attack
// exponent), then pays a polynomial O((nm)^2) verification cost.
func (combinatorialRankModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, k, r, q, m := params.N, params.K, params.R, params.Q, params.M

	exponent := (r - 1) * (k + 1)
	if exponent < 0 {
		exponent = 0
	}
	guessLog2 := float64(exponent) * math.Log2(float64(q))
	verifyLog2 := 2 * math.Log2(float64(n)*float64(m))

	timeLog2 := guessLog2 + verifyLog2
	memoryLog2 := math.Log2(float64(n) * float64(m))

	aux["guess_log2"] = guessLog2
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, CombinatorialRank)
}
