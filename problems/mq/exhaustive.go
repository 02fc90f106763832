package mq

import (
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// exhaustiveModel evaluates every one of the q^n candidate points against
// all m equations, the textbook baseline every other MQ algorithm is
// measured against. It has no tuning parameters.
type exhaustiveModel struct{}

// ExhaustiveSearch is the registered brute-force plug-in instance.
var ExhaustiveSearch estimator.CostModel = exhaustiveModel{}

func (exhaustiveModel) ID() string          { return "MQ.ExhaustiveSearch" }
func (exhaustiveModel) DisplayName() string { return "ExhaustiveSearch" }

func (exhaustiveModel) Applies(estimator.ProblemParameters) bool { return true }

func (exhaustiveModel) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

// Compute returns q^n candidate points, each costing O(n*m) field
// multiplications to evaluate the whole system (Horner-style evaluation
// of m degree-2 polynomials in n variables).
func (exhaustiveModel) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, m, q := params.N, params.M, params.Q

	pointsLog2 := float64(n) * math.Log2(float64(q))
	evalCostLog2 := math.Log2(float64(n)) + math.Log2(float64(m))
	timeLog2 := pointsLog2 + evalCostLog2
	memoryLog2 := math.Log2(float64(n)) + math.Log2(float64(m))

	aux["points_log2"] = pointsLog2
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, ExhaustiveSearch)
}
