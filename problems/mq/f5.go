package mq

import "github.com/crypto-estimators/estimator/estimator"

// f5Model implements Faugère's F5 Gröbner-basis algorithm: the cost is
// dominated by reducing the Macaulay matrix at the degree of regularity,
// with no search or guessing involved, so it has no tuning parameters.
type f5Model struct{}

// F5 is the registered plug-in instance.
var F5 estimator.CostModel = f5Model{}

func (f5Model) ID() string          { return "MQ.F5" }
func (f5Model) DisplayName() string { return "F5" }

func (f5Model) Applies(estimator.ProblemParameters) bool { return true }

func (f5Model) DeclareSchema() *estimator.Schema {
	return estimator.NewSchema()
}

// Compute reduces the Macaulay matrix at the degree of regularity: the
// column count (all monomials of degree <= dreg) raised to the linear
// algebra exponent.
func (f5Model) Compute(problem *estimator.Problem, _ estimator.Assignment, aux estimator.AuxMap) (float64, float64) {
	params := problem.Parameters().(Parameters)
	n, m := params.N, params.M

	dreg := degreeOfRegularity(n, m)
	monomialsLog2 := estimator.Log2Binomial(n+dreg, dreg)

	timeLog2 := linearAlgebraExponent * monomialsLog2
	memoryLog2 := 2 * monomialsLog2

	aux["degree_of_regularity"] = float64(dreg)
	return timeLog2, memoryLog2
}

func init() {
	estimator.RegisterAlgorithm(FamilyID, F5)
}
