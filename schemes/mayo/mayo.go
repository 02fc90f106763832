// Package mayo maps MAYO's oil-and-vinegar scheme parameters onto a
// Multivariate Quadratic instance. MAYO's EUF-CMA security reduces to
// recovering the o-dimensional oil subspace of an m-equation system,
// once the n-o vinegar variables are fixed, so this package derives a
// smaller MQ instance over the oil variables and hands it to
// problems/mq rather than re-deriving MQ-solving cost formulas.
package mayo

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/mq"
)

// Parameters are MAYO's scheme-level integers: total variable count n,
// equation count m, oil-subspace dimension o, the "whipping" repetition
// parameter k, and field order q.
type Parameters struct {
	N, M, O, K, Q      int
	ExcludedAlgorithms []string
}

// Validate checks MAYO's scheme-level shape constraints.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.M <= 0 {
		return fmt.Errorf("mayo: n and m must be positive (n=%d, m=%d)", p.N, p.M)
	}
	if p.O <= 0 || p.O > p.N {
		return fmt.Errorf("mayo: o must be in (0,n], got o=%d, n=%d", p.O, p.N)
	}
	if p.K <= 0 {
		return fmt.Errorf("mayo: k must be positive, got %d", p.K)
	}
	if p.Q < 2 {
		return fmt.Errorf("mayo: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// ToMQParameters derives the underlying MQ instance: oil-subspace
// recovery is the problem of solving m quadratic equations in the o oil
// variables (the vinegar variables have already been eliminated by the
// scheme's algebraic structure), over the same field F_q.
func (p Parameters) ToMQParameters() mq.Parameters {
	return mq.Parameters{N: p.O, M: p.M, Q: p.Q}
}

// NewEstimator builds the problems/mq estimator for this MAYO instance.
func NewEstimator(params Parameters) (*estimator.Estimator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	problem, err := mq.NewProblem(params.ToMQParameters())
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, mq.FamilyID, params.ExcludedAlgorithms)
}
