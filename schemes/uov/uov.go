// Package uov maps UOV's oil-and-vinegar scheme parameters directly onto
// a Multivariate Quadratic instance: UOV's best known attacks target the
// public key as a plain MQ system, with no scheme-specific dimension
// reduction the way MAYO's whipping/oil-subspace structure allows.
package uov

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/mq"
)

// Parameters are UOV's scheme-level integers: total variable count n,
// equation count m, and field order q.
type Parameters struct {
	N, M, Q            int
	ExcludedAlgorithms []string
}

// Validate checks UOV's scheme-level shape constraints.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.M <= 0 {
		return fmt.Errorf("uov: n and m must be positive (n=%d, m=%d)", p.N, p.M)
	}
	if p.Q < 2 {
		return fmt.Errorf("uov: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// ToMQParameters derives the underlying MQ instance: UOV's public key is
// attacked directly as an (n,m,q) MQ system.
func (p Parameters) ToMQParameters() mq.Parameters {
	return mq.Parameters{N: p.N, M: p.M, Q: p.Q}
}

// NewEstimator builds the problems/mq estimator for this UOV instance.
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
