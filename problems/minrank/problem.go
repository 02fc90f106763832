// Package minrank implements the MinRank problem: given m matrices over
// F_q and a target rank r, find a non-trivial F_q-linear combination of
// the matrices whose rank is at most r. It registers one attack,
// MinorsKernel, a support-minors/kernel-search style algebraic algorithm.
package minrank

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "MinRank"

// Parameters are MinRank's problem-defining integers: matrix dimension n
// (matrices are k x n, or n x n when unspecified otherwise), number of
// input matrices m, the linear-combination's row dimension k, target
// rank r, and field order q.
type Parameters struct {
	N, M, K, R, Q int
}

// Validate checks the positivity, shape, and field-order constraints a
// MinRank instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.M <= 0 || p.K <= 0 {
		return fmt.Errorf("minrank: n, m, and k must be positive (n=%d, m=%d, k=%d)", p.N, p.M, p.K)
	}
	if p.R <= 0 || p.R > p.N {
		return fmt.Errorf("minrank: r must be in (0,n], got r=%d, n=%d", p.R, p.N)
	}
	if p.Q < 2 {
		return fmt.Errorf("minrank: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// FieldOrder returns q.
func (p Parameters) FieldOrder() int { return p.Q }

// DefaultNSolutionsLog2 is 0: a generic MinRank instance is posed to have
// a unique low-rank combination.
func (p Parameters) DefaultNSolutionsLog2() float64 { return 0 }

// NewProblem builds an estimator.Problem for this MinRank instance.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.FieldConversion(params.Q))
}
