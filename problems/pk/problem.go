// Package pk implements the Permuted Kernel Problem: given a matrix and
// a vector, find a coordinate permutation placing the vector in the
// matrix's kernel. It registers one attack, PKCollision, a meet-in-the-
// middle collision search whose brute-force baseline cost comes from an
// internal problems/sd estimator and is halved by the collision.
package pk

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "PK"

// Parameters are PK's problem-defining integers: matrix row count n,
// kernel dimension k, and field order q. InnerExcludedAlgorithms
// narrows the internal SD sub-estimator PKCollision builds.
type Parameters struct {
	N, K, Q                 int
	InnerExcludedAlgorithms []string
}

// Validate checks the positivity, shape, and field-order constraints a
// permuted-kernel instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.K <= 0 {
		return fmt.Errorf("pk: n and k must be positive (n=%d, k=%d)", p.N, p.K)
	}
	if p.K > p.N {
		return fmt.Errorf("pk: k (%d) must not exceed n (%d)", p.K, p.N)
	}
	if p.Q < 2 {
		return fmt.Errorf("pk: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// FieldOrder returns q.
func (p Parameters) FieldOrder() int { return p.Q }

// DefaultNSolutionsLog2 is 0: a generic PK instance expects a unique (or
// no) permutation witness.
func (p Parameters) DefaultNSolutionsLog2() float64 { return 0 }

// NewProblem builds an estimator.Problem for this PK instance.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.FieldConversion(params.Q))
}
