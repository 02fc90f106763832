// Package pe implements the Permutation Equivalence problem: given two
// linear codes, decide whether one is a coordinate permutation of the
// other (a restriction of Linear Equivalence to pure permutations, no
// scalar monomial factors). It registers one attack, PEBrute, which
// reuses problems/sd internally, the same way problems/le does.
package pe

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "PE"

// Parameters are PE's problem-defining integers: code length n,
// dimension k, and field order q. InnerExcludedAlgorithms narrows the
// internal SD sub-estimator PEBrute builds, independent of this
// family's own exclusion list, resolved the same way as problems/le.
type Parameters struct {
	N, K, Q                 int
	InnerExcludedAlgorithms []string
}

// Validate checks the positivity, shape, and field-order constraints a
// code-equivalence instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.K <= 0 {
		return fmt.Errorf("pe: n and k must be positive (n=%d, k=%d)", p.N, p.K)
	}
	if p.K > p.N {
		return fmt.Errorf("pe: k (%d) must not exceed n (%d)", p.K, p.N)
	}
	if p.Q < 2 {
		return fmt.Errorf("pe: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// FieldOrder returns q.
func (p Parameters) FieldOrder() int { return p.Q }

// DefaultNSolutionsLog2 is 0: a generic permutation-equivalence instance
// expects a unique (or no) permutation witness.
func (p Parameters) DefaultNSolutionsLog2() float64 { return 0 }

// NewProblem builds an estimator.Problem for this PE instance, using the
// identity unit conversion: unlike LE, PE's basic operation (comparing
// coordinate supports) carries no scalar field-multiplication factor.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.IdentityConversion())
}
