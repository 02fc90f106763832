// Package le implements the Linear Equivalence problem: given two linear
// codes, decide whether one is the image of the other under a
// monomial (permutation + scalar) transform. It registers one attack,
// LEBrute, which reduces the search to an internal Syndrome Decoding
// estimate plus a support-splitting overhead, reusing problems/sd rather
// than re-deriving ISD cost formulas.
package le

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "LE"

// Parameters are LE's problem-defining integers: code length n,
// dimension k, and field order q. InnerExcludedAlgorithms narrows the
// internal SD sub-estimator LEBrute builds, independently of whatever
// excluded_algorithms list the outer LE Estimator itself was built with
// (the two algorithm-ID namespaces are disjoint).
type Parameters struct {
	N, K, Q                 int
	InnerExcludedAlgorithms []string
}

// Validate checks the positivity, shape, and field-order constraints a
// code-equivalence instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.K <= 0 {
		return fmt.Errorf("le: n and k must be positive (n=%d, k=%d)", p.N, p.K)
	}
	if p.K > p.N {
		return fmt.Errorf("le: k (%d) must not exceed n (%d)", p.K, p.N)
	}
	if p.Q < 2 {
		return fmt.Errorf("le: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// FieldOrder returns q.
func (p Parameters) FieldOrder() int { return p.Q }

// DefaultNSolutionsLog2 is 0: a generic equivalence instance is expected
// to have a unique (or no) equivalence map, unlike SD's many-solution
// default.
func (p Parameters) DefaultNSolutionsLog2() float64 { return 0 }

// NewProblem builds an estimator.Problem for this LE instance. The unit
// conversion multiplies by log2(q): LEBrute's basic operation is one
// monomial-transform trial, one field multiplication per coordinate.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.FieldConversion(params.Q))
}
