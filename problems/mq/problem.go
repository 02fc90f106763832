// Package mq implements the Multivariate Quadratic problem family: given
// m quadratic polynomials in n variables over F_q, find a common root. It
// registers six solving algorithms with the estimator core, spanning pure
// exhaustive search, deterministic algebraic algorithms, and Gröbner-basis
// and hybrid variants.
package mq

import (
	"fmt"
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "MQ"

// Parameters are MQ's three problem-defining integers: number of
// variables n, number of equations m, and field order q.
type Parameters struct {
	N, M, Q int
}

// Validate checks the positivity and field-order constraints an MQ
// instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.M <= 0 {
		return fmt.Errorf("mq: n and m must be positive (n=%d, m=%d)", p.N, p.M)
	}
	if p.Q < 2 {
		return fmt.Errorf("mq: q must be at least 2, got %d", p.Q)
	}
	return nil
}

// FieldOrder returns q.
func (p Parameters) FieldOrder() int { return p.Q }

// DefaultNSolutionsLog2 estimates the expected number of common roots of
// a random system as q^(n-m), floored at 0 (a well-posed instance expects
// at least one solution).
func (p Parameters) DefaultNSolutionsLog2() float64 {
	expected := float64(p.N-p.M) * math.Log2(float64(p.Q))
	if expected < 0 {
		return 0
	}
	return expected
}

// NewProblem builds an estimator.Problem for this MQ instance. The unit
// conversion multiplies basic field-operation counts by log2(q), turning
// "number of F_q operations" into bit complexities.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.FieldConversion(params.Q))
}
