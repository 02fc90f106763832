// Package sd implements the binary Syndrome Decoding problem family:
// given an [n,k] binary linear code (via its parity-check matrix) and a
// syndrome, find an error vector of Hamming weight w. It registers two
// information-set-decoding attacks, Prange and Stern, with the
// estimator core.
package sd

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "SD"

// Parameters are SD's three problem-defining integers: code length n,
// code dimension k, and target error weight w.
type Parameters struct {
	N, K, W int
}

// Validate checks the positivity and shape constraints a binary SD
// instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.K <= 0 || p.W < 0 {
		return fmt.Errorf("sd: parameters must be positive (n=%d, k=%d, w=%d)", p.N, p.K, p.W)
	}
	if p.K > p.N {
		return fmt.Errorf("sd: k (%d) must not exceed n (%d)", p.K, p.N)
	}
	if p.W > p.N {
		return fmt.Errorf("sd: w (%d) must not exceed n (%d)", p.W, p.N)
	}
	return nil
}

// FieldOrder is always 2: this family is defined over GF(2).
func (p Parameters) FieldOrder() int { return 2 }

// DefaultNSolutionsLog2 is the Gilbert-Varshamov-style expectation: the
// number of weight-w vectors divided by the number of syndromes,
// floored at 0 (a well-posed instance expects at least one solution).
func (p Parameters) DefaultNSolutionsLog2() float64 {
	expected := estimator.Log2Binomial(p.N, p.W) - float64(p.N-p.K)
	if expected < 0 {
		return 0
	}
	return expected
}

// NewProblem builds an estimator.Problem for this SD instance, using the
// identity unit conversion: SD's basic bit-operation already costs one
// bit operation.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.IdentityConversion())
}
