// Package ranksd implements Rank Syndrome Decoding: given a rank-metric
// code of length n and dimension k over the extension field F_{q^m},
// find an error vector of rank weight r. It registers one attack,
// CombinatorialRank, the standard combinatorial (Gaussian-elimination)
// rank-decoding attack.
package ranksd

import (
	"fmt"
	"math"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "RankSD"

// Parameters are RankSD's problem-defining integers: code length n
// (over F_{q^m}), code dimension k, target rank weight r, base field
// order q, and extension degree m.
type Parameters struct {
	N, K, R, Q, M int
}

// Validate checks the positivity, shape, and field-order constraints a
// rank-metric instance must satisfy.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.K <= 0 {
		return fmt.Errorf("ranksd: n and k must be positive (n=%d, k=%d)", p.N, p.K)
	}
	if p.K > p.N {
		return fmt.Errorf("ranksd: k (%d) must not exceed n (%d)", p.K, p.N)
	}
	if p.R <= 0 || p.R > p.N {
		return fmt.Errorf("ranksd: r must be in (0,n], got r=%d, n=%d", p.R, p.N)
	}
	if p.Q < 2 {
		return fmt.Errorf("ranksd: q must be at least 2, got %d", p.Q)
	}
	if p.M <= 0 {
		return fmt.Errorf("ranksd: m must be positive, got %d", p.M)
	}
	return nil
}

// FieldOrder returns q, the base field's order (the extension degree m
// is tracked separately and folded into the unit conversion below).
func (p Parameters) FieldOrder() int { return p.Q }

// DefaultNSolutionsLog2 is 0: a generic RankSD instance is posed to have
// a unique rank-r error.
func (p Parameters) DefaultNSolutionsLog2() float64 { return 0 }

// NewProblem builds an estimator.Problem for this RankSD instance. The
// unit conversion multiplies by log2(q^m) = m*log2(q): RankSD's basic
// operation is one extension-field F_{q^m} multiplication.
func NewProblem(params Parameters) (*estimator.Problem, error) {
	shift := float64(params.M) * math.Log2(float64(params.Q))
	conv := estimator.UnitConversion{
		TimeBasicToBits: func(x float64) float64 {
			if math.IsInf(x, 0) {
				return x
			}
			return x + shift
		},
		MemoryBasicToBits: func(x float64) float64 {
			if math.IsInf(x, 0) {
				return x
			}
			return x + shift
		},
	}
	return estimator.NewProblem(params, conv)
}
