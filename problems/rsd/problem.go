// Package rsd implements Regular Syndrome Decoding: binary Syndrome
// Decoding restricted to error vectors whose weight is spread evenly,
// exactly one nonzero position per block, across `Blocks` equal-sized
// blocks. It registers one attack, RSDISD, a block-structured
// information-set-decoding variant that exploits the regular weight
// distribution to shrink the search space problems/sd's Prange cannot.
package rsd

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
)

// FamilyID is the estimator registry key for this problem family.
const FamilyID = "RSD"

// Parameters are RSD's problem-defining integers: code length n, code
// dimension k, target error weight w, and the number of equal-sized
// blocks the error vector's weight is spread across.
type Parameters struct {
	N, K, W, Blocks int
}

// Validate checks the positivity, shape, and block-structure constraints
// an RSD instance must satisfy: one error per block means w must equal
// Blocks and n must divide evenly into Blocks blocks.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.K <= 0 {
		return fmt.Errorf("rsd: n and k must be positive (n=%d, k=%d)", p.N, p.K)
	}
	if p.K > p.N {
		return fmt.Errorf("rsd: k (%d) must not exceed n (%d)", p.K, p.N)
	}
	if p.Blocks <= 0 || p.N%p.Blocks != 0 {
		return fmt.Errorf("rsd: blocks (%d) must evenly divide n (%d)", p.Blocks, p.N)
	}
	if p.W != p.Blocks {
		return fmt.Errorf("rsd: regular weight w (%d) must equal blocks (%d)", p.W, p.Blocks)
	}
	return nil
}

// FieldOrder is always 2: this family is defined over GF(2), like SD.
func (p Parameters) FieldOrder() int { return 2 }

// DefaultNSolutionsLog2 mirrors SD's Gilbert-Varshamov-style default,
// using the regular-weight support count in place of C(n,w).
func (p Parameters) DefaultNSolutionsLog2() float64 {
	blockSize := p.N / p.Blocks
	regularSupportsLog2 := float64(p.Blocks) * estimator.Log2Binomial(blockSize, 1)
	expected := regularSupportsLog2 - float64(p.N-p.K)
	if expected < 0 {
		return 0
	}
	return expected
}

// NewProblem builds an estimator.Problem for this RSD instance, using the
// identity unit conversion (binary, like SD).
func NewProblem(params Parameters) (*estimator.Problem, error) {
	return estimator.NewProblem(params, estimator.IdentityConversion())
}
