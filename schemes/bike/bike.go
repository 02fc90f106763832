// Package bike maps BIKE's QC-MDPC scheme parameters onto a binary
// Syndrome Decoding instance: BIKE's key-recovery and message-decryption
// security both reduce to decoding a (2r, r) quasi-cyclic code of error
// weight t, so this package is a thin, non-cryptanalytic translation
// layer in front of problems/sd.
package bike

import (
	"fmt"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/sd"
)

// Parameters are BIKE's three scheme-level integers: the circulant block
// size r, the circulant generator's row weight w, and the decryption
// error weight t.
type Parameters struct {
	R, W, T            int
	ExcludedAlgorithms []string
}

// Validate checks BIKE's scheme-level shape constraints.
func (p Parameters) Validate() error {
	if p.R <= 0 {
		return fmt.Errorf("bike: r must be positive, got %d", p.R)
	}
	if p.W <= 0 || p.W > p.R {
		return fmt.Errorf("bike: w must be in (0,r], got w=%d, r=%d", p.W, p.R)
	}
	if p.T <= 0 || p.T > 2*p.R {
		return fmt.Errorf("bike: t must be in (0,2r], got t=%d, r=%d", p.T, p.R)
	}
	return nil
}

// ToSDParameters derives the underlying [2r, r] Syndrome Decoding
// instance: BIKE's parity-check matrix is a 1x2 block of r x r
// circulants, giving code length 2r and dimension r.
func (p Parameters) ToSDParameters() sd.Parameters {
	return sd.Parameters{N: 2 * p.R, K: p.R, W: p.T}
}

// NewEstimator builds the problems/sd estimator for this BIKE instance,
// applying ExcludedAlgorithms to the underlying SD algorithm registry
// (BIKE has no scheme-specific attacks of its own in this module; all of
// its hardness is the SD sub-problem's).
func NewEstimator(params Parameters) (*estimator.Estimator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	problem, err := sd.NewProblem(params.ToSDParameters())
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, sd.FamilyID, params.ExcludedAlgorithms)
}
