package rsd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crypto-estimators/estimator/estimator"
)

func TestParametersValidate(t *testing.T) {
	assert.NoError(t, Parameters{N: 40, K: 20, W: 4, Blocks: 4}.Validate())
	assert.Error(t, Parameters{N: 41, K: 20, W: 4, Blocks: 4}.Validate(), "blocks must evenly divide n")
	assert.Error(t, Parameters{N: 40, K: 20, W: 5, Blocks: 4}.Validate(), "w must equal blocks")
}

func TestRSDISDIsFiniteAndPositive(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 40, K: 20, W: 4, Blocks: 4})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(RSDISD, problem)

	timeLog2, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.False(t, math.IsInf(timeLog2, 0))
	assert.Greater(t, timeLog2, 0.0)
}

// The regular-support count RSDISD reports is exactly Blocks times
// log2(blockSize) (one-of-blockSize choice per block, Blocks independent
// blocks), regardless of how n is split into blocks.
func TestRegularSupportCountMatchesBlockStructure(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 60, K: 30, W: 12, Blocks: 12})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(RSDISD, problem)

	_, err = alg.TimeComplexity(nil)
	require.NoError(t, err)

	verbose := alg.Verbose()
	require.NotNil(t, verbose)
	expected := 12 * math.Log2(5) // blockSize = 60/12 = 5
	assert.InDelta(t, expected, verbose["supports_log2"], 1e-9)
}
