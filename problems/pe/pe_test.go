package pe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crypto-estimators/estimator/estimator"
)

func TestParametersValidate(t *testing.T) {
	assert.NoError(t, Parameters{N: 50, K: 25, Q: 2}.Validate())
	assert.Error(t, Parameters{N: 0, K: 1, Q: 2}.Validate())
	assert.Error(t, Parameters{N: 10, K: 20, Q: 2}.Validate())
}

func TestPEBruteDelegatesToInnerSD(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 50, K: 25, Q: 2})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(PEBrute, problem)

	timeLog2, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.False(t, math.IsInf(timeLog2, 0))
}

func TestPEBruteHonorsInnerExcludedAlgorithms(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 50, K: 25, Q: 2, InnerExcludedAlgorithms: []string{"SD.Prange", "SD.Stern"}})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(PEBrute, problem)

	timeLog2, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(timeLog2, 1))
}

func TestExcludingAlgorithmsIsIndependentAcrossInstances(t *testing.T) {
	full, err := NewProblem(Parameters{N: 50, K: 25, Q: 2})
	require.NoError(t, err)
	restricted, err := NewProblem(Parameters{N: 50, K: 25, Q: 2, InnerExcludedAlgorithms: []string{"SD.Stern"}})
	require.NoError(t, err)

	fullAlg := estimator.NewAlgorithm(PEBrute, full)
	restrictedAlg := estimator.NewAlgorithm(PEBrute, restricted)

	fullTime, err := fullAlg.TimeComplexity(nil)
	require.NoError(t, err)
	restrictedTime, err := restrictedAlg.TimeComplexity(nil)
	require.NoError(t, err)

	// Excluding Stern from the inner SD sub-estimator can only make the
	// delegated cost greater than or equal to using every inner attack.
	assert.GreaterOrEqual(t, restrictedTime, fullTime-1e-9)
}
