package le

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
	assert.Error(t, Parameters{N: 10, K: 5, Q: 1}.Validate())
}

func TestLEBruteDelegatesToInnerSD(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 50, K: 25, Q: 2})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(LEBrute, problem)

	timeLog2, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.False(t, math.IsInf(timeLog2, 0))
	assert.Greater(t, timeLog2, 0.0)

	verbose := alg.Verbose()
	require.NotNil(t, verbose)
	assert.Contains(t, verbose, "inner_sd_time_log2")
}

func TestLEBruteHonorsInnerExcludedAlgorithms(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 50, K: 25, Q: 2, InnerExcludedAlgorithms: []string{"SD.Prange", "SD.Stern"}})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(LEBrute, problem)

	timeLog2, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(timeLog2, 1))
}

func TestLEHasNoTuningParameters(t *testing.T) {
	problem, err := NewProblem(Parameters{N: 50, K: 25, Q: 2})
	require.NoError(t, err)
	alg := estimator.NewAlgorithm(LEBrute, problem)
	assert.Empty(t, alg.Schema().Names())
}
