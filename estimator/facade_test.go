package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restrictedModel only applies to problems whose field order is 3,
// used to exercise Estimator's applicability filtering.
type restrictedModel struct{ toyModel }

func (m *restrictedModel) ID() string                     { return "toy.Restricted" }
func (m *restrictedModel) DisplayName() string             { return "Toy Restricted" }
func (m *restrictedModel) Applies(p ProblemParameters) bool { return p.FieldOrder() == 3 }

func init() {
	RegisterAlgorithm("estimator_test_family", &toyModel{min: -5, max: 5})
	RegisterAlgorithm("estimator_test_family", &restrictedModel{toyModel: toyModel{min: -5, max: 5}})
}

func TestNewEstimatorFiltersByApplicability(t *testing.T) {
	problem := newToyProblem(t) // q=2, so restrictedModel (q==3) is excluded
	e, err := NewEstimator(problem, "estimator_test_family", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Toy Square"}, e.AlgorithmNames())
}

func TestNewEstimatorUnknownFamilyErrors(t *testing.T) {
	problem := newToyProblem(t)
	_, err := NewEstimator(problem, "no_such_family", nil)
	assert.Error(t, err)
}

func TestNewEstimatorExcludedAlgorithmsList(t *testing.T) {
	p, err := NewProblem(fakeParams{valid: true, q: 3}, IdentityConversion())
	require.NoError(t, err)
	e, err := NewEstimator(p, "estimator_test_family", []string{"toy.Square"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Toy Restricted"}, e.AlgorithmNames())
}

func TestEstimatorEstimateAndFastest(t *testing.T) {
	problem := newToyProblem(t)
	e, err := NewEstimator(problem, "estimator_test_family", nil)
	require.NoError(t, err)

	report, err := e.Estimate()
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	entry, ok := report.ByName("Toy Square")
	require.True(t, ok)
	assert.Equal(t, 1.0, entry.Estimate.TimeLog2)

	fastest, err := e.FastestAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, "toy.Square", fastest.ID())
}

func TestEstimatorFastestAlgorithmNoApplicable(t *testing.T) {
	p, err := NewProblem(fakeParams{valid: true, q: 99}, IdentityConversion())
	require.NoError(t, err)
	e, err := NewEstimator(p, "estimator_test_family", []string{"toy.Square", "toy.Restricted"})
	require.NoError(t, err)
	_, err = e.FastestAlgorithm()
	assert.Error(t, err)
}

func TestEstimatorConfigPropagationResetsCaches(t *testing.T) {
	problem := newToyProblem(t)
	e, err := NewEstimator(problem, "estimator_test_family", []string{"toy.Restricted"})
	require.NoError(t, err)

	_, err = e.Algorithms[0].TimeComplexity(nil)
	require.NoError(t, err)
	require.Equal(t, "optimal", e.Algorithms[0].State())

	e.SetBitComplexities(false)
	assert.Equal(t, "unevaluated", e.Algorithms[0].State())
	assert.False(t, e.Algorithms[0].Config.BitComplexities)
}

func TestEstimateConcurrentMatchesEstimate(t *testing.T) {
	p, err := NewProblem(fakeParams{valid: true, q: 3}, IdentityConversion())
	require.NoError(t, err)
	e, err := NewEstimator(p, "estimator_test_family", nil)
	require.NoError(t, err)

	sequential, err := e.Estimate()
	require.NoError(t, err)

	concurrent, err := e.EstimateConcurrent()
	require.NoError(t, err)

	require.Len(t, concurrent.Entries, len(sequential.Entries))
	for i := range sequential.Entries {
		assert.Equal(t, sequential.Entries[i].ID, concurrent.Entries[i].ID)
		assert.Equal(t, sequential.Entries[i].Estimate, concurrent.Entries[i].Estimate)
	}
}

func TestEstimatorExcludingOneAlgorithmDoesNotChangeAnothers(t *testing.T) {
	p, err := NewProblem(fakeParams{valid: true, q: 3}, IdentityConversion())
	require.NoError(t, err)

	full, err := NewEstimator(p, "estimator_test_family", nil)
	require.NoError(t, err)
	withExclusion, err := NewEstimator(p, "estimator_test_family", []string{"toy.Restricted"})
	require.NoError(t, err)

	fullSquare, _ := full.Algorithms[0].TimeComplexity(nil)
	exclSquare, _ := withExclusion.Algorithms[0].TimeComplexity(nil)
	assert.Equal(t, fullSquare, exclSquare)
}
