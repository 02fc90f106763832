package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyModel implements CostModel for a trivial "minimize p^2 + 1"
// family used to exercise Algorithm/optimizer plumbing without any real
// cryptanalysis.
type toyModel struct {
	min, max int
	invalid  func(Assignment) bool
}

func (m *toyModel) ID() string          { return "toy.Square" }
func (m *toyModel) DisplayName() string { return "Toy Square" }
func (m *toyModel) Applies(ProblemParameters) bool { return true }
func (m *toyModel) DeclareSchema() *Schema {
	s := NewSchema()
	s.Declare("p", m.min, m.max, Joint)
	return s
}
func (m *toyModel) Compute(problem *Problem, a Assignment, aux AuxMap) (float64, float64) {
	p := float64(a["p"])
	aux["p_value"] = p
	return p*p + 1, math.Abs(p) // time, memory both in basic units
}

func (m *toyModel) Invalid(problem *Problem, a Assignment) bool {
	if m.invalid == nil {
		return false
	}
	return m.invalid(a)
}

func newToyProblem(t *testing.T) *Problem {
	t.Helper()
	p, err := NewProblem(fakeParams{valid: true, q: 2}, IdentityConversion())
	require.NoError(t, err)
	return p
}

func TestAlgorithmOptimizesToMinimum(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tm) // minimized at p=0: 0*0+1 = 1

	params := alg.OptimalParameters()
	assert.Equal(t, 0, params["p"])
	assert.Equal(t, "optimal", alg.State())
}

func TestAlgorithmExplicitAssignmentDoesNotTouchCache(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)

	tm, err := alg.TimeComplexity(Assignment{"p": 2})
	require.NoError(t, err)
	assert.Equal(t, 5.0, tm) // 2*2+1

	assert.Equal(t, "unevaluated", alg.State())
	assert.Empty(t, alg.GetOptimalParametersDict())
}

func TestAlgorithmExplicitAssignmentMissingParameterErrors(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)
	_, err := alg.TimeComplexity(Assignment{"q": 1})
	assert.Error(t, err)
}

func TestAlgorithmSetParametersClearsCacheAndFixesValue(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)

	_, err := alg.TimeComplexity(nil) // populate cache
	require.NoError(t, err)
	require.Equal(t, "optimal", alg.State())

	require.NoError(t, alg.SetParameters(map[string]int{"p": 3}))
	assert.Equal(t, "unevaluated", alg.State())

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tm) // 3*3+1, now forced
}

func TestAlgorithmMemoryBoundExcludesSamples(t *testing.T) {
	problem := newToyProblem(t)
	problem.SetMemoryBoundLog2(1) // memory = |p|, so only p in [-1,1] survive

	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)
	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tm) // p=0 is still optimal and within bound

	problem2 := newToyProblem(t)
	problem2.SetMemoryBoundLog2(-1) // nothing satisfies memory <= -1 except... p must have |p|<=-1: impossible
	alg2 := NewAlgorithm(&toyModel{min: 1, max: 3}, problem2)
	tm2, err := alg2.TimeComplexity(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(tm2, 1))
	assert.Equal(t, "no_feasible_sample", alg2.State())
	assert.Empty(t, alg2.OptimalParameters())
}

func TestAlgorithmInvalidityCheckerSkipsTuples(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{
		min: -3, max: 3,
		invalid: func(a Assignment) bool { return a["p"] == 0 },
	}, problem)

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, tm) // p=0 excluded; next best |p|=1 -> 1+1=2
}

func TestAlgorithmResetKeepsFixedValues(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)
	require.NoError(t, alg.SetParameters(map[string]int{"p": 2}))

	_, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	alg.Reset()
	assert.Equal(t, "unevaluated", alg.State())

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tm) // still fixed at p=2 after Reset
}

func TestAlgorithmVerboseSnapshot(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)
	_, err := alg.TimeComplexity(nil)
	require.NoError(t, err)

	v := alg.Verbose()
	require.NotNil(t, v)
	assert.Equal(t, 0.0, v["p_value"])
}
