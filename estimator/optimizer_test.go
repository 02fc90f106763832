package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indepModel declares one Independent parameter resolved analytically as
// 2*n (n is the model's own field, not read from the Problem) and one
// Joint parameter r; cost is |r - analyticValue|.
type indepModel struct {
	n int
}

func (m *indepModel) ID() string                          { return "toy.Indep" }
func (m *indepModel) DisplayName() string                 { return "Toy Independent" }
func (m *indepModel) Applies(ProblemParameters) bool      { return true }
func (m *indepModel) DeclareSchema() *Schema {
	s := NewSchema()
	s.Declare("a", 0, 100, Independent)
	s.Declare("r", 0, 100, Joint)
	return s
}
func (m *indepModel) ResolveIndependent(problem *Problem, name string, fixed Assignment) (int, bool) {
	if name != "a" {
		return 0, false
	}
	return 2 * m.n, true
}
func (m *indepModel) Compute(problem *Problem, a Assignment, aux AuxMap) (float64, float64) {
	diff := a["r"] - a["a"]
	if diff < 0 {
		diff = -diff
	}
	return float64(diff), 0
}

func TestIndependentParameterResolvedAnalytically(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&indepModel{n: 10}, problem)

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tm) // r can match a=20 exactly within [0,100]

	params := alg.OptimalParameters()
	assert.Equal(t, 20, params["a"])
	assert.Equal(t, 20, params["r"])
}

// unresolvableIndepModel declares an Independent parameter but implements
// no IndependentResolver, so the optimizer must promote it to Joint.
type unresolvableIndepModel struct{}

func (m *unresolvableIndepModel) ID() string                     { return "toy.Unresolved" }
func (m *unresolvableIndepModel) DisplayName() string             { return "Toy Unresolved" }
func (m *unresolvableIndepModel) Applies(ProblemParameters) bool { return true }
func (m *unresolvableIndepModel) DeclareSchema() *Schema {
	s := NewSchema()
	s.Declare("a", 0, 2, Independent)
	return s
}
func (m *unresolvableIndepModel) Compute(problem *Problem, a Assignment, aux AuxMap) (float64, float64) {
	return float64(a["a"]), 0
}

func TestIndependentParameterPromotedToJointWhenUnresolvable(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&unresolvableIndepModel{}, problem)

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tm) // search finds a=0 as the minimum over [0,2]
}

func TestFixedIndependentParameterIsUsedDirectly(t *testing.T) {
	problem := newToyProblem(t)
	alg := NewAlgorithm(&indepModel{n: 10}, problem)
	require.NoError(t, alg.Schema().SetValue("a", 5))

	tm, err := alg.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tm) // r matches the fixed a=5

	params := alg.OptimalParameters()
	assert.Equal(t, 5, params["a"])
	assert.Equal(t, 5, params["r"])
}

func TestFixingJointParameterReproducesFreeOptimum(t *testing.T) {
	problem := newToyProblem(t)
	free := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)
	_, err := free.TimeComplexity(nil)
	require.NoError(t, err)
	freeParams := free.OptimalParameters()

	fixed := NewAlgorithm(&toyModel{min: -3, max: 3}, problem)
	require.NoError(t, fixed.SetParameters(map[string]int{"p": freeParams["p"]}))
	tm, err := fixed.TimeComplexity(nil)
	require.NoError(t, err)

	freeTime, err := free.TimeComplexity(nil)
	require.NoError(t, err)
	assert.Equal(t, freeTime, tm)
}
