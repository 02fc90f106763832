package estimator

import (
	"fmt"
	"math"
)

// AuxMap is the open-ended, string-keyed dictionary a cost function may
// populate for verbose reporting (e.g. list sizes). It carries no
// semantics the core interprets; it is opaque payload preserved
// alongside the minimising sample.
type AuxMap map[string]float64

// CostSample is the tuple a cost function produces for one tuning
// assignment: time_log2 = +Inf means "infeasible under this assignment".
type CostSample struct {
	TimeLog2   float64
	MemoryLog2 float64
	Aux        AuxMap
}

func infeasibleSample() CostSample {
	return CostSample{TimeLog2: math.Inf(1), MemoryLog2: math.Inf(1)}
}

// CostModel is the capability set a concrete attack algorithm implements,
// a form of polymorphism over a capability set rather than a single
// fixed method table. Compute is the only required pure cost function;
// the optional capabilities below are probed via type assertion, in
// keeping with Go's preference for narrow, composable interfaces over a
// single bloated one.
type CostModel interface {
	// ID is the stable, unique identifier used in excluded-algorithms
	// lists and report keys (e.g. "SD.Prange").
	ID() string
	// DisplayName is a human-readable name for table rendering.
	DisplayName() string
	// Applies reports whether this algorithm is defined for the given
	// problem instance (e.g. an algorithm restricted to the binary
	// field returns false for q != 2).
	Applies(params ProblemParameters) bool
	// DeclareSchema returns a fresh tuning-parameter schema for one
	// Algorithm instance; called once at construction time.
	DeclareSchema() *Schema
	// Compute evaluates the pure cost function for one full tuning
	// assignment, writing any verbose fields into aux (aux is never
	// nil). It must not iterate over tuning parameters itself.
	Compute(problem *Problem, assignment Assignment, aux AuxMap) (timeLog2, memoryLog2 float64)
}

// IndependentResolver is implemented by algorithms that can compute one
// or more of their tuning parameters analytically from the problem and
// the parameters already fixed, instead of via search. A parameter
// declared Independent but whose algorithm has no resolver, or whose
// resolver returns ok=false, is promoted to Joint for that search.
type IndependentResolver interface {
	ResolveIndependent(problem *Problem, name string, fixed Assignment) (value int, ok bool)
}

// InvalidityChecker lets an algorithm cheaply reject enumerated tuples
// before the (possibly expensive) Compute call runs.
type InvalidityChecker interface {
	Invalid(problem *Problem, assignment Assignment) bool
}

// CustomEnumerator lets an algorithm override the default Cartesian-
// product enumerator, e.g. to enforce parity or modular constraints
// cheaply.
type CustomEnumerator interface {
	EnumerateJoint(schema *Schema) <-chan Assignment
}

// TildeOCostModel is implemented by algorithms exposing an asymptotic,
// polylog-free cost. ok=false means the mode is not implemented for
// this algorithm and the caller must report +Inf.
type TildeOCostModel interface {
	ComputeTildeO(problem *Problem, assignment Assignment) (timeLog2, memoryLog2 float64, ok bool)
}

// QuantumCostModel is implemented by algorithms exposing a Grover-like
// quantum speed-up on their search-bound portion.
type QuantumCostModel interface {
	ComputeQuantum(problem *Problem, assignment Assignment) (timeLog2, memoryLog2 float64, ok bool)
}

// lifecycleState is an Algorithm's per-instance search state machine.
type lifecycleState int

const (
	stateUnevaluated lifecycleState = iota
	stateOptimising
	stateOptimal
	stateNoFeasibleSample
)

// Optimum is the minimising assignment and its (transformed) cost
// sample, cached by an Algorithm after a successful search.
type Optimum struct {
	Assignment Assignment
	Sample     CostSample
}

// Algorithm hosts one attack's cost function, tuning schema, and cached
// optimum against one Problem. The Problem is shared by every Algorithm
// an Estimator owns, and Algorithms only read it (see doc.go).
type Algorithm struct {
	model   CostModel
	problem *Problem
	schema  *Schema
	Config  Config

	state       lifecycleState
	optimum     *Optimum
	lastVerbose AuxMap
}

// NewAlgorithm constructs an Algorithm bound to problem, in the
// UNEVALUATED state, with the package's documented default Config.
func NewAlgorithm(model CostModel, problem *Problem) *Algorithm {
	return &Algorithm{
		model:   model,
		problem: problem,
		schema:  model.DeclareSchema(),
		Config:  DefaultConfig(),
		state:   stateUnevaluated,
	}
}

// ID returns the algorithm's stable identifier.
func (a *Algorithm) ID() string { return a.model.ID() }

// DisplayName returns the algorithm's human-readable name.
func (a *Algorithm) DisplayName() string { return a.model.DisplayName() }

// Schema exposes the tuning schema so callers can declare/narrow/fix
// parameters before optimising.
func (a *Algorithm) Schema() *Schema { return a.schema }

// invalidateCache clears the cached optimum and moves the state back to
// UNEVALUATED. Called by every mutation that could change the optimum.
func (a *Algorithm) invalidateCache() {
	a.state = stateUnevaluated
	a.optimum = nil
	a.lastVerbose = nil
}

// Reset clears the cache but keeps the schema's ranges and fixed
// values intact.
func (a *Algorithm) Reset() { a.invalidateCache() }

// SetParameters fixes multiple tuning parameters at once and clears the
// cache. Returns a configuration error (and fixes nothing) if any name
// is unknown or any value falls outside its declared range.
func (a *Algorithm) SetParameters(values map[string]int) error {
	for name, v := range values {
		p, ok := a.schema.Get(name)
		if !ok {
			return fmt.Errorf("estimator: algorithm %s: unknown tuning parameter %q", a.ID(), name)
		}
		if v < p.declaredMin || v > p.declaredMax {
			return fmt.Errorf("estimator: algorithm %s: parameter %q: value %d outside declared range [%d,%d]", a.ID(), name, v, p.declaredMin, p.declaredMax)
		}
	}
	for name, v := range values {
		if err := a.schema.SetValue(name, v); err != nil {
			return err
		}
	}
	a.invalidateCache()
	return nil
}

// SetParameterRanges narrows one tuning parameter's box and clears the
// cache.
func (a *Algorithm) SetParameterRanges(name string, min, max int) error {
	if err := a.schema.SetRange(name, min, max); err != nil {
		return err
	}
	a.invalidateCache()
	return nil
}

// transform applies the cost-model transforms around a raw (basic-unit)
// cost sample: unit conversion, then memory access.
func (a *Algorithm) transform(raw CostSample) CostSample {
	out := raw
	if math.IsInf(raw.TimeLog2, 1) {
		return out
	}
	if a.Config.BitComplexities {
		out.TimeLog2 = a.problem.ToBitcomplexityTime(raw.TimeLog2)
		out.MemoryLog2 = a.problem.ToBitcomplexityMemory(raw.MemoryLog2)
	}
	out.TimeLog2 += a.Config.applyMemoryAccess(out.MemoryLog2)
	return out
}

// evaluateAssignment runs Compute (or the Tilde-O / quantum variant per
// Config.ComplexityType) for one full assignment and applies the
// cost-model transforms, but does not touch the cache.
func (a *Algorithm) evaluateAssignment(assignment Assignment) CostSample {
	aux := AuxMap{}

	var timeLog2, memoryLog2 float64
	switch a.Config.ComplexityType {
	case TildeO:
		tm, ok := a.model.(TildeOCostModel)
		if !ok {
			return infeasibleSample()
		}
		t, m, ok2 := tm.ComputeTildeO(a.problem, assignment)
		if !ok2 {
			return infeasibleSample()
		}
		timeLog2, memoryLog2 = t, m
	default:
		timeLog2, memoryLog2 = a.model.Compute(a.problem, assignment, aux)
	}

	raw := CostSample{TimeLog2: timeLog2, MemoryLog2: memoryLog2, Aux: aux}
	return a.transform(raw)
}

// evaluateQuantum runs the quantum-mode variant; returns an infeasible
// sample if the algorithm has no quantum capability.
func (a *Algorithm) evaluateQuantum(assignment Assignment) CostSample {
	qm, ok := a.model.(QuantumCostModel)
	if !ok {
		return infeasibleSample()
	}
	t, m, ok2 := qm.ComputeQuantum(a.problem, assignment)
	if !ok2 {
		return infeasibleSample()
	}
	return a.transform(CostSample{TimeLog2: t, MemoryLog2: m, Aux: AuxMap{}})
}

// ensureOptimum runs the search (optimizer.go) on first access and
// caches the result; subsequent calls are free.
func (a *Algorithm) ensureOptimum() {
	if a.state == stateOptimal || a.state == stateNoFeasibleSample {
		return
	}
	a.state = stateOptimising
	opt := runSearch(a)
	if opt == nil {
		a.state = stateNoFeasibleSample
		a.optimum = nil
		a.lastVerbose = nil
		return
	}
	a.state = stateOptimal
	a.optimum = opt
	a.lastVerbose = opt.Sample.Aux
}

// TimeComplexity returns the minimised (transformed) time cost. If
// explicit is non-empty it must name every declared tuning parameter
// and the cost is evaluated for exactly that assignment, without
// touching the cache or lifecycle state. Otherwise the cached optimum
// is returned, running the search on first call.
func (a *Algorithm) TimeComplexity(explicit Assignment) (float64, error) {
	if len(explicit) > 0 {
		sample, err := a.evaluateExplicit(explicit)
		if err != nil {
			return 0, err
		}
		return sample.TimeLog2, nil
	}
	a.ensureOptimum()
	if a.optimum == nil {
		return math.Inf(1), nil
	}
	return a.optimum.Sample.TimeLog2, nil
}

// MemoryComplexity is TimeComplexity's memory-side counterpart.
func (a *Algorithm) MemoryComplexity(explicit Assignment) (float64, error) {
	if len(explicit) > 0 {
		sample, err := a.evaluateExplicit(explicit)
		if err != nil {
			return 0, err
		}
		return sample.MemoryLog2, nil
	}
	a.ensureOptimum()
	if a.optimum == nil {
		return math.Inf(1), nil
	}
	return a.optimum.Sample.MemoryLog2, nil
}

func (a *Algorithm) evaluateExplicit(explicit Assignment) (CostSample, error) {
	for _, name := range a.schema.Names() {
		if _, ok := explicit[name]; !ok {
			return CostSample{}, fmt.Errorf("estimator: algorithm %s: explicit assignment missing parameter %q", a.ID(), name)
		}
	}
	for name := range explicit {
		if _, ok := a.schema.Get(name); !ok {
			return CostSample{}, fmt.Errorf("estimator: algorithm %s: unknown tuning parameter %q", a.ID(), name)
		}
	}
	if a.Config.ShowQuantumComplexity {
		return a.evaluateQuantum(explicit), nil
	}
	return a.evaluateAssignment(explicit), nil
}

// OptimalParameters returns the minimising assignment, running the
// search if not already cached. Returns an empty Assignment if the
// search space is empty.
func (a *Algorithm) OptimalParameters() Assignment {
	a.ensureOptimum()
	if a.optimum == nil {
		return Assignment{}
	}
	return a.optimum.Assignment.Clone()
}

// GetOptimalParametersDict returns the currently cached assignment
// without triggering a search; it is empty if nothing is cached yet.
func (a *Algorithm) GetOptimalParametersDict() Assignment {
	if a.optimum == nil {
		return Assignment{}
	}
	return a.optimum.Assignment.Clone()
}

// Verbose returns a snapshot of the aux map preserved alongside the
// cached minimising sample; it is nil if nothing is cached.
func (a *Algorithm) Verbose() AuxMap {
	if a.lastVerbose == nil {
		return nil
	}
	out := make(AuxMap, len(a.lastVerbose))
	for k, v := range a.lastVerbose {
		out[k] = v
	}
	return out
}

// State reports the current lifecycle state; exported as a string for
// report rendering.
func (a *Algorithm) State() string {
	switch a.state {
	case stateOptimising:
		return "optimising"
	case stateOptimal:
		return "optimal"
	case stateNoFeasibleSample:
		return "no_feasible_sample"
	default:
		return "unevaluated"
	}
}
