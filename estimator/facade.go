package estimator

import (
	"fmt"
	"sort"
	"sync"
)

// Estimator owns a Problem and the Algorithms applicable to it.
// Construction filters the family's registered plug-ins by their own
// Applies predicate and by a caller-supplied exclusion list;
// filtered-out algorithms never appear in reports.
type Estimator struct {
	Problem    *Problem
	Algorithms []*Algorithm
	Config     Config

	familyID string
}

// NewEstimator builds an Estimator for the named problem family
// (registered via RegisterAlgorithm), applying excludedAlgorithms by
// ID and each plug-in's own Applies(problem.Parameters()) predicate.
// Returns a configuration error if familyID has no registered
// algorithms at all (a programmer error: the family package was never
// imported).
func NewEstimator(problem *Problem, familyID string, excludedAlgorithms []string) (*Estimator, error) {
	models := AlgorithmsForFamily(familyID)
	if len(models) == 0 {
		return nil, fmt.Errorf("estimator: no algorithms registered for family %q (forgot to import the problems/%s package?)", familyID, familyID)
	}

	excluded := make(map[string]bool, len(excludedAlgorithms))
	for _, id := range excludedAlgorithms {
		excluded[id] = true
	}

	e := &Estimator{Problem: problem, Config: DefaultConfig(), familyID: familyID}
	for _, model := range models {
		if excluded[model.ID()] {
			continue
		}
		if !model.Applies(problem.Parameters()) {
			continue
		}
		alg := NewAlgorithm(model, problem)
		alg.Config = e.Config
		e.Algorithms = append(e.Algorithms, alg)
	}
	return e, nil
}

// AlgorithmNames returns the display names of the included algorithms,
// in registration order.
func (e *Estimator) AlgorithmNames() []string {
	out := make([]string, len(e.Algorithms))
	for i, a := range e.Algorithms {
		out[i] = a.DisplayName()
	}
	return out
}

// SetComplexityType propagates ComplexityType to every owned Algorithm
// and resets each one's cache, since it changes what Compute evaluates.
func (e *Estimator) SetComplexityType(ct ComplexityType) {
	e.Config.ComplexityType = ct
	for _, a := range e.Algorithms {
		a.Config.ComplexityType = ct
		a.Reset()
	}
}

// SetBitComplexities propagates BitComplexities and resets every cache.
func (e *Estimator) SetBitComplexities(on bool) {
	e.Config.BitComplexities = on
	for _, a := range e.Algorithms {
		a.Config.BitComplexities = on
		a.Reset()
	}
}

// SetMemoryAccess propagates a memory-access model (and, for
// MemoryAccessCustom, the penalty function) and resets every cache.
func (e *Estimator) SetMemoryAccess(model MemoryAccessModel, custom func(float64) float64) {
	e.Config.MemoryAccess = model
	e.Config.CustomMemoryAccess = custom
	for _, a := range e.Algorithms {
		a.Config.MemoryAccess = model
		a.Config.CustomMemoryAccess = custom
		a.Reset()
	}
}

// SetPrecision propagates rendering precision without touching caches
// (precision affects display only, not the cost computation).
func (e *Estimator) SetPrecision(digits int) {
	e.Config.Precision = digits
	for _, a := range e.Algorithms {
		a.Config.Precision = digits
	}
}

// SetTruncate propagates the round-vs-truncate display flag.
func (e *Estimator) SetTruncate(truncate bool) {
	e.Config.Truncate = truncate
	for _, a := range e.Algorithms {
		a.Config.Truncate = truncate
	}
}

// SetShowAllParameters propagates the "show chosen tuning parameters"
// display flag.
func (e *Estimator) SetShowAllParameters(show bool) {
	e.Config.ShowAllParameters = show
	for _, a := range e.Algorithms {
		a.Config.ShowAllParameters = show
	}
}

// SetShowTildeOTime propagates the "show tilde-O column" display flag.
func (e *Estimator) SetShowTildeOTime(show bool) {
	e.Config.ShowTildeOTime = show
	for _, a := range e.Algorithms {
		a.Config.ShowTildeOTime = show
	}
}

// SetShowQuantumComplexity propagates the "show quantum column" flag.
func (e *Estimator) SetShowQuantumComplexity(show bool) {
	e.Config.ShowQuantumComplexity = show
	for _, a := range e.Algorithms {
		a.Config.ShowQuantumComplexity = show
	}
}

// Reset clears every owned Algorithm's cache.
func (e *Estimator) Reset() {
	for _, a := range e.Algorithms {
		a.Reset()
	}
}

// Estimate runs every owned Algorithm's search (if not already cached)
// and packages the results into a Report, in registration order.
func (e *Estimator) Estimate() (*Report, error) {
	report := &Report{Entries: make([]AlgorithmReport, 0, len(e.Algorithms))}
	for _, a := range e.Algorithms {
		entry, err := e.buildEntry(a)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

// EstimateConcurrent is Estimate's opt-in concurrent form: it runs each
// owned Algorithm's search on its own goroutine, since every Algorithm
// owns its own cache and no mutable state is shared between them, then
// assembles the Report in the same registration order Estimate uses.
// Safe to call even when some Algorithms are already cached from a
// prior Estimate call.
func (e *Estimator) EstimateConcurrent() (*Report, error) {
	entries := make([]AlgorithmReport, len(e.Algorithms))
	errs := make([]error, len(e.Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(e.Algorithms))
	for i, a := range e.Algorithms {
		go func(i int, a *Algorithm) {
			defer wg.Done()
			entry, err := e.buildEntry(a)
			entries[i] = entry
			errs[i] = err
		}(i, a)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Report{Entries: entries}, nil
}

// buildEntry runs (or reuses the cache of) one Algorithm's search and
// assembles its AlgorithmReport entry.
func (e *Estimator) buildEntry(a *Algorithm) (AlgorithmReport, error) {
	tm, err := a.TimeComplexity(nil)
	if err != nil {
		return AlgorithmReport{}, err
	}
	mem, err := a.MemoryComplexity(nil)
	if err != nil {
		return AlgorithmReport{}, err
	}

	additional := map[string]any{"state": a.State()}
	if v := a.Verbose(); v != nil {
		additional["aux"] = v
	}
	params := a.OptimalParameters()
	if e.Config.ShowTildeOTime {
		sample := evaluateTildeOAt(a, params)
		additional["tilde_o_time"] = sample.TimeLog2
		additional["tilde_o_memory"] = sample.MemoryLog2
	}
	if e.Config.ShowQuantumComplexity && a.optimum != nil {
		sample := a.evaluateQuantum(params)
		additional["quantum_time"] = sample.TimeLog2
		additional["quantum_memory"] = sample.MemoryLog2
	}

	return AlgorithmReport{
		Name: a.DisplayName(),
		ID:   a.ID(),
		Estimate: Estimate{
			TimeLog2:   tm,
			MemoryLog2: mem,
			Parameters: params,
		},
		AdditionalInformation: additional,
	}, nil
}

// evaluateTildeOAt evaluates the Tilde-O cost model (if present) at a
// specific assignment, independent of the Algorithm's current
// Config.ComplexityType, used to populate the optional report column.
func evaluateTildeOAt(a *Algorithm, assignment Assignment) CostSample {
	if len(assignment) == 0 {
		return infeasibleSample()
	}
	tm, ok := a.model.(TildeOCostModel)
	if !ok {
		return infeasibleSample()
	}
	t, m, ok2 := tm.ComputeTildeO(a.problem, assignment)
	if !ok2 {
		return infeasibleSample()
	}
	return a.transform(CostSample{TimeLog2: t, MemoryLog2: m, Aux: AuxMap{}})
}

// FastestAlgorithm returns the owned Algorithm with the smallest
// minimised time complexity. Returns an error if the Estimator has no
// applicable algorithms at all.
func (e *Estimator) FastestAlgorithm() (*Algorithm, error) {
	if len(e.Algorithms) == 0 {
		return nil, fmt.Errorf("estimator: no applicable algorithms; no fastest")
	}
	type scored struct {
		alg  *Algorithm
		time float64
	}
	scores := make([]scored, 0, len(e.Algorithms))
	for _, a := range e.Algorithms {
		tm, err := a.TimeComplexity(nil)
		if err != nil {
			return nil, err
		}
		scores = append(scores, scored{a, tm})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].time < scores[j].time })
	return scores[0].alg, nil
}
