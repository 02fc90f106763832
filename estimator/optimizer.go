package estimator

import "math"

// runSearch is the optimisation core: it resolves independent parameters
// analytically (promoting any the algorithm cannot resolve to joint
// status for this search), enumerates the resulting joint product,
// discards invalid and over-budget samples, and returns the first
// minimiser found (first-tuple-wins tie-break, making the result
// deterministic given the declaration/enumeration order). Returns nil if
// the search space is empty or every sample is infeasible, the
// no-feasible-sample case, which is never an error.
func runSearch(a *Algorithm) *Optimum {
	resolved := Assignment{}
	var jointParams []*TuningParameter

	// Step 1: independents, in declaration order.
	resolver, canResolve := a.model.(IndependentResolver)
	for _, p := range a.schema.Independents() {
		if p.IsFixed() {
			resolved[p.Name] = p.Min()
			continue
		}
		if canResolve {
			if v, ok := resolver.ResolveIndependent(a.problem, p.Name, resolved.Clone()); ok {
				resolved[p.Name] = v
				continue
			}
		}
		// No analytic routine (or it declined): promoted to joint for
		// this search.
		jointParams = append(jointParams, p)
	}
	jointParams = append(jointParams, a.schema.Joints()...)

	// Step 2/3: enumerate joint tuples, skipping invalid ones.
	var enumerator <-chan Assignment
	if custom, ok := a.model.(CustomEnumerator); ok {
		enumerator = custom.EnumerateJoint(a.schema)
	} else {
		enumerator = enumerateParams(jointParams)
	}

	checker, hasChecker := a.model.(InvalidityChecker)

	var best *Optimum
	for joint := range enumerator {
		full := resolved.Clone()
		for k, v := range joint {
			full[k] = v
		}

		if hasChecker && checker.Invalid(a.problem, full) {
			continue
		}

		sample := a.evaluateAssignment(full)
		if math.IsInf(sample.TimeLog2, 1) {
			continue
		}
		if sample.MemoryLog2 > a.problem.MemoryBoundLog2() {
			continue
		}

		// Step 5: track the minimum; first tuple wins ties.
		if best == nil || sample.TimeLog2 < best.Sample.TimeLog2 {
			best = &Optimum{Assignment: full, Sample: sample}
		}
	}

	return best
}
