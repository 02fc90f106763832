// Package estimator provides the core bit-complexity estimation engine.
//
// # Reading Guide
//
// Start with these files to understand the optimisation kernel:
//   - numerics.go: log2-space factorial/binomial/entropy helpers
//   - paramrange.go: tuning-parameter declaration, ranges, and enumeration
//   - problem.go: problem parameters and basic-unit-to-bit conversion
//   - algorithm.go: the per-algorithm cost-model contract and state machine
//   - optimizer.go: the search loop that ties the above together
//
// # Architecture
//
// The package defines the generic framework; concrete attacks against
// concrete hardness assumptions live in sibling packages under problems/,
// each registering its algorithm plug-ins with the registry in
// registry.go via an init() function, mirroring the self-registering
// plug-in convention used by packages in this codebase's lineage. The
// packages under schemes/ register nothing: each builds an estimator for
// the problems/ family its scheme maps onto.
//
// # Key types
//
//   - ProblemParameters: a family's fixed instance data (n, k, w, ...)
//   - Problem: ProblemParameters plus the two unit-conversion functions
//   - Algorithm: one attack's tuning schema, cost function, and cache
//   - Estimator: a Problem plus the algorithms applicable to it
//
// Nothing in this package performs I/O. Goroutines are started only by
// the joint-parameter enumerator (paramrange.go) and by
// Estimator.EstimateConcurrent. The only package-level state is the
// plug-in registry filled by init() functions; every configuration lives
// on an Estimator or Algorithm instance.
//
// # Ownership
//
// An Estimator owns its Algorithms; every Algorithm holds a shared,
// non-owning reference to the Estimator's Problem and only reads it. A
// Problem's parameters and unit conversion are fixed at construction;
// its memory bound and expected-solution count can be changed through
// their setters.
package estimator
