package estimator

import "math"

// ProblemParameters is the per-family bag of fixed instance data (e.g.
// SD's n, k, w; MQ's n, m, q). Implementations must be immutable once
// handed to NewProblem and must validate their own positivity/shape
// constraints.
type ProblemParameters interface {
	// Validate returns a programmer/configuration error if the
	// parameters are out of the family's admissible domain (e.g.
	// negative n, or w > n for SD).
	Validate() error
	// FieldOrder returns the order q of the field the problem is
	// defined over, or 2 for binary-only families. Used by
	// Problem.OrderOfTheField.
	FieldOrder() int
	// DefaultNSolutionsLog2 returns the family-specific default for
	// log2(expected number of solutions) when the caller leaves it
	// unset.
	DefaultNSolutionsLog2() float64
}

// UnitConversion is a pair of pure, log2-to-log2 maps bridging a
// family's "basic operations"/"basic elements" into bits. Both fields
// must be non-nil; IdentityConversion supplies the common default.
type UnitConversion struct {
	TimeBasicToBits   func(basicOpsLog2 float64) float64
	MemoryBasicToBits func(basicElementsLog2 float64) float64
}

// IdentityConversion is the "bits already" conversion used by families
// (like binary SD) whose basic operation already costs one bit
// operation.
func IdentityConversion() UnitConversion {
	id := func(x float64) float64 { return x }
	return UnitConversion{TimeBasicToBits: id, MemoryBasicToBits: id}
}

// FieldConversion returns a conversion that multiplies magnitudes by
// log2(q): multiplying a magnitude M by c corresponds, in log2 space, to
// adding log2(c) to log2(M), so the conversion adds log2(log2(q)). Used
// by q-ary families (MQ, MinRank, ...) where one field operation costs
// log2(q) bit operations.
func FieldConversion(q int) UnitConversion {
	if q < 2 {
		panic("estimator: FieldConversion: q must be >= 2")
	}
	shift := math.Log2(math.Log2(float64(q)))
	conv := func(x float64) float64 {
		if math.IsInf(x, 0) {
			return x
		}
		return x + shift
	}
	return UnitConversion{TimeBasicToBits: conv, MemoryBasicToBits: conv}
}

// Problem bundles a family's ProblemParameters with its UnitConversion
// and the two fields every family shares: a memory bound and an
// expected-solution count, both log2. Its parameters and unit conversion
// are fixed at construction; the memory bound and expected-solution
// count can be changed through their setters. Algorithms hold a
// non-owning reference to it (see doc.go's note on the Problem/Algorithm
// ownership graph).
type Problem struct {
	params           ProblemParameters
	conversion       UnitConversion
	memoryBoundLog2  float64
	nsolutionsLog2   float64
	nsolutionsWasSet bool
}

// NewProblem constructs a Problem after validating params. The memory
// bound starts at +Inf (unconstrained); the expected-solution count falls
// back to params.DefaultNSolutionsLog2() until SetNSolutionsLog2 is
// called.
func NewProblem(params ProblemParameters, conversion UnitConversion) (*Problem, error) {
	if params == nil {
		panic("estimator: NewProblem: nil ProblemParameters")
	}
	if conversion.TimeBasicToBits == nil || conversion.MemoryBasicToBits == nil {
		panic("estimator: NewProblem: incomplete UnitConversion")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Problem{
		params:          params,
		conversion:      conversion,
		memoryBoundLog2: math.Inf(1),
	}, nil
}

// Parameters returns the immutable ProblemParameters.
func (p *Problem) Parameters() ProblemParameters { return p.params }

// ToBitcomplexityTime converts a basic-operation-count log2 value into
// a bit-complexity log2 value.
func (p *Problem) ToBitcomplexityTime(basicOpsLog2 float64) float64 {
	return p.conversion.TimeBasicToBits(basicOpsLog2)
}

// ToBitcomplexityMemory converts a basic-element-count log2 value into
// a bit-complexity log2 value.
func (p *Problem) ToBitcomplexityMemory(basicElementsLog2 float64) float64 {
	return p.conversion.MemoryBasicToBits(basicElementsLog2)
}

// OrderOfTheField returns q, delegating to the family's ProblemParameters.
func (p *Problem) OrderOfTheField() int { return p.params.FieldOrder() }

// MemoryBoundLog2 returns the current memory ceiling in log2 bits.
func (p *Problem) MemoryBoundLog2() float64 { return p.memoryBoundLog2 }

// SetMemoryBoundLog2 tightens or loosens the search's memory ceiling.
func (p *Problem) SetMemoryBoundLog2(bound float64) { p.memoryBoundLog2 = bound }

// NSolutionsLog2 returns the configured log2 expected-solution count,
// falling back to the family's default when unset.
func (p *Problem) NSolutionsLog2() float64 {
	if p.nsolutionsWasSet {
		return p.nsolutionsLog2
	}
	return p.params.DefaultNSolutionsLog2()
}

// SetNSolutionsLog2 overrides the default expected-solution count.
func (p *Problem) SetNSolutionsLog2(v float64) {
	p.nsolutionsLog2 = v
	p.nsolutionsWasSet = true
}
