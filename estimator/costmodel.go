package estimator

import (
	"fmt"
	"math"
)

// ComplexityType selects between an algorithm's concrete cost estimate
// and its asymptotic (polylog-free) Tilde-O form.
type ComplexityType int

const (
	Estimate ComplexityType = iota
	TildeO
)

func (c ComplexityType) String() string {
	if c == TildeO {
		return "tilde_o"
	}
	return "estimate"
}

// MemoryAccessModel adds a penalty f(memory_bits_log2) to the time
// estimate, modelling the physical cost of accessing a memory footprint
// of the given size.
type MemoryAccessModel int

const (
	MemoryAccessConst MemoryAccessModel = iota
	MemoryAccessLog
	MemoryAccessSqrt
	MemoryAccessCbrt
	MemoryAccessCustom
)

func (m MemoryAccessModel) String() string {
	switch m {
	case MemoryAccessLog:
		return "log"
	case MemoryAccessSqrt:
		return "sqrt"
	case MemoryAccessCbrt:
		return "cbrt"
	case MemoryAccessCustom:
		return "custom"
	default:
		return "const"
	}
}

// memoryAccessPenalty returns f(memoryBitsLog2) for the built-in models;
// MemoryAccessCustom is handled by the caller via Config.CustomMemoryAccess.
func memoryAccessPenalty(model MemoryAccessModel, memoryBitsLog2 float64) float64 {
	switch model {
	case MemoryAccessConst:
		return 0
	case MemoryAccessLog:
		if memoryBitsLog2 <= 0 {
			return 0
		}
		return math.Log2(memoryBitsLog2)
	case MemoryAccessSqrt:
		return memoryBitsLog2 / 2
	case MemoryAccessCbrt:
		return memoryBitsLog2 / 3
	default:
		panic(fmt.Sprintf("estimator: memoryAccessPenalty: unhandled model %v", model))
	}
}

// Config is the mutable cost-model/display configuration block shared by
// Estimator and Algorithm. Use DefaultConfig for the documented default
// (Estimate, bit complexities on, constant memory access, precision 1,
// rounding not truncating); the zero value leaves BitComplexities off.
type Config struct {
	ComplexityType        ComplexityType
	BitComplexities       bool
	MemoryAccess          MemoryAccessModel
	CustomMemoryAccess    func(memoryBitsLog2 float64) float64
	Precision             int
	Truncate              bool
	ShowAllParameters     bool
	ShowTildeOTime        bool
	ShowQuantumComplexity bool
}

// DefaultConfig returns the package's documented default configuration.
func DefaultConfig() Config {
	return Config{
		ComplexityType:  Estimate,
		BitComplexities: true,
		MemoryAccess:    MemoryAccessConst,
		Precision:       1,
	}
}

// Validate returns a configuration error for structurally invalid
// settings (e.g. MemoryAccessCustom without a CustomMemoryAccess func).
func (c Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("estimator: Config.Precision must be >= 0, got %d", c.Precision)
	}
	if c.MemoryAccess == MemoryAccessCustom && c.CustomMemoryAccess == nil {
		return fmt.Errorf("estimator: Config.MemoryAccess is Custom but CustomMemoryAccess is nil")
	}
	return nil
}

// applyMemoryAccess dispatches to the built-in penalty functions or the
// user-supplied custom closure.
func (c Config) applyMemoryAccess(memoryBitsLog2 float64) float64 {
	if c.MemoryAccess == MemoryAccessCustom {
		return c.CustomMemoryAccess(memoryBitsLog2)
	}
	return memoryAccessPenalty(c.MemoryAccess, memoryBitsLog2)
}
