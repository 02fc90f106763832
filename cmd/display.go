package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/crypto-estimators/estimator/estimator"
)

// displayFlags collects the Config-surface and rendering flags shared by
// every estimate subcommand.
type displayFlags struct {
	precision      int
	truncate       bool
	showAll        bool
	showTildeO     bool
	showQuantum    bool
	memoryAccess   string
	complexityType string
	jsonOutput     bool
}

// bindDisplayFlags registers the shared display/config flags on cmd.
func bindDisplayFlags(cmd *cobra.Command, f *displayFlags) {
	cmd.Flags().IntVar(&f.precision, "precision", 1, "number of fractional digits to display")
	cmd.Flags().BoolVar(&f.truncate, "truncate", false, "truncate instead of round to the display precision")
	cmd.Flags().BoolVar(&f.showAll, "show-all-parameters", false, "include every tuning parameter's optimal value in the report")
	cmd.Flags().BoolVar(&f.showTildeO, "show-tilde-o", false, "add Tilde-O time/memory to each entry's additional_information (visible with --json; the table has no Tilde-O column)")
	cmd.Flags().BoolVar(&f.showQuantum, "show-quantum", false, "add quantum time/memory to each entry's additional_information (visible with --json; the table has no quantum column)")
	cmd.Flags().StringVar(&f.memoryAccess, "memory-access", "const", "memory access model: const, log, sqrt, or cbrt")
	cmd.Flags().StringVar(&f.complexityType, "complexity", "estimate", "complexity type: estimate or tilde_o")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "emit the report as JSON instead of a table")
}

// parseMemoryAccess maps a flag string to its MemoryAccessModel.
func parseMemoryAccess(s string) (estimator.MemoryAccessModel, error) {
	switch s {
	case "const":
		return estimator.MemoryAccessConst, nil
	case "log":
		return estimator.MemoryAccessLog, nil
	case "sqrt":
		return estimator.MemoryAccessSqrt, nil
	case "cbrt":
		return estimator.MemoryAccessCbrt, nil
	default:
		return 0, fmt.Errorf("invalid --memory-access %q; want const, log, sqrt, or cbrt", s)
	}
}

// parseComplexityType maps a flag string to its ComplexityType.
func parseComplexityType(s string) (estimator.ComplexityType, error) {
	switch s {
	case "estimate":
		return estimator.Estimate, nil
	case "tilde_o":
		return estimator.TildeO, nil
	default:
		return 0, fmt.Errorf("invalid --complexity %q; want estimate or tilde_o", s)
	}
}

// applyDisplayFlags propagates f onto e's Config, per-field, the same
// way Estimator's own setters do: some fields reset every cached
// optimum, some only affect rendering.
func applyDisplayFlags(e *estimator.Estimator, f displayFlags) error {
	memAccess, err := parseMemoryAccess(f.memoryAccess)
	if err != nil {
		return err
	}
	complexityType, err := parseComplexityType(f.complexityType)
	if err != nil {
		return err
	}
	e.SetMemoryAccess(memAccess, nil)
	e.SetComplexityType(complexityType)
	e.SetPrecision(f.precision)
	e.SetTruncate(f.truncate)
	e.SetShowAllParameters(f.showAll)
	e.SetShowTildeOTime(f.showTildeO)
	e.SetShowQuantumComplexity(f.showQuantum)
	return nil
}

// runEstimate applies f to e, runs the estimate, and writes the report
// to stdout either as JSON or as a rendered table.
func runEstimate(e *estimator.Estimator, f displayFlags) error {
	if err := applyDisplayFlags(e, f); err != nil {
		return err
	}
	report, err := e.Estimate()
	if err != nil {
		return err
	}
	if f.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	renderReport(report, f)
	return nil
}

// renderReport prints report as a box-drawing table, honoring
// ShowAllParameters and the rounding precision.
func renderReport(report *estimator.Report, f displayFlags) {
	t := table.NewWriter()
	t.SetOutputMixed(false)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Algorithm", "ID", "Time (log2)", "Memory (log2)"}
	if f.showAll {
		header = append(header, "Parameters")
	}
	t.AppendHeader(header)

	for _, entry := range report.Entries {
		row := table.Row{
			entry.Name,
			entry.ID,
			estimator.CeilToPrecision(entry.Estimate.TimeLog2, f.precision, f.truncate),
			estimator.CeilToPrecision(entry.Estimate.MemoryLog2, f.precision, f.truncate),
		}
		if f.showAll {
			row = append(row, fmt.Sprintf("%v", entry.Estimate.Parameters))
		}
		t.AppendRow(row)
	}

	fmt.Println(t.Render())
}
