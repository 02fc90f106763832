package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// BatchInstance is one named problem instance within a BatchSpec file.
type BatchInstance struct {
	Name          string         `yaml:"name"`
	Family        string         `yaml:"family"`
	Params        map[string]int `yaml:"params"`
	Excluded      []string       `yaml:"excluded_algorithms"`
	InnerExcluded []string       `yaml:"inner_excluded_algorithms"`
}

// BatchSpec is the YAML document loaded by `estimate batch --config`: a
// shared display config block plus a list of named instances, each
// dispatched through the same families registry the per-family
// subcommands use.
type BatchSpec struct {
	Config    batchConfig     `yaml:"config"`
	Instances []BatchInstance `yaml:"instances"`
}

// batchConfig mirrors displayFlags' fields, loaded from YAML instead of
// flags: apart from --json, the batch command has no display flags, so
// these file values are the only source of those settings.
type batchConfig struct {
	Precision      int    `yaml:"precision"`
	Truncate       bool   `yaml:"truncate"`
	ShowAll        bool   `yaml:"show_all_parameters"`
	ShowTildeO     bool   `yaml:"show_tilde_o"`
	ShowQuantum    bool   `yaml:"show_quantum"`
	MemoryAccess   string `yaml:"memory_access"`
	ComplexityType string `yaml:"complexity"`
}

func (c batchConfig) toDisplayFlags(jsonOutput bool) displayFlags {
	f := displayFlags{
		precision:      1,
		memoryAccess:   "const",
		complexityType: "estimate",
		jsonOutput:     jsonOutput,
	}
	if c.Precision != 0 {
		f.precision = c.Precision
	}
	if c.MemoryAccess != "" {
		f.memoryAccess = c.MemoryAccess
	}
	if c.ComplexityType != "" {
		f.complexityType = c.ComplexityType
	}
	f.truncate = c.Truncate
	f.showAll = c.ShowAll
	f.showTildeO = c.ShowTildeO
	f.showQuantum = c.ShowQuantum
	return f
}

var batchConfigPath string
var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Estimate several named problem instances from a YAML config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchConfigPath == "" {
			return fmt.Errorf("batch: --config is required")
		}
		raw, err := os.ReadFile(batchConfigPath)
		if err != nil {
			return fmt.Errorf("batch: reading %s: %w", batchConfigPath, err)
		}
		var spec BatchSpec
		if err := yaml.Unmarshal(raw, &spec); err != nil {
			return fmt.Errorf("batch: parsing %s: %w", batchConfigPath, err)
		}
		df := spec.Config.toDisplayFlags(batchJSON)
		for _, inst := range spec.Instances {
			builder, _, err := lookupFamily(inst.Family)
			if err != nil {
				return fmt.Errorf("batch: instance %q: %w", inst.Name, err)
			}
			e, err := builder(inst.Params, inst.Excluded, inst.InnerExcluded)
			if err != nil {
				return fmt.Errorf("batch: instance %q: %w", inst.Name, err)
			}
			logrus.Infof("estimating instance %q (%s)", inst.Name, inst.Family)
			if !batchJSON {
				fmt.Printf("=== %s (%s) ===\n", inst.Name, inst.Family)
			}
			if err := runEstimate(e, df); err != nil {
				return fmt.Errorf("batch: instance %q: %w", inst.Name, err)
			}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "path to a BatchSpec YAML file")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit each instance's report as JSON instead of a table")
}
