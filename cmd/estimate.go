package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// estimateCmd is the parent of one subcommand per family/scheme
// ("estimate sd", "estimate mq", "estimate le", …) plus "estimate batch".
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the bit-complexity of attacks against a problem instance",
}

func init() {
	for _, name := range familyNames() {
		estimateCmd.AddCommand(newEstimateSubcommand(name))
	}
	estimateCmd.AddCommand(batchCmd)
}

// intFlagsFor lists the integer parameter flags each family/scheme's
// Parameters struct exposes, matching cmd/families.go's build* functions.
var intFlagsFor = map[string][]string{
	"sd":      {"n", "k", "w"},
	"mq":      {"n", "m", "q"},
	"le":      {"n", "k", "q"},
	"pe":      {"n", "k", "q"},
	"pk":      {"n", "k", "q"},
	"minrank": {"n", "m", "k", "r", "q"},
	"rsd":     {"n", "k", "w", "blocks"},
	"ranksd":  {"n", "k", "r", "q", "m"},
	"bike":    {"r", "w", "t"},
	"mayo":    {"n", "m", "o", "k", "q"},
	"uov":     {"n", "m", "q"},
}

// innerExcludableFamilies are the families that wrap an internal
// problems/sd estimator and therefore expose --exclude-inner, so a
// caller can filter the embedded SD attack independently of the outer
// family's own exclusion list (see DESIGN.md decision 1).
var innerExcludableFamilies = map[string]bool{"le": true, "pe": true, "pk": true}

// newEstimateSubcommand builds the `estimate <name>` subcommand: one int
// flag per Parameters field, --exclude (and --exclude-inner where
// applicable), and the shared display flags.
func newEstimateSubcommand(name string) *cobra.Command {
	intFlagNames := intFlagsFor[name]
	values := make([]int, len(intFlagNames))
	var excluded []string
	var innerExcluded []string
	var df displayFlags

	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Estimate attack cost for a %s instance", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make(map[string]int, len(intFlagNames))
			for i, flagName := range intFlagNames {
				params[flagName] = values[i]
			}
			builder, _, err := lookupFamily(name)
			if err != nil {
				return err
			}
			e, err := builder(params, excluded, innerExcluded)
			if err != nil {
				return err
			}
			return runEstimate(e, df)
		},
	}

	for i, flagName := range intFlagNames {
		cmd.Flags().IntVar(&values[i], flagName, 0, fmt.Sprintf("%s parameter", flagName))
	}
	cmd.Flags().StringSliceVar(&excluded, "exclude", nil, "algorithm IDs to exclude from the report")
	if innerExcludableFamilies[name] {
		cmd.Flags().StringSliceVar(&innerExcluded, "exclude-inner", nil, "inner SD algorithm IDs to exclude")
	}
	bindDisplayFlags(cmd, &df)
	return cmd
}
