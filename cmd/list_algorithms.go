package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crypto-estimators/estimator/estimator"
)

var listAlgorithmsCmd = &cobra.Command{
	Use:   "list-algorithms [family]",
	Short: "List every registered algorithm, optionally for one family/scheme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return printFamilyAlgorithms(args[0])
		}
		for _, name := range familyNames() {
			if err := printFamilyAlgorithms(name); err != nil {
				return err
			}
		}
		return nil
	},
}

func printFamilyAlgorithms(name string) error {
	_, familyID, err := lookupFamily(name)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s):\n", name, familyID)
	for _, model := range estimator.AlgorithmsForFamily(familyID) {
		fmt.Printf("  %-28s %s\n", model.ID(), model.DisplayName())
	}
	return nil
}
