// Package cmd - rates command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipops/adapters/rates"
)

// ratesCmd groups rate card management commands
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Manage rate cards",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// ratesValidateCmd checks rate card files without pricing anything
var ratesValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate rate card files",
	Long: `Parse rate card files and check their invariants: monetary
fields must be non-negative and tax rates must be fractions in [0,1].`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := rates.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d rate cards OK\n", len(cards))
		for _, card := range cards {
			fmt.Printf("  %s\n", card.Key)
		}
		return nil
	},
}

func init() {
	ratesCmd.AddCommand(ratesValidateCmd)
}
