// Package cmd provides the CLI commands for shipops.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipops/carriers"
	"shipops/carriers/aramex"
	"shipops/carriers/omniclama"
	"shipops/carriers/redbox"
	"shipops/carriers/smsa"
	"shipops/internal/config"
	"shipops/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shipops",
	Short: "Price shipments and normalize carrier responses",
	Long: `shipops is the pricing and carrier-normalization core of a
shipping-operations console.

It prices shipments against per-carrier rate cards, aggregates invoices
for spreadsheet export, and turns heterogeneous carrier responses into
printable shipping labels.

Examples:
  shipops invoice --rates rates.hcl --shipments shipments.json --format csv
  shipops price --rates rates.hcl --shipments shipments.json
  shipops label --carrier smsa --response response.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shipops.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// registerCarriers installs the built-in carrier normalizers into the
// default registry
func registerCarriers() error {
	registrars := []func(*carriers.Registry) error{
		smsa.Register,
		aramex.Register,
		redbox.Register,
		omniclama.Register,
	}
	for _, register := range registrars {
		if err := register(carriers.Default()); err != nil {
			return fmt.Errorf("failed to register carrier: %w", err)
		}
	}
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shipops version 0.1.0")
	},
}
