// Package cmd - invoice command
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"shipops/adapters/rates"
	"shipops/adapters/shipments"
	"shipops/core/invoice"
	"shipops/core/output"
	"shipops/core/pricing"
	"shipops/internal/config"
)

var (
	invoiceRatesPath     string
	invoiceShipmentsPath string
	invoiceFormat        string
	invoiceOutPath       string
)

// invoiceCmd represents the invoice command
var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Aggregate priced shipments into an invoice export",
	Long: `Price every shipment against its rate card and export the
invoice rows and summary totals.

CSV output uses the spreadsheet export column order.

Examples:
  shipops invoice --rates rates.hcl --shipments shipments.json
  shipops invoice --rates rates.hcl --shipments shipments.json --format csv -o invoice.csv`,
	RunE: runInvoice,
}

func init() {
	invoiceCmd.Flags().StringVar(&invoiceRatesPath, "rates", "", "rate card file or directory (required)")
	invoiceCmd.Flags().StringVar(&invoiceShipmentsPath, "shipments", "", "shipments JSON file (required)")
	invoiceCmd.Flags().StringVarP(&invoiceFormat, "format", "f", "", "output format (cli, json, csv)")
	invoiceCmd.Flags().StringVarP(&invoiceOutPath, "out", "o", "", "write output to a file instead of stdout")
	_ = invoiceCmd.MarkFlagRequired("rates")
	_ = invoiceCmd.MarkFlagRequired("shipments")
}

func runInvoice(cmd *cobra.Command, args []string) error {
	report, err := buildReport(invoiceRatesPath, invoiceShipmentsPath)
	if err != nil {
		return err
	}

	format := invoiceFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	formatter, err := output.For(format)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if invoiceOutPath != "" {
		file, err := os.Create(invoiceOutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	return formatter.Render(w, report)
}

// buildReport loads rates and shipments and aggregates them
func buildReport(ratesPath, shipmentsPath string) (*invoice.Report, error) {
	cards, err := rates.Load(ratesPath)
	if err != nil {
		return nil, err
	}

	records, err := shipments.Load(shipmentsPath)
	if err != nil {
		return nil, err
	}

	defaultTax := decimal.NewFromFloat(config.Get().Pricing.DefaultTaxRate)
	resolver := pricing.NewResolver(cards, defaultTax)
	return invoice.Aggregate(records, resolver), nil
}
