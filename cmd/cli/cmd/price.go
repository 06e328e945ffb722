// Package cmd - price command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"shipops/adapters/rates"
	"shipops/adapters/shipments"
	"shipops/core/pricing"
	"shipops/internal/config"
)

var (
	priceRatesPath     string
	priceShipmentsPath string
	priceJSON          bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Print itemized price breakdowns for shipments",
	Long: `Compute the itemized price breakdown for each shipment in the
input file against its (carrier, service) rate card.

Examples:
  shipops price --rates rates.hcl --shipments shipments.json
  shipops price --rates rates.hcl --shipments shipments.json --json`,
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVar(&priceRatesPath, "rates", "", "rate card file or directory (required)")
	priceCmd.Flags().StringVar(&priceShipmentsPath, "shipments", "", "shipments JSON file (required)")
	priceCmd.Flags().BoolVar(&priceJSON, "json", false, "emit JSON instead of text")
	_ = priceCmd.MarkFlagRequired("rates")
	_ = priceCmd.MarkFlagRequired("shipments")
}

func runPrice(cmd *cobra.Command, args []string) error {
	cards, err := rates.Load(priceRatesPath)
	if err != nil {
		return err
	}
	records, err := shipments.Load(priceShipmentsPath)
	if err != nil {
		return err
	}

	defaultTax := decimal.NewFromFloat(config.Get().Pricing.DefaultTaxRate)
	resolver := pricing.NewResolver(cards, defaultTax)

	if priceJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, s := range records {
			rate, _ := resolver.Resolve(s.Carrier, s.ServiceType)
			if err := enc.Encode(pricing.ComputePrice(s, rate)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, s := range records {
		rate, matched := resolver.Resolve(s.Carrier, s.ServiceType)
		priced := pricing.ComputePrice(s, rate)

		fmt.Printf("%s  %s/%s\n", s.BestTracking(), s.Carrier, s.ServiceType)
		if !matched {
			fmt.Println("  (no rate card for this carrier/service; amounts are zero)")
		}
		if priced.OverweightKg > 0 {
			fmt.Printf("  overweight:  %d kg (%s)\n", priced.OverweightKg, priced.OverweightCharge.StringFixed(2))
		}
		if !priced.CODCharge.IsZero() {
			fmt.Printf("  cod:         %s\n", priced.CODCharge.StringFixed(2))
		}
		if !priced.RTOCharge.IsZero() {
			fmt.Printf("  rto:         %s\n", priced.RTOCharge.StringFixed(2))
		}
		if !priced.PickupCharge.IsZero() {
			fmt.Printf("  pickup:      %s\n", priced.PickupCharge.StringFixed(2))
		}
		fmt.Printf("  subtotal:    %s\n", priced.Subtotal.StringFixed(2))
		fmt.Printf("  vat:         %s\n", priced.VAT.StringFixed(2))
		if priced.Overridden {
			fmt.Printf("  total:       %s (carrier-reported)\n", priced.Total.StringFixed(2))
		} else {
			fmt.Printf("  total:       %s\n", priced.Total.StringFixed(2))
		}
	}
	return nil
}
