// Package cmd - label command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipops/adapters/shipments"
	"shipops/carriers"
	"shipops/core/label"
	"shipops/core/types"
	"shipops/internal/config"
)

var (
	labelCarrier      string
	labelResponsePath string
	labelShipmentPath string
	labelOutName      string
)

// labelCmd represents the label command
var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Normalize a carrier response and materialize its label",
	Long: `Read a raw carrier API response, normalize it into the
carrier-agnostic label shape, and materialize the label document:
inline documents are decoded and saved, remote documents are reported
as a URL to open and print.

Examples:
  shipops label --carrier smsa --response response.json --out label.pdf
  shipops label --carrier aramex --response response.json --shipment shipment.json`,
	RunE: runLabel,
}

func init() {
	labelCmd.Flags().StringVar(&labelCarrier, "carrier", "", "carrier name (required)")
	labelCmd.Flags().StringVar(&labelResponsePath, "response", "", "carrier response JSON file (required)")
	labelCmd.Flags().StringVar(&labelShipmentPath, "shipment", "", "shipment JSON file for tracking fallback")
	labelCmd.Flags().StringVar(&labelOutName, "out", "label.pdf", "filename for a saved label document")
	_ = labelCmd.MarkFlagRequired("carrier")
	_ = labelCmd.MarkFlagRequired("response")
}

func runLabel(cmd *cobra.Command, args []string) error {
	if err := registerCarriers(); err != nil {
		return err
	}

	data, err := os.ReadFile(labelResponsePath)
	if err != nil {
		return fmt.Errorf("failed to read carrier response: %w", err)
	}
	var resp carriers.RawResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("carrier response is not a JSON object: %w", err)
	}

	shipment, err := shipmentForLabel()
	if err != nil {
		return err
	}

	normalized, err := carriers.Normalize(labelCarrier, resp, shipment)
	if err != nil {
		return err
	}

	fmt.Printf("tracking: %s\n", normalized.TrackingNumber)

	exporter := label.NewExporter(config.Get().Output.LabelDirectory)
	artifact := exporter.Materialize(normalized, labelOutName)
	switch artifact.Kind {
	case label.ArtifactSavedFile:
		fmt.Printf("label saved: %s (%d bytes)\n", artifact.Path, artifact.Bytes)
	case label.ArtifactPrintURL:
		fmt.Printf("label url: %s (open to print)\n", artifact.URL)
	default:
		fmt.Printf("label unavailable: %s\n", artifact.Reason)
	}
	return nil
}

// shipmentForLabel loads the optional shipment snapshot used for
// tracking number fallback
func shipmentForLabel() (types.Shipment, error) {
	if labelShipmentPath == "" {
		return types.Shipment{}, nil
	}

	data, err := os.ReadFile(labelShipmentPath)
	if err != nil {
		return types.Shipment{}, fmt.Errorf("failed to read shipment file: %w", err)
	}
	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return types.Shipment{}, fmt.Errorf("shipment file is not a JSON object: %w", err)
	}
	return shipments.FromRecord(record), nil
}
