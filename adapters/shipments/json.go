// Package shipments loads shipment snapshots from JSON files.
//
// Records arrive loosely typed: exports from the console frequently
// carry numeric fields as strings, nulls, or nothing at all. Every
// numeric field is coerced through the shared safe-numeric helper so a
// partially populated record degrades to zero-valued fields instead of
// failing the whole file.
package shipments

import (
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"

	"shipops/core/types"
	"shipops/internal/errors"
	"shipops/internal/logging"
)

// Load reads a JSON array of shipment records
func Load(path string) ([]types.Shipment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "shipment file is not readable", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Parsing("shipment file is not a JSON array", err)
	}

	shipments := make([]types.Shipment, 0, len(records))
	for _, record := range records {
		shipments = append(shipments, FromRecord(record))
	}

	logging.Info("shipments loaded",
		zap.Int("shipments", len(shipments)), zap.String("path", path))
	return shipments, nil
}

// FromRecord maps one loosely-typed record to a shipment snapshot
func FromRecord(record map[string]interface{}) types.Shipment {
	s := types.Shipment{
		ID:             types.SafeString(record["id"]),
		Carrier:        types.SafeString(record["carrier"]),
		ServiceType:    types.SafeString(record["service_type"]),
		Weight:         types.SafeDecimal(record["weight"]),
		PaymentMethod:  types.ParsePaymentMethod(types.SafeString(record["payment_method"])),
		Direction:      types.ParseDirection(types.SafeString(record["direction"])),
		TrackingNumber: types.SafeString(record["tracking_number"]),
		Status:         types.SafeString(record["status"]),
		Boxes:          types.SafeInt(record["boxes"]),
		Sender:         types.SafeString(record["sender"]),
		Receiver:       types.SafeString(record["receiver"]),
		SenderEmail:    types.SafeString(record["sender_email"]),
		ReceiverEmail:  types.SafeString(record["receiver_email"]),
	}

	// A present override always wins over the computed total, even
	// when it coerces to zero. An absent or null field leaves the
	// computed total in charge.
	if raw, ok := record["total_override"]; ok && raw != nil {
		override := types.SafeDecimal(raw)
		s.TotalOverride = &override
	}

	if created := types.SafeString(record["created_at"]); created != "" {
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			s.CreatedAt = t
		}
	}

	return s
}
