// Package invoice folds priced shipments into export rows and summary
// statistics for the spreadsheet-export path.
package invoice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shipops/core/pricing"
	"shipops/core/types"
)

// RateLookup resolves the rate card for a (carrier, service) pair.
// *pricing.Resolver satisfies it.
type RateLookup interface {
	Resolve(carrier, service string) (types.RateCard, bool)
}

// Row is one export row. Its column projection order is fixed by
// Columns and must match what the spreadsheet writer expects.
type Row struct {
	TrackingID       string          `json:"tracking_id"`
	Sender           string          `json:"sender"`
	Receiver         string          `json:"receiver"`
	SenderEmail      string          `json:"sender_email"`
	ReceiverEmail    string          `json:"receiver_email"`
	Carrier          string          `json:"carrier"`
	PaymentMethod    string          `json:"payment_method"`
	Status           string          `json:"status"`
	Boxes            int             `json:"boxes"`
	Weight           decimal.Decimal `json:"weight"`
	Date             time.Time       `json:"date"`
	Total            decimal.Decimal `json:"total"`
	Base             decimal.Decimal `json:"base"`
	Profit           decimal.Decimal `json:"profit"`
	OverweightCharge decimal.Decimal `json:"overweight_charge"`
	CODCharge        decimal.Decimal `json:"cod_charge"`
	RTOCharge        decimal.Decimal `json:"rto_charge"`
	PickupCharge     decimal.Decimal `json:"pickup_charge"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	VAT              decimal.Decimal `json:"vat"`
}

// Totals summarizes an aggregated report
type Totals struct {
	// Shipments is the row count
	Shipments int `json:"shipments"`

	// Revenue is the sum of every row's Total
	Revenue decimal.Decimal `json:"revenue"`

	// Delivered counts rows with a delivered status
	Delivered int `json:"delivered"`

	// InTransit counts rows with an in-transit or ready status
	InTransit int `json:"in_transit"`
}

// Report is the aggregation output
type Report struct {
	Rows   []Row  `json:"rows"`
	Totals Totals `json:"totals"`
}

// Aggregate prices every shipment against its resolved rate card and
// projects the fixed export columns. Row totals and the summed revenue
// use the same PricedShipment.Total, so the aggregate always matches
// the per-row figures.
func Aggregate(shipments []types.Shipment, rates RateLookup) *Report {
	report := &Report{
		Rows:   make([]Row, 0, len(shipments)),
		Totals: Totals{Revenue: decimal.Zero},
	}

	for _, s := range shipments {
		rate, _ := rates.Resolve(s.Carrier, s.ServiceType)
		priced := pricing.ComputePrice(s, rate)

		report.Rows = append(report.Rows, Row{
			TrackingID:       s.BestTracking(),
			Sender:           s.Sender,
			Receiver:         s.Receiver,
			SenderEmail:      s.SenderEmail,
			ReceiverEmail:    s.ReceiverEmail,
			Carrier:          s.Carrier,
			PaymentMethod:    string(types.ParsePaymentMethod(string(s.PaymentMethod))),
			Status:           s.Status,
			Boxes:            s.Boxes,
			Weight:           s.Weight,
			Date:             s.CreatedAt,
			Total:            priced.Total,
			Base:             priced.Base,
			Profit:           priced.Profit,
			OverweightCharge: priced.OverweightCharge,
			CODCharge:        priced.CODCharge,
			RTOCharge:        priced.RTOCharge,
			PickupCharge:     priced.PickupCharge,
			Subtotal:         priced.Subtotal,
			VAT:              priced.VAT,
		})

		report.Totals.Shipments++
		report.Totals.Revenue = report.Totals.Revenue.Add(priced.Total)
		switch {
		case isDelivered(s.Status):
			report.Totals.Delivered++
		case isInTransit(s.Status):
			report.Totals.InTransit++
		}
	}

	return report
}

func isDelivered(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "delivered")
}

// in-transit covers everything between pickup and delivery
var inTransitStatuses = map[string]bool{
	"in transit":       true,
	"in_transit":       true,
	"ready":            true,
	"ready for pickup": true,
	"picked up":        true,
}

func isInTransit(status string) bool {
	return inTransitStatuses[strings.ToLower(strings.TrimSpace(status))]
}
