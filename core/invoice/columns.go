// Package invoice - Export column projection
package invoice

import (
	"strconv"
	"time"
)

// Columns is the declared export column order. The spreadsheet writer
// depends on this order; changing it is a breaking change.
var Columns = []string{
	"Tracking ID",
	"Sender",
	"Receiver",
	"Sender Email",
	"Receiver Email",
	"Carrier",
	"Payment Method",
	"Status",
	"Boxes",
	"Weight (kg)",
	"Date",
	"Total",
	"Base",
	"Profit",
	"Overweight Charge",
	"COD Charge",
	"RTO Charge",
	"Pickup Charge",
	"Subtotal",
	"VAT",
}

// Values projects a row into Columns order
func (r Row) Values() []string {
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format(time.RFC3339)
	}
	return []string{
		r.TrackingID,
		r.Sender,
		r.Receiver,
		r.SenderEmail,
		r.ReceiverEmail,
		r.Carrier,
		r.PaymentMethod,
		r.Status,
		strconv.Itoa(r.Boxes),
		r.Weight.String(),
		date,
		r.Total.String(),
		r.Base.String(),
		r.Profit.String(),
		r.OverweightCharge.String(),
		r.CODCharge.String(),
		r.RTOCharge.String(),
		r.PickupCharge.String(),
		r.Subtotal.String(),
		r.VAT.String(),
	}
}
