// Package types - Priced shipment types
package types

import "github.com/shopspring/decimal"

// PricedShipment is the itemized price breakdown for one shipment.
// It is computed fresh on every render or export request and never
// mutated afterwards.
type PricedShipment struct {
	// ShipmentID links back to the source shipment
	ShipmentID string `json:"shipment_id"`

	// OverweightKg is the billable overweight, in whole kilograms.
	// Partial excess kilograms round up.
	OverweightKg int64 `json:"overweight_kg"`

	// Base is the tier base price
	Base decimal.Decimal `json:"base"`

	// Profit is our margin on the tier base price
	Profit decimal.Decimal `json:"profit"`

	// OverweightCharge is the combined base+profit overweight fee
	OverweightCharge decimal.Decimal `json:"overweight_charge"`

	// CODCharge is the combined cash-on-delivery fee, zero when prepaid
	CODCharge decimal.Decimal `json:"cod_charge"`

	// RTOCharge is the combined return-to-origin fee, zero when forward
	RTOCharge decimal.Decimal `json:"rto_charge"`

	// PickupCharge is the combined pickup fee
	PickupCharge decimal.Decimal `json:"pickup_charge"`

	// PayableBase is what we owe the carrier
	PayableBase decimal.Decimal `json:"payable_base"`

	// OurProfit is our total margin
	OurProfit decimal.Decimal `json:"our_profit"`

	// Subtotal is PayableBase + OurProfit, exact
	Subtotal decimal.Decimal `json:"subtotal"`

	// VAT is Subtotal * tax rate
	VAT decimal.Decimal `json:"vat"`

	// Total is the carrier-reported override when the shipment carries
	// one, otherwise Subtotal + VAT
	Total decimal.Decimal `json:"total"`

	// Overridden reports whether Total came from a carrier override
	Overridden bool `json:"overridden,omitempty"`
}
