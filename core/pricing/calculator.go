// Package pricing computes itemized shipment prices from rate cards.
package pricing

import (
	"github.com/shopspring/decimal"

	"shipops/core/types"
)

// ComputePrice computes the itemized price breakdown for one shipment
// against its resolved rate card. Pure and deterministic: no I/O, no
// errors. Malformed inputs have already been coerced to zero by the
// loading layer, so the worst case is a zero-valued breakdown, which
// keeps a table of hundreds of shipments renderable when one record is
// bad.
func ComputePrice(s types.Shipment, rate types.RateCard) types.PricedShipment {
	overweight := overweightKg(s.Weight, rate.MaxWeight)
	ow := decimal.NewFromInt(overweight)

	payableBase := rate.Base.Add(ow.Mul(rate.AdditionalKgBase)).Add(rate.PickupBase)
	ourProfit := rate.Profit.Add(ow.Mul(rate.AdditionalKgProfit)).Add(rate.PickupProfit)

	codCharge := decimal.Zero
	if s.PaymentMethod.IsCOD() {
		payableBase = payableBase.Add(rate.CODBase)
		ourProfit = ourProfit.Add(rate.CODProfit)
		codCharge = rate.CODBase.Add(rate.CODProfit)
	}

	rtoCharge := decimal.Zero
	if s.Direction.IsReverse() {
		payableBase = payableBase.Add(rate.RTOBase)
		ourProfit = ourProfit.Add(rate.RTOProfit)
		rtoCharge = rate.RTOBase.Add(rate.RTOProfit)
	}

	subtotal := payableBase.Add(ourProfit)

	taxRate := decimal.Zero
	if rate.TaxRate != nil {
		taxRate = *rate.TaxRate
	}
	vat := subtotal.Mul(taxRate)

	total := subtotal.Add(vat)
	overridden := false
	if s.TotalOverride != nil {
		// The carrier-reported total is authoritative; the computed
		// figure is only a fallback.
		total = *s.TotalOverride
		overridden = true
	}

	return types.PricedShipment{
		ShipmentID:       s.ID,
		OverweightKg:     overweight,
		Base:             rate.Base,
		Profit:           rate.Profit,
		OverweightCharge: ow.Mul(rate.AdditionalKgBase.Add(rate.AdditionalKgProfit)),
		CODCharge:        codCharge,
		RTOCharge:        rtoCharge,
		PickupCharge:     rate.PickupBase.Add(rate.PickupProfit),
		PayableBase:      payableBase,
		OurProfit:        ourProfit,
		Subtotal:         subtotal,
		VAT:              vat,
		Total:            total,
		Overridden:       overridden,
	}
}

// overweightKg returns the billable overweight in whole kilograms.
// Any fractional excess counts as a full extra kilogram. A zero
// maxWeight means the tier has no ceiling and overweight never applies.
func overweightKg(weight, maxWeight decimal.Decimal) int64 {
	if !maxWeight.IsPositive() {
		return 0
	}
	excess := weight.Sub(maxWeight)
	if !excess.IsPositive() {
		return 0
	}
	return excess.Ceil().IntPart()
}
