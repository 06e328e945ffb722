// Package pricing - Calculator tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"shipops/core/types"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// expressCard is the worked scenario card: base 20, profit 5, tier at
// 10kg, 2+1 per extra kg, 15% VAT.
func expressCard() types.RateCard {
	return types.RateCard{
		Key:                types.NewRateKey("smsa", "express"),
		Base:               d("20"),
		Profit:             d("5"),
		MaxWeight:          d("10"),
		AdditionalKgBase:   d("2"),
		AdditionalKgProfit: d("1"),
		TaxRate:            dp("0.15"),
	}
}

func TestComputePriceWorkedScenario(t *testing.T) {
	s := types.Shipment{ID: "SHP-1", Weight: d("12")}
	priced := ComputePrice(s, expressCard())

	if priced.OverweightKg != 2 {
		t.Errorf("expected 2 overweight kg, got %d", priced.OverweightKg)
	}
	if !priced.PayableBase.Equal(d("24")) {
		t.Errorf("expected payable base 24, got %s", priced.PayableBase)
	}
	if !priced.OurProfit.Equal(d("7")) {
		t.Errorf("expected profit 7, got %s", priced.OurProfit)
	}
	if !priced.Subtotal.Equal(d("31")) {
		t.Errorf("expected subtotal 31, got %s", priced.Subtotal)
	}
	if !priced.VAT.Equal(d("4.65")) {
		t.Errorf("expected vat 4.65, got %s", priced.VAT)
	}
	if !priced.Total.Equal(d("35.65")) {
		t.Errorf("expected total 35.65, got %s", priced.Total)
	}
}

func TestOverweightRoundsPartialKilogramsUp(t *testing.T) {
	// Billing policy: any fractional excess counts as a full extra
	// kilogram. 10.2kg over a 10kg tier bills one kilogram, not 0.2.
	cases := []struct {
		weight string
		want   int64
	}{
		{"10", 0},
		{"10.0001", 1},
		{"10.2", 1},
		{"11", 1},
		{"11.01", 2},
		{"12", 2},
		{"9.99", 0},
		{"0", 0},
		{"-3", 0},
	}
	card := expressCard()
	for _, tc := range cases {
		priced := ComputePrice(types.Shipment{Weight: d(tc.weight)}, card)
		if priced.OverweightKg != tc.want {
			t.Errorf("weight %s: expected %d overweight kg, got %d", tc.weight, tc.want, priced.OverweightKg)
		}
	}
}

func TestNoTierMatchMeansNoOverweight(t *testing.T) {
	card := expressCard()
	card.MaxWeight = decimal.Zero

	priced := ComputePrice(types.Shipment{Weight: d("500")}, card)
	if priced.OverweightKg != 0 {
		t.Errorf("expected no overweight without a weight tier, got %d kg", priced.OverweightKg)
	}
	if !priced.OverweightCharge.IsZero() {
		t.Errorf("expected zero overweight charge, got %s", priced.OverweightCharge)
	}
}

func TestCODAndRTOFeesApplyByShipmentFlags(t *testing.T) {
	card := expressCard()
	card.CODBase = d("3")
	card.CODProfit = d("2")
	card.RTOBase = d("4")
	card.RTOProfit = d("1")

	prepaid := ComputePrice(types.Shipment{Weight: d("5")}, card)
	if !prepaid.CODCharge.IsZero() || !prepaid.RTOCharge.IsZero() {
		t.Errorf("prepaid forward shipment should carry no COD/RTO fees, got %s/%s",
			prepaid.CODCharge, prepaid.RTOCharge)
	}

	cod := ComputePrice(types.Shipment{Weight: d("5"), PaymentMethod: types.PaymentCOD}, card)
	if !cod.CODCharge.Equal(d("5")) {
		t.Errorf("expected COD charge 5, got %s", cod.CODCharge)
	}
	if !cod.Subtotal.Equal(d("30")) {
		t.Errorf("expected COD subtotal 30, got %s", cod.Subtotal)
	}

	rto := ComputePrice(types.Shipment{Weight: d("5"), Direction: types.DirectionReverse}, card)
	if !rto.RTOCharge.Equal(d("5")) {
		t.Errorf("expected RTO charge 5, got %s", rto.RTOCharge)
	}
}

func TestPickupFeesAlwaysApply(t *testing.T) {
	card := expressCard()
	card.PickupBase = d("1.5")
	card.PickupProfit = d("0.5")

	priced := ComputePrice(types.Shipment{Weight: d("5")}, card)
	if !priced.PickupCharge.Equal(d("2")) {
		t.Errorf("expected pickup charge 2, got %s", priced.PickupCharge)
	}
	if !priced.Subtotal.Equal(d("27")) {
		t.Errorf("expected subtotal 27, got %s", priced.Subtotal)
	}
}

func TestSubtotalIsExactSumOfComponents(t *testing.T) {
	card := expressCard()
	card.CODBase = d("0.1")
	card.CODProfit = d("0.2")
	card.PickupBase = d("0.3")

	priced := ComputePrice(types.Shipment{Weight: d("10.5"), PaymentMethod: types.PaymentCOD}, card)
	if !priced.Subtotal.Equal(priced.PayableBase.Add(priced.OurProfit)) {
		t.Errorf("subtotal %s != payable base %s + profit %s",
			priced.Subtotal, priced.PayableBase, priced.OurProfit)
	}
}

func TestCarrierReportedTotalOverrideWins(t *testing.T) {
	s := types.Shipment{ID: "SHP-2", Weight: d("12"), TotalOverride: dp("99.99")}
	priced := ComputePrice(s, expressCard())

	if !priced.Total.Equal(d("99.99")) {
		t.Errorf("expected carrier-reported total 99.99 to win, got %s", priced.Total)
	}
	if !priced.Overridden {
		t.Error("expected the breakdown to be flagged as overridden")
	}
	// The computed figures stay available as a display aid.
	if !priced.Subtotal.Equal(d("31")) {
		t.Errorf("expected computed subtotal 31 alongside the override, got %s", priced.Subtotal)
	}
}

func TestNilTaxRateDegradesToZeroVAT(t *testing.T) {
	// The resolver fills the default tax rate; a card that bypassed it
	// prices with zero VAT rather than failing.
	card := expressCard()
	card.TaxRate = nil

	priced := ComputePrice(types.Shipment{Weight: d("5")}, card)
	if !priced.VAT.IsZero() {
		t.Errorf("expected zero vat without a tax rate, got %s", priced.VAT)
	}
	if !priced.Total.Equal(priced.Subtotal) {
		t.Errorf("expected total to equal subtotal, got %s vs %s", priced.Total, priced.Subtotal)
	}
}

func TestZeroValuedCardPricesToZero(t *testing.T) {
	// A shipment with no matching rate card degrades to a zero-valued
	// breakdown so a table of hundreds of rows still renders.
	priced := ComputePrice(types.Shipment{ID: "SHP-3", Weight: d("42")}, types.RateCard{})
	if !priced.Total.IsZero() {
		t.Errorf("expected zero total for a zero-valued card, got %s", priced.Total)
	}
}
