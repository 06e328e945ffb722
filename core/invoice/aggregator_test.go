// Package invoice - Aggregator tests
package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"shipops/core/pricing"
	"shipops/core/types"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func testResolver() *pricing.Resolver {
	tax := d("0.15")
	return pricing.NewResolver([]types.RateCard{
		{
			Key:                types.NewRateKey("smsa", "express"),
			Base:               d("20"),
			Profit:             d("5"),
			MaxWeight:          d("10"),
			AdditionalKgBase:   d("2"),
			AdditionalKgProfit: d("1"),
			TaxRate:            &tax,
		},
		{
			Key:     types.NewRateKey("aramex", "standard"),
			Base:    d("15"),
			Profit:  d("3"),
			TaxRate: &tax,
		},
	}, decimal.Zero)
}

func testShipments() []types.Shipment {
	override := d("50")
	return []types.Shipment{
		{
			ID: "SHP-1", Carrier: "smsa", ServiceType: "express",
			Weight: d("12"), Status: "Delivered",
			TrackingNumber: "TRK-1", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "SHP-2", Carrier: "aramex", ServiceType: "standard",
			Weight: d("3"), Status: "in transit",
			TotalOverride: &override,
		},
		{
			ID: "SHP-3", Carrier: "nosuch", ServiceType: "none",
			Weight: d("1"), Status: "ready",
		},
	}
}

func TestAggregateSummedRevenueMatchesRowTotals(t *testing.T) {
	report := Aggregate(testShipments(), testResolver())

	want := decimal.Zero
	for _, row := range report.Rows {
		want = want.Add(row.Total)
	}
	if !report.Totals.Revenue.Equal(want) {
		t.Errorf("revenue %s does not equal the sum of row totals %s", report.Totals.Revenue, want)
	}

	// 35.65 (worked scenario) + 50 (override) + 0 (no rate card)
	if !report.Totals.Revenue.Equal(d("85.65")) {
		t.Errorf("expected revenue 85.65, got %s", report.Totals.Revenue)
	}
}

func TestAggregateStatusCounts(t *testing.T) {
	report := Aggregate(testShipments(), testResolver())

	if report.Totals.Shipments != 3 {
		t.Errorf("expected 3 shipments, got %d", report.Totals.Shipments)
	}
	if report.Totals.Delivered != 1 {
		t.Errorf("expected 1 delivered, got %d", report.Totals.Delivered)
	}
	if report.Totals.InTransit != 2 {
		t.Errorf("expected 2 in transit, got %d", report.Totals.InTransit)
	}
}

func TestAggregateRowProjection(t *testing.T) {
	report := Aggregate(testShipments(), testResolver())

	row := report.Rows[0]
	if row.TrackingID != "TRK-1" {
		t.Errorf("expected tracking TRK-1, got %s", row.TrackingID)
	}
	if !row.Subtotal.Equal(d("31")) || !row.VAT.Equal(d("4.65")) || !row.Total.Equal(d("35.65")) {
		t.Errorf("unexpected worked-scenario breakdown: subtotal=%s vat=%s total=%s",
			row.Subtotal, row.VAT, row.Total)
	}

	// A shipment without a tracking number falls back to its ID.
	if report.Rows[2].TrackingID != "SHP-3" {
		t.Errorf("expected ID fallback SHP-3, got %s", report.Rows[2].TrackingID)
	}
}

func TestAggregateUnknownCarrierDegradesToZeroRow(t *testing.T) {
	report := Aggregate(testShipments(), testResolver())

	row := report.Rows[2]
	if !row.Total.IsZero() {
		t.Errorf("expected zero total for an unpriced shipment, got %s", row.Total)
	}
}

func TestRowValuesMatchDeclaredColumns(t *testing.T) {
	report := Aggregate(testShipments(), testResolver())

	for _, row := range report.Rows {
		values := row.Values()
		if len(values) != len(Columns) {
			t.Fatalf("row projects %d values but %d columns are declared", len(values), len(Columns))
		}
	}

	// The spreadsheet writer depends on the declared order.
	if Columns[0] != "Tracking ID" || Columns[11] != "Total" || Columns[len(Columns)-1] != "VAT" {
		t.Errorf("column order changed: %v", Columns)
	}
}
