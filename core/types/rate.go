// Package types - Rate card types
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateKey uniquely identifies a rate card
type RateKey struct {
	// Carrier is the shipping carrier
	Carrier string `json:"carrier"`

	// Service is the carrier service tier
	Service string `json:"service"`
}

// NewRateKey builds a normalized rate key. Carrier and service names
// are matched case-insensitively and ignoring surrounding whitespace.
func NewRateKey(carrier, service string) RateKey {
	return RateKey{
		Carrier: strings.ToLower(strings.TrimSpace(carrier)),
		Service: strings.ToLower(strings.TrimSpace(service)),
	}
}

// String returns a string representation for lookup
func (k RateKey) String() string {
	return k.Carrier + "/" + k.Service
}

// RateCard is the fee schedule for one (carrier, service) pair.
// All monetary fields are non-negative amounts in the card currency.
type RateCard struct {
	// Key identifies what this card applies to
	Key RateKey `json:"key"`

	// Base is the carrier base price for the tier
	Base decimal.Decimal `json:"base"`

	// Profit is our margin on top of the base price
	Profit decimal.Decimal `json:"profit"`

	// MaxWeight is the tier weight ceiling in kg. Zero means the tier
	// has no weight ceiling and overweight fees never apply.
	MaxWeight decimal.Decimal `json:"max_weight"`

	// AdditionalKgBase and AdditionalKgProfit are charged per
	// overweight kilogram
	AdditionalKgBase   decimal.Decimal `json:"additional_kg_base"`
	AdditionalKgProfit decimal.Decimal `json:"additional_kg_profit"`

	// CODBase and CODProfit apply to cash-on-delivery shipments
	CODBase   decimal.Decimal `json:"cod_base"`
	CODProfit decimal.Decimal `json:"cod_profit"`

	// RTOBase and RTOProfit apply to reverse (return-to-origin) shipments
	RTOBase   decimal.Decimal `json:"rto_base"`
	RTOProfit decimal.Decimal `json:"rto_profit"`

	// PickupBase and PickupProfit apply to every shipment
	PickupBase   decimal.Decimal `json:"pickup_base"`
	PickupProfit decimal.Decimal `json:"pickup_profit"`

	// TaxRate is the VAT fraction in [0,1]. Nil means the card does not
	// specify one and the resolver substitutes the configured default.
	TaxRate *decimal.Decimal `json:"tax_rate,omitempty"`
}

// Validate checks the card invariants: monetary fields are non-negative
// and the tax rate, when set, is a fraction in [0,1].
func (c RateCard) Validate() error {
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"base", c.Base},
		{"profit", c.Profit},
		{"max_weight", c.MaxWeight},
		{"additional_kg_base", c.AdditionalKgBase},
		{"additional_kg_profit", c.AdditionalKgProfit},
		{"cod_base", c.CODBase},
		{"cod_profit", c.CODProfit},
		{"rto_base", c.RTOBase},
		{"rto_profit", c.RTOProfit},
		{"pickup_base", c.PickupBase},
		{"pickup_profit", c.PickupProfit},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("rate card %s: %s must not be negative, got %s", c.Key, a.name, a.value)
		}
	}
	if c.TaxRate != nil {
		if c.TaxRate.IsNegative() || c.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("rate card %s: tax_rate must be a fraction in [0,1], got %s", c.Key, c.TaxRate)
		}
	}
	return nil
}
