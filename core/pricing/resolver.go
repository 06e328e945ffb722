// Package pricing - Rate card resolution
package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shipops/core/types"
	"shipops/internal/logging"
)

// DefaultTaxRate is used when neither the rate card nor the caller
// configuration specifies a tax rate.
var DefaultTaxRate = decimal.NewFromFloat(0.15)

// Resolver looks up rate cards by (carrier, service) and applies the
// default tax rate to cards that omit one. The default is applied here,
// at the resolution boundary, so the calculator never has to know about
// it.
type Resolver struct {
	cards          map[string]types.RateCard
	defaultTaxRate decimal.Decimal
}

// NewResolver builds a resolver over a set of rate cards. A zero
// defaultTaxRate is replaced by DefaultTaxRate; pass an explicit rate
// from configuration to override it.
func NewResolver(cards []types.RateCard, defaultTaxRate decimal.Decimal) *Resolver {
	if defaultTaxRate.IsZero() {
		defaultTaxRate = DefaultTaxRate
	}
	index := make(map[string]types.RateCard, len(cards))
	for _, card := range cards {
		key := types.NewRateKey(card.Key.Carrier, card.Key.Service)
		if _, exists := index[key.String()]; exists {
			logging.Warn("duplicate rate card, keeping the first", zap.String("key", key.String()))
			continue
		}
		card.Key = key
		index[key.String()] = card
	}
	return &Resolver{cards: index, defaultTaxRate: defaultTaxRate}
}

// Resolve returns the rate card for a (carrier, service) pair with its
// tax rate filled in. When no card matches it returns a zero-valued
// card (still carrying the default tax rate) and false, so pricing
// degrades to zero amounts instead of failing the caller's batch.
func (r *Resolver) Resolve(carrier, service string) (types.RateCard, bool) {
	key := types.NewRateKey(carrier, service)
	card, ok := r.cards[key.String()]
	if !ok {
		card = types.RateCard{Key: key}
	}
	if card.TaxRate == nil {
		tax := r.defaultTaxRate
		card.TaxRate = &tax
	}
	return card, ok
}

// Cards returns the number of rate cards known to the resolver
func (r *Resolver) Cards() int {
	return len(r.cards)
}
