// Package types - Money and coercion helpers
package types

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencySAR Currency = "SAR"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// SafeDecimal coerces an arbitrary decoded value to a decimal amount.
// Missing, malformed, or non-numeric values become zero so that one bad
// field in a record degrades that field instead of failing the record.
func SafeDecimal(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case float32:
		return SafeDecimal(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		return SafeDecimal(n.String())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// SafeString coerces an arbitrary decoded value to a trimmed string,
// returning "" for anything that is not a string.
func SafeString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// SafeInt coerces an arbitrary decoded value to an int, zero on failure
func SafeInt(v interface{}) int {
	return int(SafeDecimal(v).IntPart())
}
