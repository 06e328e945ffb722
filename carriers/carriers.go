// Package carriers provides the carrier normalization plugin system.
// Carriers are modular plugins that can be added without modifying core:
// each one declares where its label document and tracking number live in
// its own response shape, and the registry dispatches by carrier name.
package carriers

import (
	"strings"

	"shipops/core/label"
	"shipops/core/types"
)

// RawResponse is a decoded carrier API payload. Carriers use their own
// field names and nesting; no common schema is assumed.
type RawResponse map[string]interface{}

// Normalizer converts one carrier's response shape into the
// carrier-agnostic label representation
type Normalizer interface {
	// Carrier returns the carrier name this normalizer handles
	Carrier() string

	// Normalize maps a raw response and the shipment it belongs to
	// into a normalized label. It must not fail on missing fields:
	// an absent label document means "no label yet", not an error.
	Normalize(resp RawResponse, shipment types.Shipment) label.NormalizedLabel
}

// CanonicalName normalizes a carrier name for dispatch: trimmed and
// case-insensitive.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveTracking picks the first non-empty tracking candidate,
// falling back to the shipment's own tracking number and finally its
// identifier.
func ResolveTracking(shipment types.Shipment, candidates ...string) string {
	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return shipment.BestTracking()
}

// Lookup walks a dotted path ("data.label_url") through a raw response
// and returns the string at the end, or "" when any step is missing or
// not the expected shape.
func Lookup(resp RawResponse, path string) string {
	if resp == nil || path == "" {
		return ""
	}
	var current interface{} = map[string]interface{}(resp)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return ""
		}
		current, ok = m[part]
		if !ok {
			return ""
		}
	}
	return types.SafeString(current)
}
