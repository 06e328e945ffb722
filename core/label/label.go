// Package label defines the carrier-agnostic shipping label shape and
// materializes labels into local artifacts.
package label

// Kind identifies how a normalized label carries its document
type Kind string

const (
	// KindInlineBinary is a base64-encoded document embedded in the
	// carrier response
	KindInlineBinary Kind = "inline-binary"

	// KindRemoteURL is a document hosted by the carrier and referenced
	// by URL
	KindRemoteURL Kind = "remote-url"

	// KindNone means the carrier has not produced a label yet
	KindNone Kind = "none"
)

// NormalizedLabel is the carrier-agnostic representation of a shipping
// label and tracking pair. It is ephemeral: derived from one carrier
// response and discarded after use.
type NormalizedLabel struct {
	// Kind is how the payload should be interpreted
	Kind Kind `json:"kind"`

	// Payload is the base64 document for KindInlineBinary or the URL
	// for KindRemoteURL; empty for KindNone
	Payload string `json:"payload,omitempty"`

	// TrackingNumber is the best-effort tracking identifier. Resolved
	// even when no label document is available.
	TrackingNumber string `json:"tracking_number,omitempty"`
}

// Available reports whether the label carries a usable document
func (l NormalizedLabel) Available() bool {
	return l.Kind != KindNone && l.Payload != ""
}

// None returns a label with no document and the given tracking number
func None(trackingNumber string) NormalizedLabel {
	return NormalizedLabel{Kind: KindNone, TrackingNumber: trackingNumber}
}
