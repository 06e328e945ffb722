// Package smsa normalizes SMSA Express responses. SMSA embeds the
// label document directly in the response as a base64 PDF.
package smsa

import (
	"shipops/carriers"
	"shipops/core/label"
	"shipops/core/types"
)

// Name is the carrier name used for dispatch
const Name = "smsa"

type normalizer struct{}

// New creates the SMSA normalizer
func New() carriers.Normalizer {
	return normalizer{}
}

// Register adds the SMSA normalizer to a registry
func Register(r *carriers.Registry) error {
	return r.Register(New())
}

func (normalizer) Carrier() string {
	return Name
}

// Normalize reads the inline base64 label. Older SMSA responses carry
// the document under "awb_pdf" instead of "label"; both are honored.
func (normalizer) Normalize(resp carriers.RawResponse, shipment types.Shipment) label.NormalizedLabel {
	tracking := carriers.ResolveTracking(shipment, carriers.Lookup(resp, "sawb"))

	payload := carriers.Lookup(resp, "label")
	if payload == "" {
		payload = carriers.Lookup(resp, "awb_pdf")
	}
	if payload == "" {
		return label.None(tracking)
	}

	return label.NormalizedLabel{
		Kind:           label.KindInlineBinary,
		Payload:        payload,
		TrackingNumber: tracking,
	}
}
