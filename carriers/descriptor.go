// Package carriers - Descriptor-backed normalizers
package carriers

import (
	"shipops/core/label"
	"shipops/core/types"
)

// Descriptor declares where one carrier keeps its label document and
// tracking number inside its own response shape. Most carriers need
// nothing more than a descriptor; a carrier with genuinely bespoke
// behavior can implement Normalizer directly instead.
type Descriptor struct {
	// Name is the carrier name used for dispatch
	Name string

	// LabelKind is how the label document is carried
	LabelKind label.Kind

	// LabelPath is the dotted path to the label document
	LabelPath string

	// TrackingPath is the dotted path to the carrier's tracking number
	TrackingPath string
}

// FromDescriptor builds a Normalizer from a carrier descriptor
func FromDescriptor(d Descriptor) Normalizer {
	return descriptorNormalizer{d: d}
}

type descriptorNormalizer struct {
	d Descriptor
}

func (n descriptorNormalizer) Carrier() string {
	return n.d.Name
}

func (n descriptorNormalizer) Normalize(resp RawResponse, shipment types.Shipment) label.NormalizedLabel {
	tracking := ResolveTracking(shipment, Lookup(resp, n.d.TrackingPath))

	payload := Lookup(resp, n.d.LabelPath)
	if payload == "" {
		// The carrier knows the shipment but has not produced a label
		// document yet.
		return label.None(tracking)
	}

	return label.NormalizedLabel{
		Kind:           n.d.LabelKind,
		Payload:        payload,
		TrackingNumber: tracking,
	}
}
