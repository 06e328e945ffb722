// Package aramex normalizes Aramex responses. Aramex hosts the label
// document and returns a URL to it.
package aramex

import (
	"shipops/carriers"
	"shipops/core/label"
)

// Name is the carrier name used for dispatch
const Name = "aramex"

// New creates the Aramex normalizer
func New() carriers.Normalizer {
	return carriers.FromDescriptor(carriers.Descriptor{
		Name:         Name,
		LabelKind:    label.KindRemoteURL,
		LabelPath:    "label_url",
		TrackingPath: "shipment_number",
	})
}

// Register adds the Aramex normalizer to a registry
func Register(r *carriers.Registry) error {
	return r.Register(New())
}
