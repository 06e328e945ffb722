// Package omniclama normalizes OmniClama responses. OmniClama hosts
// the label document by URL under a "label" envelope.
package omniclama

import (
	"shipops/carriers"
	"shipops/core/label"
)

// Name is the carrier name used for dispatch
const Name = "omniclama"

// New creates the OmniClama normalizer
func New() carriers.Normalizer {
	return carriers.FromDescriptor(carriers.Descriptor{
		Name:         Name,
		LabelKind:    label.KindRemoteURL,
		LabelPath:    "label.url",
		TrackingPath: "tracking_code",
	})
}

// Register adds the OmniClama normalizer to a registry
func Register(r *carriers.Registry) error {
	return r.Register(New())
}
