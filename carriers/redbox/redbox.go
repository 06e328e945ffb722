// Package redbox normalizes RedBox responses. RedBox nests its fields
// under a "data" envelope and hosts the label document by URL.
package redbox

import (
	"shipops/carriers"
	"shipops/core/label"
)

// Name is the carrier name used for dispatch
const Name = "redbox"

// New creates the RedBox normalizer
func New() carriers.Normalizer {
	return carriers.FromDescriptor(carriers.Descriptor{
		Name:         Name,
		LabelKind:    label.KindRemoteURL,
		LabelPath:    "data.label_url",
		TrackingPath: "data.tracking_number",
	})
}

// Register adds the RedBox normalizer to a registry
func Register(r *carriers.Registry) error {
	return r.Register(New())
}
