// Package carriers - Normalizer registry
package carriers

import (
	"fmt"
	"sync"

	"shipops/core/label"
	"shipops/core/types"
	"shipops/internal/errors"
)

// Registry manages carrier normalizer registration
type Registry struct {
	mu          sync.RWMutex
	normalizers map[string]Normalizer
}

// NewRegistry creates a new normalizer registry
func NewRegistry() *Registry {
	return &Registry{
		normalizers: make(map[string]Normalizer),
	}
}

// Register adds a normalizer to the registry
func (r *Registry) Register(n Normalizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := CanonicalName(n.Carrier())
	if name == "" {
		return fmt.Errorf("normalizer has an empty carrier name")
	}
	if _, exists := r.normalizers[name]; exists {
		return fmt.Errorf("normalizer already registered: %s", name)
	}

	r.normalizers[name] = n
	return nil
}

// Get returns a normalizer by carrier name
func (r *Registry) Get(carrier string) (Normalizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.normalizers[CanonicalName(carrier)]
	return n, ok
}

// Carriers returns all registered carrier names
func (r *Registry) Carriers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.normalizers))
	for name := range r.normalizers {
		names = append(names, name)
	}
	return names
}

// Normalize dispatches a raw carrier response to the matching
// normalizer. An unknown carrier degrades to a no-label result with a
// best-effort tracking number; a nil response is a programmer error
// and is the only condition reported as an error.
func (r *Registry) Normalize(carrier string, resp RawResponse, shipment types.Shipment) (label.NormalizedLabel, error) {
	if resp == nil {
		return label.NormalizedLabel{}, errors.Input("carrier response must not be nil")
	}

	n, ok := r.Get(carrier)
	if !ok {
		return label.None(shipment.BestTracking()), nil
	}
	return n.Normalize(resp, shipment), nil
}

// Global default registry
var defaultRegistry = NewRegistry()

// RegisterNormalizer adds a normalizer to the default registry
func RegisterNormalizer(n Normalizer) error {
	return defaultRegistry.Register(n)
}

// Default returns the default registry
func Default() *Registry {
	return defaultRegistry
}

// Normalize dispatches against the default registry
func Normalize(carrier string, resp RawResponse, shipment types.Shipment) (label.NormalizedLabel, error) {
	return defaultRegistry.Normalize(carrier, resp, shipment)
}
