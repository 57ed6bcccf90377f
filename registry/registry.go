// Package registry implements an in-memory registry of capability
// descriptors, keyed by kind.
package registry

import (
	"fmt"
	"sync"

	"github.com/assetbridge/lockcheck/capability"
)

// Registry implements DescriptorRegistry using in-memory storage.
type Registry struct {
	descriptors map[capability.Kind]*capability.Descriptor
	mu          sync.RWMutex
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithoutBuiltins skips registration of the built-in manager, logger and
// UI-delegate descriptors.
func WithoutBuiltins() RegistryOption {
	return func(r *Registry) {
		r.descriptors = make(map[capability.Kind]*capability.Descriptor)
	}
}

// NewRegistry creates a descriptor registry. Unless WithoutBuiltins is given,
// the built-in descriptors for all supported kinds are pre-registered.
func NewRegistry(opts ...RegistryOption) DescriptorRegistry {
	r := &Registry{
		descriptors: map[capability.Kind]*capability.Descriptor{
			capability.KindManager:    capability.ManagerDescriptor(),
			capability.KindLogger:     capability.LoggerDescriptor(),
			capability.KindUIDelegate: capability.UIDelegateDescriptor(),
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a descriptor for its kind.
func (r *Registry) Register(desc *capability.Descriptor) error {
	if desc == nil || desc.Kind == "" {
		return fmt.Errorf("descriptor must have a kind")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[desc.Kind]; exists {
		return fmt.Errorf("capability kind already registered: %s", desc.Kind)
	}
	r.descriptors[desc.Kind] = desc
	return nil
}

// Descriptor returns the descriptor for a kind.
func (r *Registry) Descriptor(kind capability.Kind) (*capability.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[kind]
	return d, ok
}

// DescriptorSatisfying returns the descriptor for a kind only if its revision
// meets the given semver constraint.
func (r *Registry) DescriptorSatisfying(kind capability.Kind, constraint string) (*capability.Descriptor, error) {
	d, ok := r.Descriptor(kind)
	if !ok {
		return nil, fmt.Errorf("capability kind not registered: %s", kind)
	}

	ok, err := d.Satisfies(constraint)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("descriptor %s@%s does not satisfy constraint %q", kind, d.Version, constraint)
	}
	return d, nil
}

// Kinds returns all registered capability kinds.
func (r *Registry) Kinds() []capability.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]capability.Kind, 0, len(r.descriptors))
	for k := range r.descriptors {
		kinds = append(kinds, k)
	}
	return kinds
}
