package registry

import "github.com/assetbridge/lockcheck/capability"

// DescriptorRegistry manages capability descriptors by kind.
type DescriptorRegistry interface {
	// Register adds a descriptor for its kind. Registering a kind twice is
	// an error.
	Register(desc *capability.Descriptor) error

	// Descriptor returns the descriptor for a kind.
	Descriptor(kind capability.Kind) (*capability.Descriptor, bool)

	// DescriptorSatisfying returns the descriptor for a kind only if its
	// revision meets the given semver constraint.
	DescriptorSatisfying(kind capability.Kind, constraint string) (*capability.Descriptor, error)

	// Kinds returns all registered capability kinds.
	Kinds() []capability.Kind
}
