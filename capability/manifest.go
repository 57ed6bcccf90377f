package capability

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Manifest is the serialized form of a Descriptor, as published by the
// binding layer under test.
type Manifest struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Version    string      `json:"version" yaml:"version"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

// Descriptor converts the manifest into a Descriptor, parsing its version.
func (m *Manifest) Descriptor() (*Descriptor, error) {
	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor version %q: %w", m.Version, err)
	}
	return &Descriptor{
		Kind:       Kind(m.Kind),
		Version:    v,
		Operations: m.Operations,
	}, nil
}
