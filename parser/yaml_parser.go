// Package parser provides functionality for parsing capability descriptor
// manifests.
package parser

import (
	"github.com/goccy/go-yaml"

	"github.com/assetbridge/lockcheck/capability"
)

// YamlManifestParser implements ManifestParser for YAML.
type YamlManifestParser struct{}

// NewYamlManifestParser creates a new YamlManifestParser.
func NewYamlManifestParser() ManifestParser {
	return &YamlManifestParser{}
}

// Parse unmarshals YAML bytes into a Manifest struct.
func (p *YamlManifestParser) Parse(data []byte) (*capability.Manifest, error) {
	var manifest capability.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
