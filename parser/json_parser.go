package parser

import (
	"encoding/json"

	"github.com/assetbridge/lockcheck/capability"
)

// JSONManifestParser implements ManifestParser for JSON.
type JSONManifestParser struct{}

// NewJSONManifestParser creates a new JSONManifestParser.
func NewJSONManifestParser() ManifestParser {
	return &JSONManifestParser{}
}

// Parse unmarshals JSON bytes into a Manifest struct.
func (p *JSONManifestParser) Parse(data []byte) (*capability.Manifest, error) {
	var manifest capability.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
