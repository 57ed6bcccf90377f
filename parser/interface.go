package parser

import "github.com/assetbridge/lockcheck/capability"

// ManifestParser parses raw descriptor-manifest bytes into a Manifest.
type ManifestParser interface {
	// Parse unmarshals manifest bytes into a Manifest struct.
	Parse(data []byte) (*capability.Manifest, error)
}
