package validation

// ManifestValidator validates descriptor manifests against the published
// manifest schema.
type ManifestValidator interface {
	// ValidateJSON checks a JSON manifest document.
	ValidateJSON(data []byte) (*ValidationResult, error)

	// ValidateYAML checks a YAML manifest document.
	ValidateYAML(data []byte) (*ValidationResult, error)
}

// ValidationResult carries the outcome of a validation pass.
type ValidationResult struct {
	Errors []string
	Valid  bool
}
