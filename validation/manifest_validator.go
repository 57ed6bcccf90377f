// Package validation checks capability descriptor manifests against the
// published schema, and checks Go values against the descriptors themselves.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// manifestSchema is the schema every descriptor manifest must satisfy.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["kind", "version", "operations"],
  "additionalProperties": false,
  "properties": {
    "kind": {
      "type": "string",
      "enum": ["manager", "logger", "uiDelegate"]
    },
    "version": {
      "type": "string",
      "pattern": "^[0-9]+\\.[0-9]+\\.[0-9]+(-[0-9A-Za-z.-]+)?(\\+[0-9A-Za-z.-]+)?$"
    },
    "operations": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "params", "results"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "params": {"type": "array", "items": {"type": "string"}},
          "results": {"type": "array", "minItems": 1, "items": {"type": "string"}}
        }
      }
    }
  }
}`

// SchemaManifestValidator implements ManifestValidator using a compiled JSON
// Schema.
type SchemaManifestValidator struct {
	schema *jsonschema.Schema
}

// NewManifestValidator creates a validator with the built-in manifest schema.
func NewManifestValidator() *SchemaManifestValidator {
	return &SchemaManifestValidator{
		schema: jsonschema.MustCompileString("descriptor-manifest.schema.json", manifestSchema),
	}
}

// ValidateJSON checks a JSON manifest document.
func (v *SchemaManifestValidator) ValidateJSON(data []byte) (*ValidationResult, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest is not valid JSON: %w", err)
	}
	return v.validate(doc), nil
}

// ValidateYAML checks a YAML manifest document.
func (v *SchemaManifestValidator) ValidateYAML(data []byte) (*ValidationResult, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest is not valid YAML: %w", err)
	}
	return v.validate(doc), nil
}

func (v *SchemaManifestValidator) validate(doc any) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := v.schema.Validate(doc); err != nil {
		result.Valid = false
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			collectCauses(verr, result)
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// collectCauses flattens a validation error tree into leaf messages.
func collectCauses(err *jsonschema.ValidationError, result *ValidationResult) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectCauses(cause, result)
	}
}
