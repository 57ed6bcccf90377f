package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetbridge/lockcheck/capability"
	"github.com/assetbridge/lockcheck/parser"
)

const yamlManifest = `
kind: logger
version: 1.0.0
operations:
  - name: Log
    params: [context.Context, capability.Severity, string]
    results: [error]
  - name: IsSeverityLogged
    params: [context.Context, capability.Severity]
    results: [bool, error]
`

const jsonManifest = `{
  "kind": "logger",
  "version": "1.0.0",
  "operations": [
    {
      "name": "Log",
      "params": ["context.Context", "capability.Severity", "string"],
      "results": ["error"]
    },
    {
      "name": "IsSeverityLogged",
      "params": ["context.Context", "capability.Severity"],
      "results": ["bool", "error"]
    }
  ]
}`

func Test_YamlManifestParser_Parse(t *testing.T) {
	p := parser.NewYamlManifestParser()

	manifest, err := p.Parse([]byte(yamlManifest))
	require.NoError(t, err)

	assert.Equal(t, "logger", manifest.Kind)
	assert.Equal(t, "1.0.0", manifest.Version)
	require.Len(t, manifest.Operations, 2)
	assert.Equal(t, "Log", manifest.Operations[0].Name)
	assert.Equal(t, []string{"context.Context", "capability.Severity", "string"}, manifest.Operations[0].Params)
}

func Test_YamlManifestParser_InvalidInput(t *testing.T) {
	p := parser.NewYamlManifestParser()

	_, err := p.Parse([]byte("kind: [unclosed"))
	assert.Error(t, err)
}

func Test_JSONManifestParser_Parse(t *testing.T) {
	p := parser.NewJSONManifestParser()

	manifest, err := p.Parse([]byte(jsonManifest))
	require.NoError(t, err)

	assert.Equal(t, "logger", manifest.Kind)
	require.Len(t, manifest.Operations, 2)
	assert.Equal(t, "IsSeverityLogged", manifest.Operations[1].Name)
}

func Test_JSONManifestParser_InvalidInput(t *testing.T) {
	p := parser.NewJSONManifestParser()

	_, err := p.Parse([]byte("{"))
	assert.Error(t, err)
}

// Both codecs must agree on the resulting descriptor, and the parsed
// manifest must match the compiled-in revision.
func Test_ManifestParsers_AgreeWithBuiltinDescriptor(t *testing.T) {
	fromYaml, err := parser.NewYamlManifestParser().Parse([]byte(yamlManifest))
	require.NoError(t, err)
	fromJSON, err := parser.NewJSONManifestParser().Parse([]byte(jsonManifest))
	require.NoError(t, err)

	assert.Equal(t, fromYaml, fromJSON)

	desc, err := fromYaml.Descriptor()
	require.NoError(t, err)

	builtin := capability.LoggerDescriptor()
	assert.Equal(t, builtin.Kind, desc.Kind)
	assert.True(t, builtin.Version.Equal(desc.Version))
	assert.Equal(t, builtin.Operations, desc.Operations)
}
