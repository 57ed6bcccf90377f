package registry_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetbridge/lockcheck/capability"
	"github.com/assetbridge/lockcheck/registry"
)

func Test_Registry_BuiltinsRegistered(t *testing.T) {
	reg := registry.NewRegistry()

	assert.ElementsMatch(t, []capability.Kind{
		capability.KindManager,
		capability.KindLogger,
		capability.KindUIDelegate,
	}, reg.Kinds())

	desc, ok := reg.Descriptor(capability.KindManager)
	require.True(t, ok)
	assert.Equal(t, capability.KindManager, desc.Kind)
}

func Test_Registry_DuplicateKindRejected(t *testing.T) {
	reg := registry.NewRegistry()

	err := reg.Register(capability.LoggerDescriptor())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func Test_Registry_WithoutBuiltins(t *testing.T) {
	reg := registry.NewRegistry(registry.WithoutBuiltins())
	assert.Empty(t, reg.Kinds())

	custom := &capability.Descriptor{
		Kind:    capability.KindLogger,
		Version: semver.MustParse("2.0.0"),
		Operations: []capability.Operation{
			{Name: "Log", Params: []string{"context.Context"}, Results: []string{"error"}},
		},
	}
	require.NoError(t, reg.Register(custom))

	desc, ok := reg.Descriptor(capability.KindLogger)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", desc.Version.String())
}

func Test_Registry_RejectsNilAndKindlessDescriptors(t *testing.T) {
	reg := registry.NewRegistry(registry.WithoutBuiltins())

	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(&capability.Descriptor{}))
}

func Test_Registry_DescriptorSatisfying(t *testing.T) {
	reg := registry.NewRegistry()

	t.Run("constraint met", func(t *testing.T) {
		desc, err := reg.DescriptorSatisfying(capability.KindManager, "^1.0")
		require.NoError(t, err)
		assert.Equal(t, capability.KindManager, desc.Kind)
	})

	t.Run("constraint not met", func(t *testing.T) {
		_, err := reg.DescriptorSatisfying(capability.KindManager, ">= 9.0")
		assert.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := reg.DescriptorSatisfying(capability.Kind("unknown"), "^1.0")
		assert.Error(t, err)
	})
}
