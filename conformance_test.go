package lockcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetbridge/lockcheck"
	"github.com/assetbridge/lockcheck/capability"
	"github.com/assetbridge/lockcheck/registry"
	"github.com/assetbridge/lockcheck/stubs"
	"github.com/assetbridge/lockcheck/validation"
)

// Every threaded proxy must expose exactly the operations of its kind's
// descriptor, no more and no fewer, so it is substitutable wherever the
// plain interface is expected.
func Test_ThreadedProxies_ConformToDescriptors(t *testing.T) {
	reg := registry.NewRegistry()

	manager, err := lockcheck.WrapInThreadedManagerInterface(&stubs.Manager{})
	require.NoError(t, err)

	logger, err := lockcheck.WrapInThreadedLoggerInterface(&stubs.Logger{})
	require.NoError(t, err)

	uiDelegate, err := lockcheck.WrapInThreadedUIDelegateInterface(&stubs.UIDelegate{})
	require.NoError(t, err)

	proxies := map[capability.Kind]any{
		capability.KindManager:    manager,
		capability.KindLogger:     logger,
		capability.KindUIDelegate: uiDelegate,
	}

	for kind, proxied := range proxies {
		desc, ok := reg.Descriptor(kind)
		require.True(t, ok, "no descriptor registered for %s", kind)

		result, err := validation.Conforms(proxied, desc)
		require.NoError(t, err)
		assert.True(t, result.Valid, "%s proxy does not conform: %v", kind, result.Errors)
	}
}
