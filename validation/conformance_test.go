package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetbridge/lockcheck/capability"
	"github.com/assetbridge/lockcheck/validation"
)

// exactLogger implements precisely the logger descriptor's operations.
type exactLogger struct{}

func (exactLogger) Log(context.Context, capability.Severity, string) error { return nil }
func (exactLogger) IsSeverityLogged(context.Context, capability.Severity) (bool, error) {
	return false, nil
}

// chattyLogger adds an exported method beyond the descriptor.
type chattyLogger struct{ exactLogger }

func (chattyLogger) Flush() error { return nil }

// partialLogger is missing IsSeverityLogged.
type partialLogger struct{}

func (partialLogger) Log(context.Context, capability.Severity, string) error { return nil }

// skewedLogger has the right names but a wrong signature.
type skewedLogger struct{}

func (skewedLogger) Log(context.Context, string) error { return nil }
func (skewedLogger) IsSeverityLogged(context.Context, capability.Severity) (bool, error) {
	return false, nil
}

func Test_Conforms_ExactMatch(t *testing.T) {
	result, err := validation.Conforms(exactLogger{}, capability.LoggerDescriptor())

	require.NoError(t, err)
	assert.True(t, result.Valid, "unexpected errors: %v", result.Errors)
}

func Test_Conforms_ExtraMethodRejected(t *testing.T) {
	result, err := validation.Conforms(chattyLogger{}, capability.LoggerDescriptor())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Flush")
}

func Test_Conforms_MissingOperationRejected(t *testing.T) {
	result, err := validation.Conforms(partialLogger{}, capability.LoggerDescriptor())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "IsSeverityLogged")
}

func Test_Conforms_SignatureMismatchRejected(t *testing.T) {
	result, err := validation.Conforms(skewedLogger{}, capability.LoggerDescriptor())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func Test_Conforms_NilInputs(t *testing.T) {
	_, err := validation.Conforms(nil, capability.LoggerDescriptor())
	assert.Error(t, err)

	_, err = validation.Conforms(exactLogger{}, nil)
	assert.Error(t, err)
}
