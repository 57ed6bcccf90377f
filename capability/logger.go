package capability

import "context"

// LoggerInterface is the logger-role contract.
type LoggerInterface interface {
	// Log emits a message at the given severity.
	Log(ctx context.Context, severity Severity, message string) error

	// IsSeverityLogged reports whether messages at the given severity
	// would be emitted, allowing callers to skip expensive formatting.
	IsSeverityLogged(ctx context.Context, severity Severity) (bool, error)
}
