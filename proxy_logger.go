package lockcheck

import (
	"context"

	"github.com/assetbridge/lockcheck/capability"
)

// threadedLoggerInterface forwards every logger operation through a fresh
// worker thread.
type threadedLoggerInterface struct {
	core   *proxyCore
	target capability.LoggerInterface
}

// WrapInThreadedLoggerInterface wraps target in a proxy that executes each
// operation on a second OS thread, surfacing a retained exclusive execution
// lock as a *TimeoutError. See WrapInThreadedManagerInterface.
func WrapInThreadedLoggerInterface(target capability.LoggerInterface, opts ...Option) (capability.LoggerInterface, error) {
	if isNilTarget(target) {
		return nil, &InvalidTargetError{Kind: capability.KindLogger}
	}
	return &threadedLoggerInterface{
		core:   newProxyCore(capability.KindLogger, opts...),
		target: target,
	}, nil
}

func (p *threadedLoggerInterface) Log(ctx context.Context, severity capability.Severity, message string) error {
	inv := Invocation{Kind: capability.KindLogger, Op: "Log", Args: []any{severity, message}}
	return probeErr(p.core, inv, func() error {
		return p.target.Log(ctx, severity, message)
	})
}

func (p *threadedLoggerInterface) IsSeverityLogged(ctx context.Context, severity capability.Severity) (bool, error) {
	inv := Invocation{Kind: capability.KindLogger, Op: "IsSeverityLogged", Args: []any{severity}}
	return probe(p.core, inv, func() (bool, error) {
		return p.target.IsSeverityLogged(ctx, severity)
	})
}
