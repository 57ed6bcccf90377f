package lockcheck

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/assetbridge/lockcheck/capability"
)

// DefaultDeadline bounds how long a proxied invocation may take before it is
// classified as timed out. Generous enough to ride out scheduler jitter on a
// loaded CI machine, short enough that a real retained-lock bug fails the
// suite quickly.
const DefaultDeadline = 5 * time.Second

// Option configures a threaded proxy at construction.
type Option func(*proxyCore)

// WithDeadline overrides DefaultDeadline for all invocations on the proxy.
func WithDeadline(d time.Duration) Option {
	return func(p *proxyCore) {
		p.deadline = d
	}
}

// WithLogger sets the logger for per-invocation debug diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *proxyCore) {
		p.log = log
	}
}

// WithObserver registers a callback fired once per invocation with its
// terminal outcome.
func WithObserver(observer Observer) Option {
	return func(p *proxyCore) {
		p.observer = observer
	}
}

func newProxyCore(kind capability.Kind, opts ...Option) *proxyCore {
	core := &proxyCore{
		kind:     kind,
		deadline: DefaultDeadline,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(core)
	}
	return core
}

// isNilTarget catches both untyped and typed nils handed to a factory.
func isNilTarget(target any) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
