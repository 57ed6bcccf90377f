package lockcheck

import (
	"errors"
	"fmt"
	"time"

	"github.com/assetbridge/lockcheck/capability"
)

// InvalidTargetError reports that a proxy factory was given no target to
// wrap. Construction fails immediately; nothing is retried.
type InvalidTargetError struct {
	Kind capability.Kind
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("lockcheck: no %s target to wrap", e.Kind)
}

// TimeoutError reports that a proxied operation did not complete within the
// deadline. This is the harness's positive finding: the worker thread could
// not run the delegated call, which means the calling thread still held a
// lock the callback needed. It is deliberately a distinct type from anything
// a target returns, so assertions can tell a deadlock from a target failure.
type TimeoutError struct {
	Kind     capability.Kind
	Op       string
	Deadline time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf(
		"lockcheck: %s.%s did not complete within %s; the calling thread likely retained the exclusive execution lock",
		e.Kind, e.Op, e.Deadline)
}

// IsHarnessTimeout reports whether err is a harness timeout rather than an
// error raised by the wrapped target.
func IsHarnessTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
