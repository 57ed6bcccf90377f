// Package execlock models the exclusive right to execute delegated callback
// code. At most one goroutine may hold the lock at a time; a correct binding
// layer releases it before blocking on another thread that may itself need
// it. Callback targets use Run to simulate callback execution, and the
// harness's regression tests use a deliberately retained lock to provoke the
// timeout path.
package execlock

import "context"

// Lock is an exclusive, non-reentrant execution lock. The zero value is not
// usable; construct with New.
type Lock struct {
	slot chan struct{}
}

// New returns an unheld Lock.
func New() *Lock {
	return &Lock{slot: make(chan struct{}, 1)}
}

// Acquire blocks until the lock is held by the calling goroutine or ctx is
// done, in which case it returns the context's error.
func (l *Lock) Acquire(ctx context.Context) error {
	select {
	case l.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release relinquishes the lock. Releasing an unheld lock is a programming
// error and panics.
func (l *Lock) Release() {
	select {
	case <-l.slot:
	default:
		panic("execlock: release of unheld lock")
	}
}

// Held reports whether some goroutine currently holds the lock. The answer is
// inherently racy unless the caller knows who the holder is; it exists for
// assertions inside callback code that has just acquired the lock.
func (l *Lock) Held() bool {
	return len(l.slot) == 1
}

// Run executes fn while holding the lock, the analogue of entering delegated
// callback code. It returns ctx's error if the lock could not be acquired
// before ctx was done.
func (l *Lock) Run(ctx context.Context, fn func()) error {
	if err := l.Acquire(ctx); err != nil {
		return err
	}
	defer l.Release()
	fn()
	return nil
}
