package lockcheck

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/assetbridge/lockcheck/capability"
)

// probeResult is the single-assignment handoff from worker to caller.
type probeResult struct {
	value any
	err   error
}

// proxyCore carries the per-proxy state shared by all threaded proxies: the
// wrapped target's kind, the deadline, diagnostics, and a mutex that keeps
// invocations on one proxy strictly sequential.
type proxyCore struct {
	log      *slog.Logger
	observer Observer
	kind     capability.Kind
	deadline time.Duration
	mu       sync.Mutex
}

// invoke runs fn on a fresh worker pinned to its own OS thread and blocks
// until the worker reports back or the deadline elapses. A worker that
// outlives the deadline is abandoned, never killed: its eventual result goes
// into the buffered channel and is dropped unobserved, so a late completion
// cannot retroactively resolve the outcome.
func (p *proxyCore) invoke(inv Invocation, fn func() (any, error)) (any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.Debug("lockcheck: dispatching invocation", "kind", string(inv.Kind), "op", inv.Op)

	results := make(chan probeResult, 1)
	go func() {
		// Pin the worker so the delegated call genuinely executes on a
		// different OS thread than the blocked caller.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		value, err := fn()
		results <- probeResult{value: value, err: err}
	}()

	timer := time.NewTimer(p.deadline)
	defer timer.Stop()

	select {
	case res := <-results:
		outcome := OutcomeCompleted
		if res.err != nil {
			outcome = OutcomeFailed
		}
		p.report(inv, outcome, res.err)
		return res.value, res.err
	case <-timer.C:
		err := &TimeoutError{Kind: p.kind, Op: inv.Op, Deadline: p.deadline}
		p.report(inv, OutcomeTimedOut, err)
		return nil, err
	}
}

func (p *proxyCore) report(inv Invocation, outcome Outcome, err error) {
	if err != nil {
		p.log.Debug("lockcheck: invocation finished",
			"kind", string(inv.Kind), "op", inv.Op, "outcome", outcome.String(), "error", err)
	} else {
		p.log.Debug("lockcheck: invocation finished",
			"kind", string(inv.Kind), "op", inv.Op, "outcome", outcome.String())
	}
	if p.observer != nil {
		p.observer(inv, outcome, err)
	}
}

// probe adapts invoke to an operation with a typed result.
func probe[T any](p *proxyCore, inv Invocation, fn func() (T, error)) (T, error) {
	value, err := p.invoke(inv, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, _ := value.(T)
	return typed, nil
}

// probeErr adapts invoke to an operation that only returns an error.
func probeErr(p *proxyCore, inv Invocation, fn func() error) error {
	_, err := p.invoke(inv, func() (any, error) {
		return nil, fn()
	})
	return err
}
