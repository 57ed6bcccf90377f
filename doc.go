// Package lockcheck verifies that a binding layer releases the exclusive
// execution lock before delegating to callback code on another thread.
//
// The core pattern is the threaded proxy: a wrapper around a capability
// target that forwards every operation through a fresh OS thread and blocks
// the caller until the call completes or a deadline elapses. A binding-layer
// entry point that forwards to the target while still holding the lock
// deadlocks the worker, which the harness reports as a TimeoutError instead
// of hanging the run.
//
// Wrap a target with the factory for its capability kind:
//
//	proxied, err := lockcheck.WrapInThreadedManagerInterface(target)
//	if err != nil {
//	    // target was nil
//	}
//	data, err := proxied.Resolve(ctx, refs, traitSet)
//
// A completed call returns the target's values unchanged, a target error is
// returned verbatim, and a timeout surfaces as *TimeoutError, detectable via
// IsHarnessTimeout.
package lockcheck
