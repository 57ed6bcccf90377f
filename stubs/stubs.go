// Package stubs provides ready-made capability targets for exercising
// threaded proxies: fixed-value implementations standing in for delegated
// callback objects. When a stub is given an execlock.Lock, its operations
// acquire the lock for the duration of the call, exactly as real callback
// code would, so a caller that retains the lock across a proxied call
// deadlocks the worker on purpose.
package stubs

import (
	"context"
	"sync"

	"github.com/assetbridge/lockcheck/capability"
	"github.com/assetbridge/lockcheck/execlock"
)

// run executes fn as callback code: under lock when one is configured,
// directly otherwise.
func run(ctx context.Context, lock *execlock.Lock, fn func()) error {
	if lock == nil {
		fn()
		return nil
	}
	return lock.Run(ctx, fn)
}

// Manager is a fixed-value capability.ManagerInterface.
type Manager struct {
	// Lock, when set, is acquired around every operation.
	Lock *execlock.Lock
	// Err, when set, is returned by every operation.
	Err error
	// ResolvedTraits is the per-reference payload returned by Resolve.
	ResolvedTraits capability.TraitsData
}

var _ capability.ManagerInterface = (*Manager)(nil)

func (m *Manager) Identifier(ctx context.Context) (string, error) {
	return stubValue(ctx, m.Lock, m.Err, "org.assetbridge.test.stubManager")
}

func (m *Manager) DisplayName(ctx context.Context) (string, error) {
	return stubValue(ctx, m.Lock, m.Err, "Stub Manager")
}

func (m *Manager) Info(ctx context.Context) (capability.InfoDictionary, error) {
	return stubValue(ctx, m.Lock, m.Err, capability.InfoDictionary{"stub": true})
}

func (m *Manager) Settings(ctx context.Context) (capability.InfoDictionary, error) {
	return stubValue(ctx, m.Lock, m.Err, capability.InfoDictionary{})
}

func (m *Manager) Initialize(ctx context.Context, _ capability.InfoDictionary) error {
	_, err := stubValue(ctx, m.Lock, m.Err, struct{}{})
	return err
}

func (m *Manager) ManagementPolicy(ctx context.Context, _ capability.TraitSet, _ string) (capability.TraitsData, error) {
	return stubValue(ctx, m.Lock, m.Err, capability.TraitsData{})
}

func (m *Manager) IsEntityReferenceString(ctx context.Context, candidate string) (bool, error) {
	return stubValue(ctx, m.Lock, m.Err, len(candidate) > 0)
}

func (m *Manager) EntityExists(ctx context.Context, refs []capability.EntityReference) ([]bool, error) {
	exists := make([]bool, len(refs))
	for i := range exists {
		exists[i] = true
	}
	return stubValue(ctx, m.Lock, m.Err, exists)
}

func (m *Manager) Resolve(ctx context.Context, refs []capability.EntityReference, _ capability.TraitSet) ([]capability.TraitsData, error) {
	data := make([]capability.TraitsData, len(refs))
	for i := range data {
		data[i] = m.ResolvedTraits
	}
	return stubValue(ctx, m.Lock, m.Err, data)
}

func (m *Manager) Preflight(ctx context.Context, refs []capability.EntityReference, _ []capability.TraitsData) ([]capability.EntityReference, error) {
	return stubValue(ctx, m.Lock, m.Err, refs)
}

func (m *Manager) Register(ctx context.Context, refs []capability.EntityReference, _ []capability.TraitsData) ([]capability.EntityReference, error) {
	return stubValue(ctx, m.Lock, m.Err, refs)
}

// Logger is a recording capability.LoggerInterface.
type Logger struct {
	// Lock, when set, is acquired around every operation.
	Lock *execlock.Lock
	// Err, when set, is returned by every operation.
	Err error

	mu       sync.Mutex
	messages []string
}

var _ capability.LoggerInterface = (*Logger)(nil)

func (l *Logger) Log(ctx context.Context, severity capability.Severity, message string) error {
	if err := run(ctx, l.Lock, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.messages = append(l.messages, severity.String()+": "+message)
	}); err != nil {
		return err
	}
	return l.Err
}

// Messages returns a copy of everything logged so far.
func (l *Logger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.messages...)
}

func (l *Logger) IsSeverityLogged(ctx context.Context, severity capability.Severity) (bool, error) {
	return stubValue(ctx, l.Lock, l.Err, severity >= capability.SeverityInfo)
}

// UIDelegate is a fixed-value capability.UIDelegateInterface.
type UIDelegate struct {
	// Lock, when set, is acquired around every operation.
	Lock *execlock.Lock
	// Err, when set, is returned by every operation.
	Err error
}

var _ capability.UIDelegateInterface = (*UIDelegate)(nil)

func (d *UIDelegate) Identifier(ctx context.Context) (string, error) {
	return stubValue(ctx, d.Lock, d.Err, "org.assetbridge.test.stubUIDelegate")
}

func (d *UIDelegate) DisplayName(ctx context.Context) (string, error) {
	return stubValue(ctx, d.Lock, d.Err, "Stub UI Delegate")
}

func (d *UIDelegate) Info(ctx context.Context) (capability.InfoDictionary, error) {
	return stubValue(ctx, d.Lock, d.Err, capability.InfoDictionary{"stub": true})
}

func (d *UIDelegate) Settings(ctx context.Context) (capability.InfoDictionary, error) {
	return stubValue(ctx, d.Lock, d.Err, capability.InfoDictionary{})
}

func (d *UIDelegate) Initialize(ctx context.Context, _ capability.InfoDictionary) error {
	_, err := stubValue(ctx, d.Lock, d.Err, struct{}{})
	return err
}

func (d *UIDelegate) Close(ctx context.Context) error {
	_, err := stubValue(ctx, d.Lock, d.Err, struct{}{})
	return err
}

func (d *UIDelegate) UIPolicy(ctx context.Context, _ capability.TraitSet, _ string) (capability.TraitsData, error) {
	return stubValue(ctx, d.Lock, d.Err, capability.TraitsData{})
}

func (d *UIDelegate) PopulateUI(ctx context.Context, uiTraitsData capability.TraitsData, _ string) (capability.TraitsData, error) {
	return stubValue(ctx, d.Lock, d.Err, uiTraitsData)
}

// stubValue runs the fixed-value path as callback code and applies the
// configured error, keeping lock acquisition identical either way.
func stubValue[T any](ctx context.Context, lock *execlock.Lock, stubErr error, value T) (T, error) {
	var zero T
	if err := run(ctx, lock, func() {}); err != nil {
		return zero, err
	}
	if stubErr != nil {
		return zero, stubErr
	}
	return value, nil
}
