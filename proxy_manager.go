package lockcheck

import (
	"context"

	"github.com/assetbridge/lockcheck/capability"
)

// threadedManagerInterface forwards every manager operation through a fresh
// worker thread. It exposes exactly the manager descriptor's operations, so
// it is substitutable wherever a ManagerInterface is expected.
type threadedManagerInterface struct {
	core   *proxyCore
	target capability.ManagerInterface
}

// WrapInThreadedManagerInterface wraps target in a proxy that executes each
// operation on a second OS thread and blocks the caller until the operation
// completes or the deadline elapses. A caller that still holds the exclusive
// execution lock when invoking the proxy sees a *TimeoutError instead of a
// hang.
func WrapInThreadedManagerInterface(target capability.ManagerInterface, opts ...Option) (capability.ManagerInterface, error) {
	if isNilTarget(target) {
		return nil, &InvalidTargetError{Kind: capability.KindManager}
	}
	return &threadedManagerInterface{
		core:   newProxyCore(capability.KindManager, opts...),
		target: target,
	}, nil
}

func (p *threadedManagerInterface) Identifier(ctx context.Context) (string, error) {
	return probe(p.core, Invocation{Kind: capability.KindManager, Op: "Identifier"}, func() (string, error) {
		return p.target.Identifier(ctx)
	})
}

func (p *threadedManagerInterface) DisplayName(ctx context.Context) (string, error) {
	return probe(p.core, Invocation{Kind: capability.KindManager, Op: "DisplayName"}, func() (string, error) {
		return p.target.DisplayName(ctx)
	})
}

func (p *threadedManagerInterface) Info(ctx context.Context) (capability.InfoDictionary, error) {
	return probe(p.core, Invocation{Kind: capability.KindManager, Op: "Info"}, func() (capability.InfoDictionary, error) {
		return p.target.Info(ctx)
	})
}

func (p *threadedManagerInterface) Settings(ctx context.Context) (capability.InfoDictionary, error) {
	return probe(p.core, Invocation{Kind: capability.KindManager, Op: "Settings"}, func() (capability.InfoDictionary, error) {
		return p.target.Settings(ctx)
	})
}

func (p *threadedManagerInterface) Initialize(ctx context.Context, settings capability.InfoDictionary) error {
	inv := Invocation{Kind: capability.KindManager, Op: "Initialize", Args: []any{settings}}
	return probeErr(p.core, inv, func() error {
		return p.target.Initialize(ctx, settings)
	})
}

func (p *threadedManagerInterface) ManagementPolicy(ctx context.Context, traitSet capability.TraitSet, access string) (capability.TraitsData, error) {
	inv := Invocation{Kind: capability.KindManager, Op: "ManagementPolicy", Args: []any{traitSet, access}}
	return probe(p.core, inv, func() (capability.TraitsData, error) {
		return p.target.ManagementPolicy(ctx, traitSet, access)
	})
}

func (p *threadedManagerInterface) IsEntityReferenceString(ctx context.Context, candidate string) (bool, error) {
	inv := Invocation{Kind: capability.KindManager, Op: "IsEntityReferenceString", Args: []any{candidate}}
	return probe(p.core, inv, func() (bool, error) {
		return p.target.IsEntityReferenceString(ctx, candidate)
	})
}

func (p *threadedManagerInterface) EntityExists(ctx context.Context, refs []capability.EntityReference) ([]bool, error) {
	inv := Invocation{Kind: capability.KindManager, Op: "EntityExists", Args: []any{refs}}
	return probe(p.core, inv, func() ([]bool, error) {
		return p.target.EntityExists(ctx, refs)
	})
}

func (p *threadedManagerInterface) Resolve(ctx context.Context, refs []capability.EntityReference, traitSet capability.TraitSet) ([]capability.TraitsData, error) {
	inv := Invocation{Kind: capability.KindManager, Op: "Resolve", Args: []any{refs, traitSet}}
	return probe(p.core, inv, func() ([]capability.TraitsData, error) {
		return p.target.Resolve(ctx, refs, traitSet)
	})
}

func (p *threadedManagerInterface) Preflight(ctx context.Context, refs []capability.EntityReference, hints []capability.TraitsData) ([]capability.EntityReference, error) {
	inv := Invocation{Kind: capability.KindManager, Op: "Preflight", Args: []any{refs, hints}}
	return probe(p.core, inv, func() ([]capability.EntityReference, error) {
		return p.target.Preflight(ctx, refs, hints)
	})
}

func (p *threadedManagerInterface) Register(ctx context.Context, refs []capability.EntityReference, data []capability.TraitsData) ([]capability.EntityReference, error) {
	inv := Invocation{Kind: capability.KindManager, Op: "Register", Args: []any{refs, data}}
	return probe(p.core, inv, func() ([]capability.EntityReference, error) {
		return p.target.Register(ctx, refs, data)
	})
}
