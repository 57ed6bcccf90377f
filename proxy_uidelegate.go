package lockcheck

import (
	"context"

	"github.com/assetbridge/lockcheck/capability"
)

// threadedUIDelegateInterface forwards every UI-delegate operation through a
// fresh worker thread.
type threadedUIDelegateInterface struct {
	core   *proxyCore
	target capability.UIDelegateInterface
}

// WrapInThreadedUIDelegateInterface wraps target in a proxy that executes
// each operation on a second OS thread, surfacing a retained exclusive
// execution lock as a *TimeoutError. See WrapInThreadedManagerInterface.
func WrapInThreadedUIDelegateInterface(target capability.UIDelegateInterface, opts ...Option) (capability.UIDelegateInterface, error) {
	if isNilTarget(target) {
		return nil, &InvalidTargetError{Kind: capability.KindUIDelegate}
	}
	return &threadedUIDelegateInterface{
		core:   newProxyCore(capability.KindUIDelegate, opts...),
		target: target,
	}, nil
}

func (p *threadedUIDelegateInterface) Identifier(ctx context.Context) (string, error) {
	return probe(p.core, Invocation{Kind: capability.KindUIDelegate, Op: "Identifier"}, func() (string, error) {
		return p.target.Identifier(ctx)
	})
}

func (p *threadedUIDelegateInterface) DisplayName(ctx context.Context) (string, error) {
	return probe(p.core, Invocation{Kind: capability.KindUIDelegate, Op: "DisplayName"}, func() (string, error) {
		return p.target.DisplayName(ctx)
	})
}

func (p *threadedUIDelegateInterface) Info(ctx context.Context) (capability.InfoDictionary, error) {
	return probe(p.core, Invocation{Kind: capability.KindUIDelegate, Op: "Info"}, func() (capability.InfoDictionary, error) {
		return p.target.Info(ctx)
	})
}

func (p *threadedUIDelegateInterface) Settings(ctx context.Context) (capability.InfoDictionary, error) {
	return probe(p.core, Invocation{Kind: capability.KindUIDelegate, Op: "Settings"}, func() (capability.InfoDictionary, error) {
		return p.target.Settings(ctx)
	})
}

func (p *threadedUIDelegateInterface) Initialize(ctx context.Context, settings capability.InfoDictionary) error {
	inv := Invocation{Kind: capability.KindUIDelegate, Op: "Initialize", Args: []any{settings}}
	return probeErr(p.core, inv, func() error {
		return p.target.Initialize(ctx, settings)
	})
}

func (p *threadedUIDelegateInterface) Close(ctx context.Context) error {
	return probeErr(p.core, Invocation{Kind: capability.KindUIDelegate, Op: "Close"}, func() error {
		return p.target.Close(ctx)
	})
}

func (p *threadedUIDelegateInterface) UIPolicy(ctx context.Context, uiTraitSet capability.TraitSet, access string) (capability.TraitsData, error) {
	inv := Invocation{Kind: capability.KindUIDelegate, Op: "UIPolicy", Args: []any{uiTraitSet, access}}
	return probe(p.core, inv, func() (capability.TraitsData, error) {
		return p.target.UIPolicy(ctx, uiTraitSet, access)
	})
}

func (p *threadedUIDelegateInterface) PopulateUI(ctx context.Context, uiTraitsData capability.TraitsData, access string) (capability.TraitsData, error) {
	inv := Invocation{Kind: capability.KindUIDelegate, Op: "PopulateUI", Args: []any{uiTraitsData, access}}
	return probe(p.core, inv, func() (capability.TraitsData, error) {
		return p.target.PopulateUI(ctx, uiTraitsData, access)
	})
}
