package capability

import "context"

// UIDelegateInterface is the UI-delegate-role contract.
type UIDelegateInterface interface {
	// Identifier returns the unique reverse-DNS identifier of the delegate.
	Identifier(ctx context.Context) (string, error)

	// DisplayName returns the human-readable name of the delegate.
	DisplayName(ctx context.Context) (string, error)

	// Info returns descriptive metadata about the delegate.
	Info(ctx context.Context) (InfoDictionary, error)

	// Settings returns the delegate's current settings.
	Settings(ctx context.Context) (InfoDictionary, error)

	// Initialize applies settings and prepares the delegate for use.
	Initialize(ctx context.Context, settings InfoDictionary) error

	// Close releases any resources held by the delegate.
	Close(ctx context.Context) error

	// UIPolicy describes the delegate's behaviour for the given UI traits
	// under the given access mode.
	UIPolicy(ctx context.Context, uiTraitSet TraitSet, access string) (TraitsData, error)

	// PopulateUI requests that the delegate construct UI for the given
	// traits, returning the resulting state.
	PopulateUI(ctx context.Context, uiTraitsData TraitsData, access string) (TraitsData, error)
}
