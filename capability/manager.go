package capability

import "context"

// ManagerInterface is the manager-role contract. Implementations are commonly
// backed by callback code executing under the host's exclusive execution
// lock, so every operation may block and must accept a context.
type ManagerInterface interface {
	// Identifier returns the unique reverse-DNS identifier of the manager.
	Identifier(ctx context.Context) (string, error)

	// DisplayName returns the human-readable name of the manager.
	DisplayName(ctx context.Context) (string, error)

	// Info returns descriptive metadata about the manager.
	Info(ctx context.Context) (InfoDictionary, error)

	// Settings returns the manager's current settings.
	Settings(ctx context.Context) (InfoDictionary, error)

	// Initialize applies settings and prepares the manager for use.
	Initialize(ctx context.Context, settings InfoDictionary) error

	// ManagementPolicy describes the manager's behaviour for the given
	// traits under the given access mode.
	ManagementPolicy(ctx context.Context, traitSet TraitSet, access string) (TraitsData, error)

	// IsEntityReferenceString reports whether the string should be treated
	// as an entity reference.
	IsEntityReferenceString(ctx context.Context, candidate string) (bool, error)

	// EntityExists reports existence for each of the supplied references.
	EntityExists(ctx context.Context, refs []EntityReference) ([]bool, error)

	// Resolve returns the trait data for each reference, filtered to the
	// requested trait set.
	Resolve(ctx context.Context, refs []EntityReference, traitSet TraitSet) ([]TraitsData, error)

	// Preflight readies each reference for publishing and returns the
	// references to use for the subsequent Register.
	Preflight(ctx context.Context, refs []EntityReference, hints []TraitsData) ([]EntityReference, error)

	// Register publishes data for each reference and returns the final
	// references.
	Register(ctx context.Context, refs []EntityReference, data []TraitsData) ([]EntityReference, error)
}
