package capability

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Kind names a capability role.
type Kind string

const (
	KindManager    Kind = "manager"
	KindLogger     Kind = "logger"
	KindUIDelegate Kind = "uiDelegate"
)

// Operation describes one entry in a descriptor: the operation name plus its
// parameter and result types, rendered as Go type strings.
type Operation struct {
	Name    string   `json:"name" yaml:"name"`
	Params  []string `json:"params" yaml:"params"`
	Results []string `json:"results" yaml:"results"`
}

// Descriptor is the fixed, versioned operation set a capability kind exposes.
// A threaded proxy for a kind must expose exactly these operations, no more
// and no fewer, so it is substitutable wherever the plain interface is
// expected. Descriptors are owned by the binding layer under test; the
// revisions compiled in here track its published manifests.
type Descriptor struct {
	Kind       Kind
	Version    *semver.Version
	Operations []Operation
}

// Operation returns the named operation, or false if the descriptor does not
// include it.
func (d *Descriptor) Operation(name string) (Operation, bool) {
	for _, op := range d.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// Satisfies reports whether the descriptor revision meets the given semver
// constraint (e.g. "^1.0").
func (d *Descriptor) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid descriptor constraint %q: %w", constraint, err)
	}
	return c.Check(d.Version), nil
}

// ManagerDescriptor returns the current manager-role descriptor.
func ManagerDescriptor() *Descriptor {
	return &Descriptor{
		Kind:    KindManager,
		Version: semver.MustParse("1.0.0"),
		Operations: []Operation{
			{Name: "Identifier", Params: []string{"context.Context"}, Results: []string{"string", "error"}},
			{Name: "DisplayName", Params: []string{"context.Context"}, Results: []string{"string", "error"}},
			{Name: "Info", Params: []string{"context.Context"}, Results: []string{"capability.InfoDictionary", "error"}},
			{Name: "Settings", Params: []string{"context.Context"}, Results: []string{"capability.InfoDictionary", "error"}},
			{Name: "Initialize", Params: []string{"context.Context", "capability.InfoDictionary"}, Results: []string{"error"}},
			{Name: "ManagementPolicy", Params: []string{"context.Context", "capability.TraitSet", "string"}, Results: []string{"capability.TraitsData", "error"}},
			{Name: "IsEntityReferenceString", Params: []string{"context.Context", "string"}, Results: []string{"bool", "error"}},
			{Name: "EntityExists", Params: []string{"context.Context", "[]capability.EntityReference"}, Results: []string{"[]bool", "error"}},
			{Name: "Resolve", Params: []string{"context.Context", "[]capability.EntityReference", "capability.TraitSet"}, Results: []string{"[]capability.TraitsData", "error"}},
			{Name: "Preflight", Params: []string{"context.Context", "[]capability.EntityReference", "[]capability.TraitsData"}, Results: []string{"[]capability.EntityReference", "error"}},
			{Name: "Register", Params: []string{"context.Context", "[]capability.EntityReference", "[]capability.TraitsData"}, Results: []string{"[]capability.EntityReference", "error"}},
		},
	}
}

// LoggerDescriptor returns the current logger-role descriptor.
func LoggerDescriptor() *Descriptor {
	return &Descriptor{
		Kind:    KindLogger,
		Version: semver.MustParse("1.0.0"),
		Operations: []Operation{
			{Name: "Log", Params: []string{"context.Context", "capability.Severity", "string"}, Results: []string{"error"}},
			{Name: "IsSeverityLogged", Params: []string{"context.Context", "capability.Severity"}, Results: []string{"bool", "error"}},
		},
	}
}

// UIDelegateDescriptor returns the current UI-delegate-role descriptor.
func UIDelegateDescriptor() *Descriptor {
	return &Descriptor{
		Kind:    KindUIDelegate,
		Version: semver.MustParse("1.0.0"),
		Operations: []Operation{
			{Name: "Identifier", Params: []string{"context.Context"}, Results: []string{"string", "error"}},
			{Name: "DisplayName", Params: []string{"context.Context"}, Results: []string{"string", "error"}},
			{Name: "Info", Params: []string{"context.Context"}, Results: []string{"capability.InfoDictionary", "error"}},
			{Name: "Settings", Params: []string{"context.Context"}, Results: []string{"capability.InfoDictionary", "error"}},
			{Name: "Initialize", Params: []string{"context.Context", "capability.InfoDictionary"}, Results: []string{"error"}},
			{Name: "Close", Params: []string{"context.Context"}, Results: []string{"error"}},
			{Name: "UIPolicy", Params: []string{"context.Context", "capability.TraitSet", "string"}, Results: []string{"capability.TraitsData", "error"}},
			{Name: "PopulateUI", Params: []string{"context.Context", "capability.TraitsData", "string"}, Results: []string{"capability.TraitsData", "error"}},
		},
	}
}
