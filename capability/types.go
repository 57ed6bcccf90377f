// Package capability defines the contracts a component must satisfy to be
// substitutable in one of the binding layer's delegated roles (manager,
// logger, UI delegate), together with the value types those contracts
// traffic in and the versioned descriptor for each role.
package capability

import "fmt"

// InfoDictionary holds arbitrary string-keyed metadata exchanged across the
// binding boundary. Values are restricted by convention to bool, int64,
// float64 and string.
type InfoDictionary map[string]any

// EntityReference identifies an entity managed by a manager implementation.
// The string format is opaque to the harness.
type EntityReference string

// TraitSet is an unordered collection of trait identifiers.
type TraitSet []string

// TraitsData maps trait identifiers to their property dictionaries.
type TraitsData map[string]InfoDictionary

// Severity classifies log messages, lowest first.
type Severity int

const (
	SeverityDebugAPI Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityProgress
	SeverityWarning
	SeverityError
	SeverityCritical
)

var severityNames = [...]string{
	"debugApi", "debug", "info", "progress", "warning", "error", "critical",
}

// String returns the canonical lower-camel name for the severity.
func (s Severity) String() string {
	if s < SeverityDebugAPI || s > SeverityCritical {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}
