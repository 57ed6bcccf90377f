package lockcheck

import "github.com/assetbridge/lockcheck/capability"

// Outcome classifies the terminal result of one proxied invocation. Exactly
// one outcome is produced per invocation.
type Outcome int

const (
	// OutcomeCompleted means the target returned a value within the deadline.
	OutcomeCompleted Outcome = iota
	// OutcomeFailed means the target returned an error within the deadline.
	OutcomeFailed
	// OutcomeTimedOut means the worker did not report back within the
	// deadline and was abandoned.
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimedOut:
		return "timedOut"
	default:
		return "unknown"
	}
}

// Invocation captures one proxied call: the capability kind, the operation
// name and its arguments (excluding the context). An Invocation is created
// per call and never shared beyond the caller/worker pair.
type Invocation struct {
	Kind capability.Kind
	Op   string
	Args []any
}

// Observer is called once per invocation after its outcome is terminal. For
// OutcomeFailed err is the target's error; for OutcomeTimedOut it is the
// *TimeoutError; for OutcomeCompleted it is nil. Observers must not block.
type Observer func(inv Invocation, outcome Outcome, err error)
