package validation

import (
	"fmt"
	"reflect"

	"github.com/assetbridge/lockcheck/capability"
)

// Conforms checks that v exposes exactly the operations of the descriptor:
// every descriptor operation must be present with matching parameter and
// result types, and no exported methods may exist beyond the descriptor.
// This is the substitutability invariant a threaded proxy must uphold.
func Conforms(v any, desc *capability.Descriptor) (*ValidationResult, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot check conformance of a nil value")
	}
	if desc == nil {
		return nil, fmt.Errorf("cannot check conformance against a nil descriptor")
	}

	t := reflect.TypeOf(v)
	result := &ValidationResult{Valid: true}

	// Concrete method types carry the receiver as the first parameter.
	recvOffset := 0
	if t.Kind() != reflect.Interface {
		recvOffset = 1
	}

	seen := make(map[string]bool, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		seen[m.Name] = true

		op, ok := desc.Operation(m.Name)
		if !ok {
			result.Errors = append(result.Errors,
				fmt.Sprintf("method %s is not part of the %s descriptor", m.Name, desc.Kind))
			continue
		}

		checkSignature(m, op, recvOffset, result)
	}

	for _, op := range desc.Operations {
		if !seen[op.Name] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("operation %s of the %s descriptor is not implemented", op.Name, desc.Kind))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

func checkSignature(m reflect.Method, op capability.Operation, recvOffset int, result *ValidationResult) {
	mt := m.Type

	if mt.NumIn()-recvOffset != len(op.Params) {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"operation %s takes %d parameters, descriptor lists %d",
			op.Name, mt.NumIn()-recvOffset, len(op.Params)))
	} else {
		for j, want := range op.Params {
			if got := mt.In(j + recvOffset).String(); got != want {
				result.Errors = append(result.Errors, fmt.Sprintf(
					"operation %s parameter %d is %s, descriptor lists %s", op.Name, j, got, want))
			}
		}
	}

	if mt.NumOut() != len(op.Results) {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"operation %s returns %d values, descriptor lists %d",
			op.Name, mt.NumOut(), len(op.Results)))
		return
	}
	for j, want := range op.Results {
		if got := mt.Out(j).String(); got != want {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"operation %s result %d is %s, descriptor lists %s", op.Name, j, got, want))
		}
	}
}
