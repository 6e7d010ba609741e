package ecs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContractViolation reports a broken precondition: an unknown entity, a
// duplicate component, an exhausted fixed capacity or an index out of bounds.
// It is raised as a panic and must never be resumed from, since every other
// operation assumes the storage invariants hold.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e *ContractViolation) Error() string {
	return "ecs: contract violation in " + e.Op + ": " + e.Msg
}

// Violate panics with a *ContractViolation carrying the caller's stack.
func Violate(op, format string, args ...any) {
	panic(errors.WithStack(&ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)}))
}

// AsContractViolation unwraps a recovered panic value into a *ContractViolation.
func AsContractViolation(recovered any) (*ContractViolation, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var cv *ContractViolation
	if errors.As(err, &cv) {
		return cv, true
	}
	return nil, false
}
