// errors.go defines the error types shared by the pointer and result layers.

package types

import (
	"fmt"
)

// ErrContractViolation is raised (via panic) when a caller breaks a
// precondition, e.g. dereferences a null slot. It is never returned as an
// operational error.
type ErrContractViolation struct {
	Err error
}

func (e ErrContractViolation) Error() string {
	return fmt.Sprintf("contract violation: %v", e.Err)
}

func (e ErrContractViolation) Unwrap() error {
	return e.Err
}

type ErrNullPointer struct {
	Op       string
	TypeName string
}

func (e ErrNullPointer) Error() string {
	return fmt.Sprintf("%s: %s is null", e.Op, e.TypeName)
}

type ErrMissingError struct{}

func (ErrMissingError) Error() string {
	return "a failure must carry a non-nil error"
}

type ErrErrorTypedValue struct {
	TypeName string
}

func (e ErrErrorTypedValue) Error() string {
	return fmt.Sprintf("a success value must not be an error, got type %s", e.TypeName)
}
