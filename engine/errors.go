package engine

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hepvec/vtype"
)

var (
	// ErrArgument is wrapped by every ArgumentError.
	ErrArgument = errors.New("invalid argument")
	// ErrAttribute is wrapped by every AttributeError.
	ErrAttribute = errors.New("no such coordinate")
	// ErrCapability is wrapped by every CapabilityError.
	ErrCapability = errors.New("operation not defined for this dimension")
)

// ArgumentError reports an invalid argument combination for an operation.
type ArgumentError struct {
	Op     string
	Reason string
	cause  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ArgumentError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrArgument, e.cause}
	}
	return []error{ErrArgument}
}

// AttributeError reports a coordinate name that a vector type does not expose,
// such as a momentum synonym on a geometric vector.
type AttributeError struct {
	Name string
	Type vtype.Descriptor
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s has no coordinate %q", e.Type, e.Name)
}

func (e *AttributeError) Unwrap() error { return ErrAttribute }

// CapabilityError reports an operation applied to a vector whose dimension
// does not support it, such as cross on a 2D vector.
type CapabilityError struct {
	Op   string
	Type vtype.Descriptor
	Need int
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s requires at least %dD, got %s", e.Op, e.Need, e.Type)
}

func (e *CapabilityError) Unwrap() error { return ErrCapability }

func argumentError(op, reason string, cause error) error {
	return &ArgumentError{Op: op, Reason: reason, cause: cause}
}

func requireDim(op string, v Vec, need int) error {
	if v.Type.Dim() < need {
		return &CapabilityError{Op: op, Type: v.Type, Need: need}
	}
	return nil
}
