package vtype

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConstruction is the sentinel wrapped by every ConstructionError.
	ErrConstruction = errors.New("vector construction failed")

	// ErrProjection is returned when a descriptor cannot be projected to the requested shape.
	ErrProjection = errors.New("invalid projection")
)

// ConstructionError reports a field-name set that does not identify exactly
// one coordinate system.
type ConstructionError struct {
	Fields []string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct vector from fields [%s]: %s", strings.Join(e.Fields, ", "), e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

// ProjectionError reports an impossible dimension change.
type ProjectionError struct {
	From   Descriptor
	Reason string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("cannot project %s: %s", e.From, e.Reason)
}

func (e *ProjectionError) Unwrap() error { return ErrProjection }
