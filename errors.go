package hepvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/ragged"
	"github.com/hupe1980/hepvec/resolve"
	"github.com/hupe1980/hepvec/vtype"
)

var (
	// ErrConstruction is returned when field names do not identify exactly
	// one coordinate system.
	ErrConstruction = vtype.ErrConstruction
	// ErrArgument is returned for invalid argument combinations, such as both
	// or neither of beta and gamma for a boost.
	ErrArgument = engine.ErrArgument
	// ErrAttribute is returned when a coordinate name is unknown for a vector.
	ErrAttribute = engine.ErrAttribute
	// ErrCapability is returned when an operation needs more dimensions.
	ErrCapability = engine.ErrCapability

	ErrLengthMismatch         = columnar.ErrLengthMismatch
	ErrCorrupt                = columnar.ErrCorrupt
	ErrChecksum               = columnar.ErrChecksum
	ErrUnsupportedCompression = columnar.ErrUnsupportedCompression
	ErrVersion                = columnar.ErrVersion

	ErrListMismatch = ragged.ErrListMismatch
	ErrOffsets      = ragged.ErrOffsets
	ErrUnknownClass = resolve.ErrUnknownClass
	ErrClassExists  = resolve.ErrClassExists
)

// translateError normalizes errors of the lower layers. A descriptor that
// cannot be reshaped is an argument error to callers of this package.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pe *vtype.ProjectionError
	if errors.As(err, &pe) && !errors.Is(err, ErrArgument) {
		return fmt.Errorf("%w: %w", ErrArgument, err)
	}
	return err
}
