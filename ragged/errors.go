package ragged

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hepvec/engine"
)

var (
	// ErrListMismatch is wrapped by every ListError.
	ErrListMismatch = errors.New("list structure mismatch")
	// ErrOffsets reports offsets that do not describe the inner array.
	ErrOffsets = errors.New("invalid offsets")
)

// ListError reports operands whose lists do not line up. List is -1 when the
// number of lists differs.
type ListError struct {
	Op   string
	List int
	Want int64
	Got  int64
}

func (e *ListError) Error() string {
	if e.List < 0 {
		return fmt.Sprintf("%s: expected %d lists, got %d", e.Op, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: list %d has %d elements, expected %d", e.Op, e.List, e.Got, e.Want)
}

// Unwrap matches both ErrListMismatch and engine.ErrArgument.
func (e *ListError) Unwrap() []error { return []error{ErrListMismatch, engine.ErrArgument} }

func offsetsError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOffsets, fmt.Sprintf(format, args...))
}
