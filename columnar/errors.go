package columnar

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hepvec/engine"
)

var (
	// ErrLengthMismatch is wrapped by every LengthError.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrCorrupt reports a block that cannot be decoded.
	ErrCorrupt = errors.New("corrupt block")
	// ErrChecksum reports a block whose checksum does not match.
	ErrChecksum = errors.New("block checksum mismatch")
	// ErrUnsupportedCompression reports an unknown compression in a block header.
	ErrUnsupportedCompression = errors.New("unsupported compression")
	// ErrVersion reports a block written by an unknown format version.
	ErrVersion = errors.New("unsupported block version")
)

// LengthError reports operands or columns of different lengths.
// It matches both ErrLengthMismatch and engine.ErrArgument.
type LengthError struct {
	Op   string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d, got %d", e.Op, e.Want, e.Got)
}

func (e *LengthError) Unwrap() []error { return []error{ErrLengthMismatch, engine.ErrArgument} }

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
