package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every fatal decode error matches exactly one of these with errors.Is.
var (
	// ErrIO reports a read or seek failure from the byte source.
	ErrIO = errors.New("i/o error")

	// ErrNotEBML reports that the first element is not an EBML header.
	ErrNotEBML = errors.New("not an EBML file")

	// ErrNoSegment reports that no Segment element follows the EBML header.
	ErrNoSegment = errors.New("no segment element")

	ErrTruncatedVarint     = errors.New("truncated variable-length integer")
	ErrTruncatedPayload    = errors.New("truncated element payload")
	ErrInvalidVarintLength = errors.New("invalid variable-length integer length")

	// ErrIllegalUnknownSize reports an unknown-size marker on an element that
	// cannot be streamed, or on an element that cannot be skipped.
	ErrIllegalUnknownSize = errors.New("illegal unknown element size")

	ErrChildExceedsParent = errors.New("child element exceeds parent bound")

	// ErrTypeMismatch reports a payload width the element's value kind cannot hold.
	ErrTypeMismatch = errors.New("payload width incompatible with element type")

	ErrInvalidUTF8  = errors.New("invalid UTF-8 string")
	ErrInvalidASCII = errors.New("invalid ASCII string")

	// ErrZeroNotAllowed reports a zero value in a field that must be non-zero.
	ErrZeroNotAllowed = errors.New("zero value not allowed")

	// ErrPayloadTooLarge reports a scalar payload above the configured limit.
	ErrPayloadTooLarge = errors.New("element payload too large")
)

// CorruptedFileError is returned when file structure is invalid.
//
// Err holds the error kind (one of the Err* sentinels) and is returned by Unwrap.
type CorruptedFileError struct {
	Err     error
	Path    string
	Element string
	Reason  string
	Offset  int64
}

func (e *CorruptedFileError) Error() string {
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	if e.Element != "" {
		reason = e.Element + ": " + reason
	}
	msg := fmt.Sprintf("corrupted file at offset %d: %s", e.Offset, reason)
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

func (e *CorruptedFileError) Unwrap() error {
	return e.Err
}

// ReadError wraps a failure of the underlying reader or seeker.
//
// ReadError matches ErrIO with errors.Is and unwraps to the source error.
type ReadError struct {
	Err    error
	Path   string
	What   string
	Offset int64
}

func (e *ReadError) Error() string {
	msg := fmt.Sprintf("failed to read %s at offset %d: %v", e.What, e.Offset, e.Err)
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *ReadError) Is(target error) bool {
	return target == ErrIO
}
