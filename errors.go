package mkvmeta

import (
	"github.com/simonhull/mkvmeta/internal/types"
)

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exporting from internal/types to maintain public API.
type CorruptedFileError = types.CorruptedFileError

// ReadError is an alias to types.ReadError.
// Re-exporting from internal/types to maintain public API.
type ReadError = types.ReadError

// Error kinds. Use errors.Is to test for them.
var (
	ErrIO                  = types.ErrIO
	ErrNotEBML             = types.ErrNotEBML
	ErrNoSegment           = types.ErrNoSegment
	ErrTruncatedVarint     = types.ErrTruncatedVarint
	ErrTruncatedPayload    = types.ErrTruncatedPayload
	ErrInvalidVarintLength = types.ErrInvalidVarintLength
	ErrIllegalUnknownSize  = types.ErrIllegalUnknownSize
	ErrChildExceedsParent  = types.ErrChildExceedsParent
	ErrTypeMismatch        = types.ErrTypeMismatch
	ErrInvalidUTF8         = types.ErrInvalidUTF8
	ErrInvalidASCII        = types.ErrInvalidASCII
	ErrZeroNotAllowed      = types.ErrZeroNotAllowed
	ErrPayloadTooLarge     = types.ErrPayloadTooLarge
)
