// Package ebml decodes EBML element trees: variable-length integers, element
// headers, typed values and schema-driven master element traversal.
package ebml

import (
	"math/bits"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/types"
)

const (
	maxIDLength   = 4
	maxSizeLength = 8
)

// VintLength returns the total encoded length of a vint from its leading byte,
// or 0 when the byte carries no length marker.
func VintLength(lead byte) int {
	if lead == 0 {
		return 0
	}
	return bits.LeadingZeros8(lead) + 1
}

// DecodeID decodes an element ID, keeping the length-marker bits.
func DecodeID(b []byte) (ID, error) {
	if len(b) == 0 {
		return 0, types.ErrTruncatedVarint
	}
	n := VintLength(b[0])
	if n == 0 || n > maxIDLength {
		return 0, types.ErrInvalidVarintLength
	}
	if len(b) < n {
		return 0, types.ErrTruncatedVarint
	}
	return ID(binary.Uint(b[:n])), nil
}

// DecodeSize decodes an element data size, stripping the length marker.
//
// unknown is true when every data bit is set, the EBML unknown-size marker.
func DecodeSize(b []byte) (size uint64, unknown bool, err error) {
	if len(b) == 0 {
		return 0, false, types.ErrTruncatedVarint
	}
	n := VintLength(b[0])
	if n == 0 {
		return 0, false, types.ErrInvalidVarintLength
	}
	if len(b) < n {
		return 0, false, types.ErrTruncatedVarint
	}

	mask := uint64(1)<<(7*uint(n)) - 1
	size = binary.Uint(b[:n]) & mask
	return size, size == mask, nil
}
