package mkvmeta

import (
	"io"

	"github.com/pkg/errors"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/matroska"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown  = types.FormatUnknown
	FormatMatroska = types.FormatMatroska
	FormatWebM     = types.FormatWebM
)

// FormatFromDocType maps an EBML DocType to a Format.
func FormatFromDocType(docType string) Format {
	return types.FormatFromDocType(docType)
}

// DetectFormat reads only the EBML header of r and reports the format it
// names. r is left positioned after the header.
//
// A file that is not EBML fails with ErrNotEBML.
func DetectFormat(r io.ReadSeeker) (Format, error) {
	br, err := binary.NewReader(r, "")
	if err != nil {
		return FormatUnknown, err
	}
	h, err := matroska.ReadHeader(br, ebml.Config{})
	if err != nil {
		return FormatUnknown, errors.Wrap(err, "detect format")
	}
	return h.Format(), nil
}
