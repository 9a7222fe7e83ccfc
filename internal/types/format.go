package types

import "strings"

// Format represents the container flavour declared by the EBML DocType.
type Format int

const (
	// FormatUnknown represents an EBML document type this library has no name for.
	FormatUnknown Format = iota
	// FormatMatroska represents Matroska files (DocType "matroska").
	FormatMatroska
	// FormatWebM represents WebM files (DocType "webm").
	FormatWebM
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatMatroska:
		return "Matroska"
	case FormatWebM:
		return "WebM"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMatroska:
		return []string{".mkv", ".mka", ".mks", ".mk3d"}
	case FormatWebM:
		return []string{".webm"}
	default:
		return nil
	}
}

// FormatFromDocType maps an EBML DocType string to a Format.
//
// Matching ignores case and surrounding whitespace.
func FormatFromDocType(docType string) Format {
	switch strings.ToLower(strings.TrimSpace(docType)) {
	case "matroska":
		return FormatMatroska
	case "webm":
		return FormatWebM
	default:
		return FormatUnknown
	}
}
