// Package matroska maps decoded EBML trees onto Matroska records and drives
// the open sequence of a Matroska or WebM file.
package matroska

import (
	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Header is the EBML header of a file.
//
// Version and ReadVersion carry no default: an absent element is reported
// as absent. The other fields fall back to the EBML defaults.
type Header struct {
	version            types.Field[uint64]
	readVersion        types.Field[uint64]
	maxIDLength        types.Field[uint64]
	maxSizeLength      types.Field[uint64]
	docType            types.Field[string]
	docTypeVersion     types.Field[uint64]
	docTypeReadVersion types.Field[uint64]
}

func newHeader(m *ebml.Master) *Header {
	return &Header{
		version:            m.Uint(ebml.IDEBMLVersion),
		readVersion:        m.Uint(ebml.IDEBMLReadVersion),
		maxIDLength:        m.Uint(ebml.IDEBMLMaxIDLength),
		maxSizeLength:      m.Uint(ebml.IDEBMLMaxSizeLength),
		docType:            m.String(ebml.IDDocType),
		docTypeVersion:     m.Uint(ebml.IDDocTypeVersion),
		docTypeReadVersion: m.Uint(ebml.IDDocTypeReadVersion),
	}
}

// Version returns the EBML version the file was written with. No default.
func (h *Header) Version() types.Field[uint64] { return h.version }

// ReadVersion returns the minimum EBML version needed to read the file.
// No default.
func (h *Header) ReadVersion() types.Field[uint64] { return h.readVersion }

// MaxIDLength returns the longest element ID in bytes. Defaults to 4.
func (h *Header) MaxIDLength() types.Field[uint64] { return h.maxIDLength }

// MaxSizeLength returns the longest element size in bytes. Defaults to 8.
func (h *Header) MaxSizeLength() types.Field[uint64] { return h.maxSizeLength }

// DocTypeVersion returns the version of the document type. Defaults to 1.
func (h *Header) DocTypeVersion() types.Field[uint64] { return h.docTypeVersion }

// DocTypeReadVersion returns the minimum document type version a reader
// must support. Defaults to 1.
func (h *Header) DocTypeReadVersion() types.Field[uint64] { return h.docTypeReadVersion }

// DocType returns the document type, "matroska" when the element is absent.
func (h *Header) DocType() string {
	return h.docType.Value()
}

// DocTypeField returns the document type with its presence.
func (h *Header) DocTypeField() types.Field[string] {
	return h.docType
}

// Format returns the container format named by the document type.
func (h *Header) Format() types.Format {
	return types.FormatFromDocType(h.DocType())
}
