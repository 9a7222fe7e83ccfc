package matroska

import (
	"fmt"

	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// ContentEncodingType is the kind of transform a content encoding applies.
// Codes other than the named ones are kept as they are.
type ContentEncodingType uint64

const (
	ContentEncodingCompression ContentEncodingType = 0
	ContentEncodingEncryption  ContentEncodingType = 1
)

// String returns the name of the encoding type.
func (t ContentEncodingType) String() string {
	switch t {
	case ContentEncodingCompression:
		return "Compression"
	case ContentEncodingEncryption:
		return "Encryption"
	default:
		return fmt.Sprintf("Unknown(%d)", uint64(t))
	}
}

// ContentEncoding is one transform in a track's encoding chain.
type ContentEncoding struct {
	order       types.Field[uint64]
	scope       types.Field[uint64]
	typ         types.Field[uint64]
	compression *ContentCompression
	encryption  *ContentEncryption
}

// ContentCompression holds the compression settings of an encoding.
type ContentCompression struct {
	algo     types.Field[uint64]
	settings []byte
}

// ContentEncryption holds the encryption settings of an encoding.
type ContentEncryption struct {
	algo  types.Field[uint64]
	keyID []byte
}

func newContentEncoding(m *ebml.Master) ContentEncoding {
	e := ContentEncoding{
		order: m.Uint(ebml.IDContentEncodingOrder),
		scope: m.Uint(ebml.IDContentEncodingScope),
		typ:   m.Uint(ebml.IDContentEncodingType),
	}
	if c := m.Child(ebml.IDContentCompression); c != nil {
		e.compression = &ContentCompression{
			algo:     c.Uint(ebml.IDContentCompAlgo),
			settings: c.Bytes(ebml.IDContentCompSettings).Value(),
		}
	}
	if c := m.Child(ebml.IDContentEncryption); c != nil {
		e.encryption = &ContentEncryption{
			algo:  c.Uint(ebml.IDContentEncAlgo),
			keyID: c.Bytes(ebml.IDContentEncKeyID).Value(),
		}
	}
	return e
}

// newContentEncodings returns nil when m is nil or holds no entries.
func newContentEncodings(m *ebml.Master) []ContentEncoding {
	if m == nil {
		return nil
	}
	entries := m.Children(ebml.IDContentEncoding)
	if len(entries) == 0 {
		return nil
	}
	out := make([]ContentEncoding, 0, len(entries))
	for _, c := range entries {
		out = append(out, newContentEncoding(c))
	}
	return out
}

// Order returns the position of this encoding in the chain, 0 by default.
func (e ContentEncoding) Order() types.Field[uint64] { return e.order }

// Scope returns the bit field of what the encoding applies to, 1 (frames) by default.
func (e ContentEncoding) Scope() types.Field[uint64] { return e.scope }

// Type returns the kind of transform, compression by default.
func (e ContentEncoding) Type() ContentEncodingType {
	return ContentEncodingType(e.typ.Value())
}

// TypeField returns the raw type code with its presence.
func (e ContentEncoding) TypeField() types.Field[uint64] { return e.typ }

// Compression returns the compression settings, or nil.
func (e ContentEncoding) Compression() *ContentCompression { return e.compression }

// Encryption returns the encryption settings, or nil.
func (e ContentEncoding) Encryption() *ContentEncryption { return e.encryption }

func (e ContentEncoding) clone() ContentEncoding {
	if e.compression != nil {
		c := *e.compression
		c.settings = clone(c.settings)
		e.compression = &c
	}
	if e.encryption != nil {
		c := *e.encryption
		c.keyID = clone(c.keyID)
		e.encryption = &c
	}
	return e
}

// Algo returns the compression algorithm. Defaults to 0 (zlib).
func (c *ContentCompression) Algo() types.Field[uint64] { return c.algo }

// Settings returns a copy of the algorithm settings, or nil.
func (c *ContentCompression) Settings() []byte { return clone(c.settings) }

// Algo returns the encryption algorithm. Defaults to 0 (not encrypted).
func (c *ContentEncryption) Algo() types.Field[uint64] { return c.algo }

// KeyID returns a copy of the key identifier, or nil.
func (c *ContentEncryption) KeyID() []byte { return clone(c.keyID) }
