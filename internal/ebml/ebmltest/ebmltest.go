// Package ebmltest builds EBML byte streams for tests.
package ebmltest

import (
	"encoding/binary"
	"math"

	"github.com/simonhull/mkvmeta/internal/ebml"
)

// ID encodes an element ID.
func ID(id ebml.ID) []byte {
	switch {
	case id <= 0xFF:
		return []byte{byte(id)}
	case id <= 0xFFFF:
		return []byte{byte(id >> 8), byte(id)}
	case id <= 0xFFFFFF:
		return []byte{byte(id >> 16), byte(id >> 8), byte(id)}
	default:
		return []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	}
}

// Size encodes n as a size vint of the shortest length that can hold it
// without being mistaken for the unknown-size marker.
func Size(n uint64) []byte {
	length := 1
	for length < 8 && n >= uint64(1)<<(7*uint(length))-1 {
		length++
	}
	return SizeN(n, length)
}

// SizeN encodes n as a size vint of exactly length bytes.
func SizeN(n uint64, length int) []byte {
	b := make([]byte, length)
	v := n | uint64(1)<<(7*uint(length))
	for i := length - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// UnknownSize returns the unknown-size marker of the given length.
func UnknownSize(length int) []byte {
	return SizeN(uint64(1)<<(7*uint(length))-1, length)
}

// Concat joins byte slices.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Element encodes a sized element whose payload is the concatenation of children.
func Element(id ebml.ID, children ...[]byte) []byte {
	payload := Concat(children...)
	return Concat(ID(id), Size(uint64(len(payload))), payload)
}

// Unsized encodes an element with the unknown-size marker followed by children.
func Unsized(id ebml.ID, children ...[]byte) []byte {
	return Concat(ID(id), UnknownSize(8), Concat(children...))
}

// Uint encodes an unsigned integer element using the fewest bytes.
func Uint(id ebml.ID, v uint64) []byte {
	n := 1
	for n < 8 && v >= uint64(1)<<(8*uint(n)) {
		n++
	}
	return UintN(id, v, n)
}

// UintN encodes an unsigned integer element with an n-byte payload.
func UintN(id ebml.ID, v uint64, n int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return Element(id, buf[8-n:])
}

// Int encodes a signed integer element with an 8-byte payload.
func Int(id ebml.ID, v int64) []byte {
	return UintN(id, uint64(v), 8)
}

// Float32 encodes a 4-byte float element.
func Float32(id ebml.ID, v float32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	return Element(id, buf[:])
}

// Float64 encodes an 8-byte float element.
func Float64(id ebml.ID, v float64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	return Element(id, buf[:])
}

// String encodes a string element.
func String(id ebml.ID, s string) []byte {
	return Element(id, []byte(s))
}

// Bytes encodes a binary element.
func Bytes(id ebml.ID, b []byte) []byte {
	return Element(id, b)
}

// Date encodes a date element from nanoseconds since the Matroska epoch.
func Date(id ebml.ID, ns int64) []byte {
	return Int(id, ns)
}

// Header returns a minimal EBML header with the given DocType.
func Header(docType string) []byte {
	return Element(ebml.IDEBML,
		Uint(ebml.IDEBMLVersion, 1),
		Uint(ebml.IDEBMLReadVersion, 1),
		Uint(ebml.IDEBMLMaxIDLength, 4),
		Uint(ebml.IDEBMLMaxSizeLength, 8),
		String(ebml.IDDocType, docType),
		Uint(ebml.IDDocTypeVersion, 4),
		Uint(ebml.IDDocTypeReadVersion, 2),
	)
}
