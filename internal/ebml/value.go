package ebml

import (
	"bytes"
	"unicode/utf8"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Kind is the EBML value type of an element.
type Kind uint8

const (
	KindMaster Kind = iota + 1
	KindUint
	KindInt
	KindFloat
	KindString // printable ASCII
	KindUTF8
	KindDate
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindUint:
		return "uinteger"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindUTF8:
		return "utf-8"
	case KindDate:
		return "date"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Value is a decoded scalar. Only the field matching Kind is meaningful.
type Value struct {
	Bytes []byte
	Str   string
	Uint  uint64
	Int   int64
	Float float64
	Kind  Kind
}

// UintValue returns a KindUint value.
func UintValue(v uint64) Value { return Value{Kind: KindUint, Uint: v} }

// FloatValue returns a KindFloat value.
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// StringValue returns a value of kind k (KindString or KindUTF8).
func StringValue(k Kind, s string) Value { return Value{Kind: k, Str: s} }

// DecodeUint decodes a big-endian unsigned integer of 0 to 8 bytes.
func DecodeUint(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, types.ErrTypeMismatch
	}
	return binary.Uint(b), nil
}

// DecodeInt decodes a big-endian two's complement integer of 0 to 8 bytes.
func DecodeInt(b []byte) (int64, error) {
	if len(b) > 8 {
		return 0, types.ErrTypeMismatch
	}
	return binary.Int(b), nil
}

// DecodeFloat decodes an IEEE-754 float of 0, 4 or 8 bytes.
func DecodeFloat(b []byte) (float64, error) {
	switch len(b) {
	case 0:
		return 0, nil
	case 4:
		return float64(binary.Float32(b)), nil
	case 8:
		return binary.Float64(b), nil
	default:
		return 0, types.ErrTypeMismatch
	}
}

// DecodeASCII decodes an ASCII string, trimming trailing NUL padding.
func DecodeASCII(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	for _, c := range b {
		if c > 0x7F {
			return "", types.ErrInvalidASCII
		}
	}
	return string(b), nil
}

// DecodeUTF8 decodes a UTF-8 string, trimming trailing NUL padding.
func DecodeUTF8(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	if !utf8.Valid(b) {
		return "", types.ErrInvalidUTF8
	}
	return string(b), nil
}

// DecodeDate decodes an 8-byte signed count of nanoseconds since the
// Matroska epoch, 2001-01-01T00:00:00 UTC. The value is not converted.
func DecodeDate(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, types.ErrTypeMismatch
	}
	return binary.Int(b), nil
}

// checkWidth rejects payload widths a kind can never decode, before the
// payload is read.
func checkWidth(k Kind, size uint64) error {
	switch k {
	case KindUint, KindInt:
		if size > 8 {
			return types.ErrTypeMismatch
		}
	case KindFloat:
		if size != 0 && size != 4 && size != 8 {
			return types.ErrTypeMismatch
		}
	case KindDate:
		if size != 8 {
			return types.ErrTypeMismatch
		}
	}
	return nil
}

// decodeValue decodes payload b as kind k.
func decodeValue(k Kind, b []byte) (Value, error) {
	v := Value{Kind: k}
	var err error

	switch k {
	case KindUint:
		v.Uint, err = DecodeUint(b)
	case KindInt:
		v.Int, err = DecodeInt(b)
	case KindFloat:
		v.Float, err = DecodeFloat(b)
	case KindString:
		v.Str, err = DecodeASCII(b)
	case KindUTF8:
		v.Str, err = DecodeUTF8(b)
	case KindDate:
		v.Int, err = DecodeDate(b)
	case KindBinary:
		v.Bytes = b
	default:
		err = types.ErrTypeMismatch
	}

	return v, err
}
