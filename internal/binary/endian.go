package binary

import (
	"encoding/binary"
	"math"
)

// ReadValue reads a fixed-width big-endian value of type T and advances the offset.
//
// Example:
//
//	lead, err := binary.ReadValue[uint8](r, "element id")
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	var zero T
	var size int

	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf := make([]byte, size)
	if err := r.ReadFull(buf, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}

// Uint packs up to eight big-endian bytes into an unsigned integer.
// An empty slice yields 0. Callers must reject slices longer than 8 bytes.
func Uint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// Int packs up to eight big-endian bytes into a two's complement signed integer,
// sign-extending from the width of b. An empty slice yields 0.
func Int(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	v := Uint(b)
	shift := uint(64 - 8*len(b))
	return int64(v<<shift) >> shift
}

// Float32 decodes a 4-byte big-endian IEEE-754 value.
func Float32(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

// Float64 decodes an 8-byte big-endian IEEE-754 value.
func Float64(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}
