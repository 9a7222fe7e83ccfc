package binary

import (
	"math"
	"testing"
)

func TestUint(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"empty", nil, 0},
		{"one byte", []byte{0xFF}, 0xFF},
		{"three bytes", []byte{0x0F, 0x42, 0x40}, 1000000},
		{"eight bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uint(tt.in); got != tt.want {
				t.Errorf("Uint(%x) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int64
	}{
		{"empty", nil, 0},
		{"positive one byte", []byte{0x7F}, 127},
		{"negative one byte", []byte{0xFF}, -1},
		{"negative two bytes", []byte{0xFF, 0x00}, -256},
		{"positive two bytes", []byte{0x01, 0x00}, 256},
		{"min three bytes", []byte{0x80, 0x00, 0x00}, -8388608},
		{"eight bytes", []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.in); got != tt.want {
				t.Errorf("Int(%x) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	if got := Float32([]byte{0x47, 0x2C, 0x44, 0x00}); got != 44100 {
		t.Errorf("Float32 = %v, want 44100", got)
	}
	if got := Float64([]byte{0x40, 0xE7, 0x70, 0x00, 0x00, 0x00, 0x00, 0x00}); got != 48000 {
		t.Errorf("Float64 = %v, want 48000", got)
	}
}
