package matroska

import (
	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Audio holds the audio settings of a track.
type Audio struct {
	samplingFrequency       types.Field[float64]
	outputSamplingFrequency types.Field[float64]
	channels                types.Field[uint64]
	bitDepth                types.Field[uint64]
}

func newAudio(m *ebml.Master) *Audio {
	return &Audio{
		samplingFrequency:       m.Float(ebml.IDSamplingFrequency),
		outputSamplingFrequency: m.Float(ebml.IDOutputSamplingFrequency),
		channels:                m.Uint(ebml.IDChannels),
		bitDepth:                m.Uint(ebml.IDBitDepth),
	}
}

// SamplingFrequency returns the sampling frequency in Hz, 8000 by default.
func (a *Audio) SamplingFrequency() types.Field[float64] {
	return a.samplingFrequency
}

// OutputSamplingFrequency returns the real output frequency for
// SBR-style codecs. It has no default.
func (a *Audio) OutputSamplingFrequency() types.Field[float64] {
	return a.outputSamplingFrequency
}

// Channels returns the channel count. It is never zero and defaults to 1.
func (a *Audio) Channels() types.Field[uint64] {
	return a.channels
}

// BitDepth returns the bits per sample. It has no default.
func (a *Audio) BitDepth() types.Field[uint64] {
	return a.bitDepth
}
