package matroska

import (
	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Video holds the video settings of a track.
type Video struct {
	pixelWidth     types.Field[uint64]
	pixelHeight    types.Field[uint64]
	displayWidth   types.Field[uint64]
	displayHeight  types.Field[uint64]
	displayUnit    types.Field[uint64]
	flagInterlaced types.Field[uint64]
	stereoMode     types.Field[uint64]
	alphaMode      types.Field[uint64]
}

func newVideo(m *ebml.Master) *Video {
	v := &Video{
		pixelWidth:     m.Uint(ebml.IDPixelWidth),
		pixelHeight:    m.Uint(ebml.IDPixelHeight),
		displayWidth:   m.Uint(ebml.IDDisplayWidth),
		displayHeight:  m.Uint(ebml.IDDisplayHeight),
		displayUnit:    m.Uint(ebml.IDDisplayUnit),
		flagInterlaced: m.Uint(ebml.IDFlagInterlaced),
		stereoMode:     m.Uint(ebml.IDStereoMode),
		alphaMode:      m.Uint(ebml.IDAlphaMode),
	}

	// Display dimensions default to the pixel dimensions.
	if !v.displayWidth.Present() {
		v.displayWidth = types.Absent(v.pixelWidth.Value(), v.pixelWidth.Present())
	}
	if !v.displayHeight.Present() {
		v.displayHeight = types.Absent(v.pixelHeight.Value(), v.pixelHeight.Present())
	}

	return v
}

// PixelWidth returns the encoded width in pixels.
func (v *Video) PixelWidth() types.Field[uint64] { return v.pixelWidth }

// PixelHeight returns the encoded height in pixels.
func (v *Video) PixelHeight() types.Field[uint64] { return v.pixelHeight }

// DisplayWidth returns the display width in DisplayUnit. Defaults to
// PixelWidth.
func (v *Video) DisplayWidth() types.Field[uint64] { return v.displayWidth }

// DisplayHeight returns the display height in DisplayUnit. Defaults to
// PixelHeight.
func (v *Video) DisplayHeight() types.Field[uint64] { return v.displayHeight }

// DisplayUnit returns the unit of the display dimensions. Defaults to 0
// (pixels).
func (v *Video) DisplayUnit() types.Field[uint64] { return v.displayUnit }

// FlagInterlaced returns the interlacing mode. Defaults to 0 (undetermined).
func (v *Video) FlagInterlaced() types.Field[uint64] { return v.flagInterlaced }

// StereoMode returns the stereo-3D layout. Defaults to 0 (mono).
func (v *Video) StereoMode() types.Field[uint64] { return v.stereoMode }

// AlphaMode returns whether blocks carry alpha data. Defaults to 0.
func (v *Video) AlphaMode() types.Field[uint64] { return v.alphaMode }
