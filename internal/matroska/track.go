package matroska

import (
	"fmt"

	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// TrackType is the kind of a track. Codes without a name decode to
// TrackTypeUnknown; the raw code stays available from TrackEntry.TypeCode.
type TrackType uint64

const (
	TrackTypeUnknown  TrackType = 0 // absent or unrecognised code
	TrackTypeVideo    TrackType = 0x01
	TrackTypeAudio    TrackType = 0x02
	TrackTypeComplex  TrackType = 0x03
	TrackTypeLogo     TrackType = 0x10
	TrackTypeSubtitle TrackType = 0x11
	TrackTypeButtons  TrackType = 0x12
	TrackTypeControl  TrackType = 0x20
	TrackTypeMetadata TrackType = 0x21
)

var trackTypeNames = map[TrackType]string{
	TrackTypeVideo:    "Video",
	TrackTypeAudio:    "Audio",
	TrackTypeComplex:  "Complex",
	TrackTypeLogo:     "Logo",
	TrackTypeSubtitle: "Subtitle",
	TrackTypeButtons:  "Buttons",
	TrackTypeControl:  "Control",
	TrackTypeMetadata: "Metadata",
}

// Known reports whether t is one of the named track types.
func (t TrackType) Known() bool {
	_, ok := trackTypeNames[t]
	return ok
}

// Code returns the numeric track type code.
func (t TrackType) Code() uint64 {
	return uint64(t)
}

// String returns the name of the track type.
func (t TrackType) String() string {
	if name, ok := trackTypeNames[t]; ok {
		return name
	}
	if t == TrackTypeUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("Unknown(0x%X)", uint64(t))
}

// TrackEntry describes one track. It is a value: copies share nothing
// mutable, and Clone returns a deep copy.
type TrackEntry struct {
	number          types.Field[uint64]
	uid             types.Field[uint64]
	trackType       types.Field[uint64]
	flagEnabled     types.Field[bool]
	flagDefault     types.Field[bool]
	flagForced      types.Field[bool]
	flagLacing      types.Field[bool]
	defaultDuration types.Field[uint64]
	codecDelay      types.Field[uint64]
	seekPreRoll     types.Field[uint64]
	name            types.Field[string]
	language        types.Field[string]
	codecID         types.Field[string]
	codecName       types.Field[string]
	codecPrivate    []byte
	audio           *Audio
	video           *Video
	encodings       []ContentEncoding
}

func isSet(v uint64) bool { return v != 0 }

func newTrackEntry(m *ebml.Master) TrackEntry {
	t := TrackEntry{
		number:          m.Uint(ebml.IDTrackNumber),
		uid:             m.Uint(ebml.IDTrackUID),
		trackType:       m.Uint(ebml.IDTrackType),
		flagEnabled:     types.Map(m.Uint(ebml.IDFlagEnabled), isSet),
		flagDefault:     types.Map(m.Uint(ebml.IDFlagDefault), isSet),
		flagForced:      types.Map(m.Uint(ebml.IDFlagForced), isSet),
		flagLacing:      types.Map(m.Uint(ebml.IDFlagLacing), isSet),
		defaultDuration: m.Uint(ebml.IDDefaultDuration),
		codecDelay:      m.Uint(ebml.IDCodecDelay),
		seekPreRoll:     m.Uint(ebml.IDSeekPreRoll),
		name:            m.String(ebml.IDName),
		language:        m.String(ebml.IDLanguage),
		codecID:         m.String(ebml.IDCodecID),
		codecName:       m.String(ebml.IDCodecName),
		codecPrivate:    m.Bytes(ebml.IDCodecPrivate).Value(),
		encodings:       newContentEncodings(m.Child(ebml.IDContentEncodings)),
	}
	if a := m.Child(ebml.IDAudio); a != nil {
		t.audio = newAudio(a)
	}
	if v := m.Child(ebml.IDVideo); v != nil {
		t.video = newVideo(v)
	}
	return t
}

// Type returns the track type. A missing TrackType element, or a code
// without a name, yields TrackTypeUnknown.
func (t TrackEntry) Type() TrackType {
	tt := TrackType(t.trackType.Value())
	if !tt.Known() {
		return TrackTypeUnknown
	}
	return tt
}

// TypeCode returns the raw TrackType code as stored in the file.
func (t TrackEntry) TypeCode() types.Field[uint64] { return t.trackType }

// Number returns the TrackNumber used by blocks to reference the track.
func (t TrackEntry) Number() types.Field[uint64] { return t.number }

// UID returns the TrackUID.
func (t TrackEntry) UID() types.Field[uint64] { return t.uid }

// FlagEnabled reports whether the track is usable. Defaults to true.
func (t TrackEntry) FlagEnabled() types.Field[bool] { return t.flagEnabled }

// FlagDefault reports whether the track is eligible for automatic
// selection. Defaults to true.
func (t TrackEntry) FlagDefault() types.Field[bool] { return t.flagDefault }

// FlagForced reports whether the track must be played. Defaults to false.
func (t TrackEntry) FlagForced() types.Field[bool] { return t.flagForced }

// FlagLacing reports whether the track may use lacing. Defaults to true.
func (t TrackEntry) FlagLacing() types.Field[bool] { return t.flagLacing }

// DefaultDuration returns the nanoseconds per frame.
func (t TrackEntry) DefaultDuration() types.Field[uint64] { return t.defaultDuration }

// CodecDelay returns the codec's built-in delay in nanoseconds. Defaults to 0.
func (t TrackEntry) CodecDelay() types.Field[uint64] { return t.codecDelay }

// SeekPreRoll returns the nanoseconds to decode before a seek target.
// Defaults to 0.
func (t TrackEntry) SeekPreRoll() types.Field[uint64] { return t.seekPreRoll }

// Name returns the human-readable track name.
func (t TrackEntry) Name() types.Field[string] { return t.name }

// Language returns the track language. Defaults to "eng".
func (t TrackEntry) Language() types.Field[string] { return t.language }

// CodecID returns the codec identifier, such as "A_OPUS".
func (t TrackEntry) CodecID() types.Field[string] { return t.codecID }

// CodecName returns the human-readable codec name.
func (t TrackEntry) CodecName() types.Field[string] { return t.codecName }

// CodecPrivate returns a copy of the codec initialization data, or nil.
func (t TrackEntry) CodecPrivate() []byte {
	return clone(t.codecPrivate)
}

// Audio returns the audio settings, or nil if the track has none.
func (t TrackEntry) Audio() *Audio {
	return t.audio
}

// Video returns the video settings, or nil if the track has none.
func (t TrackEntry) Video() *Video {
	return t.video
}

// ContentEncodings returns the encoding chain in file order. It is nil
// exactly when the track has no ContentEncodings element with entries;
// it is never empty.
func (t TrackEntry) ContentEncodings() []ContentEncoding {
	if t.encodings == nil {
		return nil
	}
	out := make([]ContentEncoding, len(t.encodings))
	copy(out, t.encodings)
	return out
}

// Clone returns a deep copy of t.
func (t TrackEntry) Clone() TrackEntry {
	c := t
	c.codecPrivate = clone(t.codecPrivate)
	if t.audio != nil {
		a := *t.audio
		c.audio = &a
	}
	if t.video != nil {
		v := *t.video
		c.video = &v
	}
	if t.encodings != nil {
		c.encodings = make([]ContentEncoding, len(t.encodings))
		for i, e := range t.encodings {
			c.encodings[i] = e.clone()
		}
	}
	return c
}
