package matroska

import (
	"time"

	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Epoch is the reference point of Matroska dates.
var Epoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info is the segment information.
type Info struct {
	timestampScale  types.Field[uint64]
	duration        types.Field[float64]
	dateUTC         types.Field[int64]
	title           types.Field[string]
	muxingApp       types.Field[string]
	writingApp      types.Field[string]
	segmentFilename types.Field[string]
	segmentUID      []byte
}

func newInfo(m *ebml.Master) *Info {
	return &Info{
		timestampScale:  m.Uint(ebml.IDTimestampScale),
		duration:        m.Float(ebml.IDDuration),
		dateUTC:         m.Date(ebml.IDDateUTC),
		title:           m.String(ebml.IDTitle),
		muxingApp:       m.String(ebml.IDMuxingApp),
		writingApp:      m.String(ebml.IDWritingApp),
		segmentFilename: m.String(ebml.IDSegmentFilename),
		segmentUID:      m.Bytes(ebml.IDSegmentUID).Value(),
	}
}

// TimestampScale returns the length of one timestamp tick in nanoseconds.
// Its value is never zero and defaults to 1,000,000.
func (i *Info) TimestampScale() types.Field[uint64] {
	return i.timestampScale
}

// Duration returns the segment duration as stored, in TimestampScale units.
func (i *Info) Duration() types.Field[float64] {
	return i.duration
}

// DateUTC returns the muxing date in nanoseconds since Epoch, as stored.
func (i *Info) DateUTC() types.Field[int64] {
	return i.dateUTC
}

// Date returns DateUTC as a time.Time.
func (i *Info) Date() (time.Time, bool) {
	ns, ok := i.dateUTC.Get()
	if !ok {
		return time.Time{}, false
	}
	return Epoch.Add(time.Duration(ns)), true
}

// Title returns the segment title.
func (i *Info) Title() types.Field[string] { return i.title }

// MuxingApp returns the name of the muxing library.
func (i *Info) MuxingApp() types.Field[string] { return i.muxingApp }

// WritingApp returns the name of the application that wrote the file.
func (i *Info) WritingApp() types.Field[string] { return i.writingApp }

// SegmentFilename returns the file name the segment was written as.
func (i *Info) SegmentFilename() types.Field[string] { return i.segmentFilename }

// SegmentUID returns a copy of the segment UID, or nil.
func (i *Info) SegmentUID() []byte {
	return clone(i.segmentUID)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
