package mkvmeta

import (
	"github.com/simonhull/mkvmeta/internal/matroska"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Field is a decoded element value together with whether the element was
// present in the file. See types.Field.
type Field[T any] = types.Field[T]

// Header is the EBML header of a file.
type Header = matroska.Header

// Info is the segment information.
type Info = matroska.Info

// TrackEntry describes one track.
type TrackEntry = matroska.TrackEntry

// Audio holds the audio settings of a track.
type Audio = matroska.Audio

// Video holds the video settings of a track.
type Video = matroska.Video

// ContentEncoding is one transform in a track's content encoding chain.
type ContentEncoding = matroska.ContentEncoding

// ContentCompression holds the compression settings of a content encoding.
type ContentCompression = matroska.ContentCompression

// ContentEncryption holds the encryption settings of a content encoding.
type ContentEncryption = matroska.ContentEncryption

// TrackType is the kind of a track.
type TrackType = matroska.TrackType

// Re-export the track types.
const (
	TrackTypeUnknown  = matroska.TrackTypeUnknown
	TrackTypeVideo    = matroska.TrackTypeVideo
	TrackTypeAudio    = matroska.TrackTypeAudio
	TrackTypeComplex  = matroska.TrackTypeComplex
	TrackTypeLogo     = matroska.TrackTypeLogo
	TrackTypeSubtitle = matroska.TrackTypeSubtitle
	TrackTypeButtons  = matroska.TrackTypeButtons
	TrackTypeControl  = matroska.TrackTypeControl
	TrackTypeMetadata = matroska.TrackTypeMetadata
)

// ContentEncodingType is the kind of a content encoding.
type ContentEncodingType = matroska.ContentEncodingType

// Re-export the content encoding types.
const (
	ContentEncodingCompression = matroska.ContentEncodingCompression
	ContentEncodingEncryption  = matroska.ContentEncodingEncryption
)

// Epoch is the reference point of Matroska dates, 2001-01-01 UTC.
var Epoch = matroska.Epoch
