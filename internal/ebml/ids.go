package ebml

import "fmt"

// ID is an EBML element ID, including its length-marker bits.
type ID uint32

// String formats the ID the way the Matroska specification writes it.
func (id ID) String() string {
	return fmt.Sprintf("0x%X", uint32(id))
}

// EBML header and global elements.
const (
	IDEBML               ID = 0x1A45DFA3
	IDEBMLVersion        ID = 0x4286
	IDEBMLReadVersion    ID = 0x42F7
	IDEBMLMaxIDLength    ID = 0x42F2
	IDEBMLMaxSizeLength  ID = 0x42F3
	IDDocType            ID = 0x4282
	IDDocTypeVersion     ID = 0x4287
	IDDocTypeReadVersion ID = 0x4285

	IDVoid  ID = 0xEC
	IDCRC32 ID = 0xBF
)

// Segment and its top-level children.
const (
	IDSegment     ID = 0x18538067
	IDSeekHead    ID = 0x114D9B74
	IDInfo        ID = 0x1549A966
	IDTracks      ID = 0x1654AE6B
	IDCues        ID = 0x1C53BB6B
	IDCluster     ID = 0x1F43B675
	IDAttachments ID = 0x1941A469
	IDChapters    ID = 0x1043A770
	IDTags        ID = 0x1254C367
)

// SeekHead.
const (
	IDSeek         ID = 0x4DBB
	IDSeekID       ID = 0x53AB
	IDSeekPosition ID = 0x53AC
)

// Info.
const (
	IDSegmentUID      ID = 0x73A4
	IDSegmentFilename ID = 0x7384
	IDPrevUID         ID = 0x3CB923
	IDPrevFilename    ID = 0x3C83AB
	IDNextUID         ID = 0x3EB923
	IDNextFilename    ID = 0x3E83BB
	IDTimestampScale  ID = 0x2AD7B1
	IDDuration        ID = 0x4489
	IDDateUTC         ID = 0x4461
	IDTitle           ID = 0x7BA9
	IDMuxingApp       ID = 0x4D80
	IDWritingApp      ID = 0x5741
)

// Tracks and TrackEntry.
const (
	IDTrackEntry      ID = 0xAE
	IDTrackNumber     ID = 0xD7
	IDTrackUID        ID = 0x73C5
	IDTrackType       ID = 0x83
	IDFlagEnabled     ID = 0xB9
	IDFlagDefault     ID = 0x88
	IDFlagForced      ID = 0x55AA
	IDFlagLacing      ID = 0x9C
	IDDefaultDuration ID = 0x23E383
	IDName            ID = 0x536E
	IDLanguage        ID = 0x22B59C
	IDCodecID         ID = 0x86
	IDCodecPrivate    ID = 0x63A2
	IDCodecName       ID = 0x258688
	IDCodecDelay      ID = 0x56AA
	IDSeekPreRoll     ID = 0x56BB
)

// Video.
const (
	IDVideo          ID = 0xE0
	IDFlagInterlaced ID = 0x9A
	IDStereoMode     ID = 0x53B8
	IDAlphaMode      ID = 0x53C0
	IDPixelWidth     ID = 0xB0
	IDPixelHeight    ID = 0xBA
	IDDisplayWidth   ID = 0x54B0
	IDDisplayHeight  ID = 0x54BA
	IDDisplayUnit    ID = 0x54B2
)

// Audio.
const (
	IDAudio                   ID = 0xE1
	IDSamplingFrequency       ID = 0xB5
	IDOutputSamplingFrequency ID = 0x78B5
	IDChannels                ID = 0x9F
	IDBitDepth                ID = 0x6264
)

// ContentEncodings.
const (
	IDContentEncodings     ID = 0x6D80
	IDContentEncoding      ID = 0x6240
	IDContentEncodingOrder ID = 0x5031
	IDContentEncodingScope ID = 0x5032
	IDContentEncodingType  ID = 0x5033
	IDContentCompression   ID = 0x5034
	IDContentCompAlgo      ID = 0x4254
	IDContentCompSettings  ID = 0x4255
	IDContentEncryption    ID = 0x5035
	IDContentEncAlgo       ID = 0x47E1
	IDContentEncKeyID      ID = 0x47E2
)

// Cues.
const (
	IDCuePoint           ID = 0xBB
	IDCueTime            ID = 0xB3
	IDCueTrackPositions  ID = 0xB7
	IDCueTrack           ID = 0xF7
	IDCueClusterPosition ID = 0xF1
)

// Cluster.
const (
	IDTimestamp      ID = 0xE7
	IDPosition       ID = 0xA7
	IDPrevSize       ID = 0xAB
	IDSimpleBlock    ID = 0xA3
	IDBlockGroup     ID = 0xA0
	IDBlock          ID = 0xA1
	IDBlockDuration  ID = 0x9B
	IDReferenceBlock ID = 0xFB
)

// Attachments, Chapters and Tags (first level only).
const (
	IDAttachedFile ID = 0x61A7
	IDEditionEntry ID = 0x45B9
	IDTag          ID = 0x7373
)
