package ebml

// Context identifies the master element whose children are being decoded.
// The same ID may mean different things, or nothing, in different contexts.
type Context uint8

const (
	ContextRoot Context = iota
	ContextEBML
	ContextSegment
	ContextSeekHead
	ContextSeek
	ContextInfo
	ContextTracks
	ContextTrackEntry
	ContextVideo
	ContextAudio
	ContextContentEncodings
	ContextContentEncoding
	ContextContentCompression
	ContextContentEncryption
	ContextCues
	ContextCuePoint
	ContextCueTrackPositions
	ContextCluster
	ContextBlockGroup
	ContextAttachments
	ContextChapters
	ContextTags
	ContextOpaque // children are not described
)

var contextNames = map[Context]string{
	ContextRoot:               "Root",
	ContextEBML:               "EBML",
	ContextSegment:            "Segment",
	ContextSeekHead:           "SeekHead",
	ContextSeek:               "Seek",
	ContextInfo:               "Info",
	ContextTracks:             "Tracks",
	ContextTrackEntry:         "TrackEntry",
	ContextVideo:              "Video",
	ContextAudio:              "Audio",
	ContextContentEncodings:   "ContentEncodings",
	ContextContentEncoding:    "ContentEncoding",
	ContextContentCompression: "ContentCompression",
	ContextContentEncryption:  "ContentEncryption",
	ContextCues:               "Cues",
	ContextCuePoint:           "CuePoint",
	ContextCueTrackPositions:  "CueTrackPositions",
	ContextCluster:            "Cluster",
	ContextBlockGroup:         "BlockGroup",
	ContextAttachments:        "Attachments",
	ContextChapters:           "Chapters",
	ContextTags:               "Tags",
	ContextOpaque:             "Opaque",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "Context(?)"
}

// Multiplicity says whether an element may occur more than once in its parent.
type Multiplicity uint8

const (
	// Single elements keep the last occurrence.
	Single Multiplicity = iota
	// Repeated elements keep every occurrence in file order.
	Repeated
)

// Def describes an element within one parent context.
type Def struct {
	Default      Value
	Name         string
	ID           ID
	Kind         Kind
	Multiplicity Multiplicity

	// Children is the context of a master element's payload.
	Children Context

	// HasDefault is set when the schema implies Default for an absent element.
	HasDefault bool

	// Unsized allows the unknown-size marker (streamed elements).
	Unsized bool

	// Skip marks elements that are recognised but never materialized.
	Skip bool

	// NonZero rejects a decoded zero.
	NonZero bool
}

// Schema maps (context, id) pairs to element definitions.
type Schema struct {
	defs    map[Context]map[ID]*Def
	parents map[Context]Context
	globals map[ID]*Def
}

// Lookup returns the definition of id inside ctx.
func (s *Schema) Lookup(ctx Context, id ID) (*Def, bool) {
	if d, ok := s.defs[ctx][id]; ok {
		return d, true
	}
	if ctx != ContextRoot {
		if d, ok := s.globals[id]; ok {
			return d, true
		}
	}
	return nil, false
}

// Parent returns the context enclosing ctx.
func (s *Schema) Parent(ctx Context) (Context, bool) {
	p, ok := s.parents[ctx]
	return p, ok
}

// ResolvesAbove reports whether id is a valid child of any context enclosing
// ctx, up to and including the root. Global elements never resolve above,
// since they are valid in ctx itself.
func (s *Schema) ResolvesAbove(ctx Context, id ID) bool {
	for {
		parent, ok := s.Parent(ctx)
		if !ok {
			return false
		}
		if _, ok := s.defs[parent][id]; ok {
			return true
		}
		ctx = parent
	}
}

// Name returns a display name for id in ctx, or "Unknown".
func (s *Schema) Name(ctx Context, id ID) string {
	if d, ok := s.Lookup(ctx, id); ok {
		return d.Name
	}
	return "Unknown"
}

func (s *Schema) add(ctx Context, defs ...*Def) {
	m, ok := s.defs[ctx]
	if !ok {
		m = make(map[ID]*Def, len(defs))
		s.defs[ctx] = m
	}
	for _, d := range defs {
		m[d.ID] = d
		if d.Kind == KindMaster && d.Children != ContextOpaque {
			s.parents[d.Children] = ctx
		}
	}
}

func master(id ID, name string, children Context) *Def {
	return &Def{ID: id, Name: name, Kind: KindMaster, Children: children}
}

func scalar(id ID, name string, kind Kind) *Def {
	return &Def{ID: id, Name: name, Kind: kind}
}

func (d *Def) repeated() *Def {
	d.Multiplicity = Repeated
	return d
}

func (d *Def) skipped() *Def {
	d.Skip = true
	return d
}

func (d *Def) unsized() *Def {
	d.Unsized = true
	return d
}

func (d *Def) nonZero() *Def {
	d.NonZero = true
	return d
}

func (d *Def) withDefault(v Value) *Def {
	d.Default = v
	d.HasDefault = true
	return d
}

// Matroska is the schema for Matroska and WebM documents.
var Matroska = newMatroskaSchema()

func newMatroskaSchema() *Schema {
	s := &Schema{
		defs:    make(map[Context]map[ID]*Def),
		parents: make(map[Context]Context),
		globals: map[ID]*Def{
			IDVoid:  scalar(IDVoid, "Void", KindBinary).repeated().skipped(),
			IDCRC32: scalar(IDCRC32, "CRC-32", KindBinary).skipped(),
		},
	}

	s.add(ContextRoot,
		master(IDEBML, "EBML", ContextEBML),
		master(IDSegment, "Segment", ContextSegment).unsized(),
	)

	s.add(ContextEBML,
		scalar(IDEBMLVersion, "EBMLVersion", KindUint),
		scalar(IDEBMLReadVersion, "EBMLReadVersion", KindUint),
		scalar(IDEBMLMaxIDLength, "EBMLMaxIDLength", KindUint).withDefault(UintValue(4)),
		scalar(IDEBMLMaxSizeLength, "EBMLMaxSizeLength", KindUint).withDefault(UintValue(8)),
		scalar(IDDocType, "DocType", KindString).withDefault(StringValue(KindString, "matroska")),
		scalar(IDDocTypeVersion, "DocTypeVersion", KindUint).withDefault(UintValue(1)),
		scalar(IDDocTypeReadVersion, "DocTypeReadVersion", KindUint).withDefault(UintValue(1)),
	)

	s.add(ContextSegment,
		master(IDSeekHead, "SeekHead", ContextSeekHead).repeated().skipped(),
		master(IDInfo, "Info", ContextInfo),
		master(IDTracks, "Tracks", ContextTracks).repeated(),
		master(IDCues, "Cues", ContextCues).skipped(),
		master(IDCluster, "Cluster", ContextCluster).repeated().skipped().unsized(),
		master(IDAttachments, "Attachments", ContextAttachments).skipped(),
		master(IDChapters, "Chapters", ContextChapters).skipped(),
		master(IDTags, "Tags", ContextTags).repeated().skipped(),
	)

	s.add(ContextSeekHead,
		master(IDSeek, "Seek", ContextSeek).repeated(),
	)
	s.add(ContextSeek,
		scalar(IDSeekID, "SeekID", KindBinary),
		scalar(IDSeekPosition, "SeekPosition", KindUint),
	)

	s.add(ContextInfo,
		scalar(IDSegmentUID, "SegmentUID", KindBinary),
		scalar(IDSegmentFilename, "SegmentFilename", KindUTF8),
		scalar(IDPrevUID, "PrevUID", KindBinary),
		scalar(IDPrevFilename, "PrevFilename", KindUTF8),
		scalar(IDNextUID, "NextUID", KindBinary),
		scalar(IDNextFilename, "NextFilename", KindUTF8),
		scalar(IDTimestampScale, "TimestampScale", KindUint).withDefault(UintValue(1000000)).nonZero(),
		scalar(IDDuration, "Duration", KindFloat),
		scalar(IDDateUTC, "DateUTC", KindDate),
		scalar(IDTitle, "Title", KindUTF8),
		scalar(IDMuxingApp, "MuxingApp", KindUTF8),
		scalar(IDWritingApp, "WritingApp", KindUTF8),
	)

	s.add(ContextTracks,
		master(IDTrackEntry, "TrackEntry", ContextTrackEntry).repeated(),
	)

	s.add(ContextTrackEntry,
		scalar(IDTrackNumber, "TrackNumber", KindUint),
		scalar(IDTrackUID, "TrackUID", KindUint),
		scalar(IDTrackType, "TrackType", KindUint),
		scalar(IDFlagEnabled, "FlagEnabled", KindUint).withDefault(UintValue(1)),
		scalar(IDFlagDefault, "FlagDefault", KindUint).withDefault(UintValue(1)),
		scalar(IDFlagForced, "FlagForced", KindUint).withDefault(UintValue(0)),
		scalar(IDFlagLacing, "FlagLacing", KindUint).withDefault(UintValue(1)),
		scalar(IDDefaultDuration, "DefaultDuration", KindUint),
		scalar(IDName, "Name", KindUTF8),
		scalar(IDLanguage, "Language", KindString).withDefault(StringValue(KindString, "eng")),
		scalar(IDCodecID, "CodecID", KindString),
		scalar(IDCodecPrivate, "CodecPrivate", KindBinary),
		scalar(IDCodecName, "CodecName", KindUTF8),
		scalar(IDCodecDelay, "CodecDelay", KindUint).withDefault(UintValue(0)),
		scalar(IDSeekPreRoll, "SeekPreRoll", KindUint).withDefault(UintValue(0)),
		master(IDVideo, "Video", ContextVideo),
		master(IDAudio, "Audio", ContextAudio),
		master(IDContentEncodings, "ContentEncodings", ContextContentEncodings),
	)

	s.add(ContextVideo,
		scalar(IDFlagInterlaced, "FlagInterlaced", KindUint).withDefault(UintValue(0)),
		scalar(IDStereoMode, "StereoMode", KindUint).withDefault(UintValue(0)),
		scalar(IDAlphaMode, "AlphaMode", KindUint).withDefault(UintValue(0)),
		scalar(IDPixelWidth, "PixelWidth", KindUint),
		scalar(IDPixelHeight, "PixelHeight", KindUint),
		scalar(IDDisplayWidth, "DisplayWidth", KindUint),
		scalar(IDDisplayHeight, "DisplayHeight", KindUint),
		scalar(IDDisplayUnit, "DisplayUnit", KindUint).withDefault(UintValue(0)),
	)

	s.add(ContextAudio,
		scalar(IDSamplingFrequency, "SamplingFrequency", KindFloat).withDefault(FloatValue(8000.0)),
		scalar(IDOutputSamplingFrequency, "OutputSamplingFrequency", KindFloat),
		scalar(IDChannels, "Channels", KindUint).withDefault(UintValue(1)).nonZero(),
		scalar(IDBitDepth, "BitDepth", KindUint),
	)

	s.add(ContextContentEncodings,
		master(IDContentEncoding, "ContentEncoding", ContextContentEncoding).repeated(),
	)

	s.add(ContextContentEncoding,
		scalar(IDContentEncodingOrder, "ContentEncodingOrder", KindUint).withDefault(UintValue(0)),
		scalar(IDContentEncodingScope, "ContentEncodingScope", KindUint).withDefault(UintValue(1)),
		scalar(IDContentEncodingType, "ContentEncodingType", KindUint).withDefault(UintValue(0)),
		master(IDContentCompression, "ContentCompression", ContextContentCompression),
		master(IDContentEncryption, "ContentEncryption", ContextContentEncryption),
	)

	s.add(ContextContentCompression,
		scalar(IDContentCompAlgo, "ContentCompAlgo", KindUint).withDefault(UintValue(0)),
		scalar(IDContentCompSettings, "ContentCompSettings", KindBinary),
	)

	s.add(ContextContentEncryption,
		scalar(IDContentEncAlgo, "ContentEncAlgo", KindUint).withDefault(UintValue(0)),
		scalar(IDContentEncKeyID, "ContentEncKeyID", KindBinary),
	)

	s.add(ContextCues,
		master(IDCuePoint, "CuePoint", ContextCuePoint).repeated(),
	)
	s.add(ContextCuePoint,
		scalar(IDCueTime, "CueTime", KindUint),
		master(IDCueTrackPositions, "CueTrackPositions", ContextCueTrackPositions).repeated(),
	)
	s.add(ContextCueTrackPositions,
		scalar(IDCueTrack, "CueTrack", KindUint),
		scalar(IDCueClusterPosition, "CueClusterPosition", KindUint),
	)

	s.add(ContextCluster,
		scalar(IDTimestamp, "Timestamp", KindUint),
		scalar(IDPosition, "Position", KindUint),
		scalar(IDPrevSize, "PrevSize", KindUint),
		scalar(IDSimpleBlock, "SimpleBlock", KindBinary).repeated(),
		master(IDBlockGroup, "BlockGroup", ContextBlockGroup).repeated(),
	)
	s.add(ContextBlockGroup,
		scalar(IDBlock, "Block", KindBinary),
		scalar(IDBlockDuration, "BlockDuration", KindUint),
		scalar(IDReferenceBlock, "ReferenceBlock", KindInt).repeated(),
	)

	s.add(ContextAttachments,
		master(IDAttachedFile, "AttachedFile", ContextOpaque).repeated(),
	)
	s.add(ContextChapters,
		master(IDEditionEntry, "EditionEntry", ContextOpaque).repeated(),
	)
	s.add(ContextTags,
		master(IDTag, "Tag", ContextOpaque).repeated(),
	)

	return s
}
