package matroska

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Document is everything decoded from one file. It holds no reference to
// the source.
type Document struct {
	Header *Header
	Info   *Info
	Tracks []TrackEntry
}

// Parse decodes the EBML header, the first Segment's Info and every track
// from r. Clusters, Cues and the other large Segment children are skipped.
func Parse(r *binary.Reader, cfg ebml.Config) (*Document, error) {
	b := ebml.NewBuilder(r, ebml.Matroska, cfg)
	root := ebml.OpenBound(r.Size())

	header, err := readHeader(b, root)
	if err != nil {
		return nil, err
	}

	h, err := findSegment(b, root)
	if err != nil {
		return nil, err
	}

	segment, err := b.Build(ebml.ContextRoot, h, root)
	if err != nil {
		return nil, errors.Wrap(err, "parse segment")
	}

	b.Logger().WithFields(logrus.Fields{
		"offset":  h.Offset,
		"unknown": h.Unknown,
	}).Debug("segment decoded")

	return newDocument(header, segment), nil
}

// ReadHeader decodes only the EBML header at the start of r.
func ReadHeader(r *binary.Reader, cfg ebml.Config) (*Header, error) {
	b := ebml.NewBuilder(r, ebml.Matroska, cfg)
	m, err := readHeader(b, ebml.OpenBound(r.Size()))
	if err != nil {
		return nil, err
	}
	return newHeader(m), nil
}

func readHeader(b *ebml.Builder, root ebml.Bound) (*ebml.Master, error) {
	r := b.Reader()

	h, err := b.Next(root)
	if err != nil {
		var readErr *types.ReadError
		if errors.As(err, &readErr) {
			return nil, err
		}
		return nil, notEBML(r, err)
	}
	if h.ID != ebml.IDEBML {
		return nil, notEBML(r, errors.Errorf("first element is %s", h.ID))
	}

	m, err := b.Build(ebml.ContextRoot, h, root)
	if err != nil {
		return nil, errors.Wrap(err, "parse EBML header")
	}
	return m, nil
}

// findSegment skips top-level elements until the first Segment header.
func findSegment(b *ebml.Builder, root ebml.Bound) (ebml.Header, error) {
	for {
		h, err := b.Next(root)
		if err == io.EOF {
			return ebml.Header{}, &types.CorruptedFileError{
				Err:    types.ErrNoSegment,
				Path:   b.Reader().Path(),
				Offset: b.Reader().Offset(),
			}
		}
		if err != nil {
			return ebml.Header{}, errors.Wrap(err, "find segment")
		}

		if h.ID == ebml.IDSegment {
			return h, nil
		}
		if h.Unknown {
			return ebml.Header{}, &types.CorruptedFileError{
				Err:     types.ErrIllegalUnknownSize,
				Path:    b.Reader().Path(),
				Element: b.Schema().Name(ebml.ContextRoot, h.ID),
				Offset:  h.Offset,
				Reason:  "unknown-size element before segment cannot be skipped",
			}
		}

		b.Logger().WithFields(logrus.Fields{
			"id":     h.ID.String(),
			"offset": h.Offset,
		}).Debug("skipping top-level element")
		if err := b.Skip(h); err != nil {
			return ebml.Header{}, err
		}
	}
}

func newDocument(header, segment *ebml.Master) *Document {
	info := segment.Child(ebml.IDInfo)
	if info == nil {
		info = ebml.EmptyMaster(ebml.Matroska, ebml.ContextInfo)
	}

	doc := &Document{
		Header: newHeader(header),
		Info:   newInfo(info),
	}
	for _, tracks := range segment.Children(ebml.IDTracks) {
		for _, entry := range tracks.Children(ebml.IDTrackEntry) {
			doc.Tracks = append(doc.Tracks, newTrackEntry(entry))
		}
	}
	return doc
}

func notEBML(r *binary.Reader, cause error) error {
	return &types.CorruptedFileError{
		Err:    types.ErrNotEBML,
		Path:   r.Path(),
		Reason: errors.Wrap(cause, types.ErrNotEBML.Error()).Error(),
	}
}
