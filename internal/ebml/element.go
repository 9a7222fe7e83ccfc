package ebml

import (
	"io"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/types"
)

// Header is a decoded element header. It is only valid for one decode step.
type Header struct {
	ID         ID
	Size       uint64 // payload size, meaningless when Unknown
	Unknown    bool   // size carried the unknown-size marker
	Offset     int64  // first byte of the ID
	DataOffset int64  // first byte of the payload
}

// End returns the offset just past the payload of a sized element.
func (h Header) End() int64 {
	return h.DataOffset + int64(h.Size)
}

// Len returns the encoded length of the ID and size.
func (h Header) Len() int64 {
	return h.DataOffset - h.Offset
}

// Bound is the byte window children are read from.
//
// A bounded window ends exactly at End. An open window belongs to an
// unknown-size element: End is only the limit inherited from the nearest
// sized ancestor (or the source size), and the window is closed by the
// builder when a header belonging to an ancestor appears.
type Bound struct {
	End  int64
	Open bool
}

// Bounded returns a window ending at end.
func Bounded(end int64) Bound {
	return Bound{End: end}
}

// OpenBound returns an unknown-size window limited by limit.
func OpenBound(limit int64) Bound {
	return Bound{End: limit, Open: true}
}

// Tokenizer reads one element header at a time from a Reader.
type Tokenizer struct {
	r *binary.Reader
}

// NewTokenizer returns a Tokenizer reading from r.
func NewTokenizer(r *binary.Reader) *Tokenizer {
	return &Tokenizer{r: r}
}

// Reader returns the underlying reader.
func (t *Tokenizer) Reader() *binary.Reader {
	return t.r
}

// Next decodes the element header at the current offset.
//
// It returns io.EOF when the offset has reached the end of b or the end of
// the source. A sized element must fit inside both b and the source.
func (t *Tokenizer) Next(b Bound) (Header, error) {
	start := t.r.Offset()
	if start >= b.End || start >= t.r.Size() {
		return Header{}, io.EOF
	}

	limit := min(b.End, t.r.Size())

	idBytes, err := t.readVint(limit, maxIDLength, "element id")
	if err != nil {
		return Header{}, err
	}
	id, err := DecodeID(idBytes)
	if err != nil {
		return Header{}, t.corrupt(err, start)
	}

	sizeOffset := t.r.Offset()
	sizeBytes, err := t.readVint(limit, maxSizeLength, "element size")
	if err != nil {
		return Header{}, err
	}
	size, unknown, err := DecodeSize(sizeBytes)
	if err != nil {
		return Header{}, t.corrupt(err, sizeOffset)
	}

	h := Header{
		ID:         id,
		Size:       size,
		Unknown:    unknown,
		Offset:     start,
		DataOffset: t.r.Offset(),
	}
	if unknown {
		return h, nil
	}

	if size > uint64(t.r.Remaining()) {
		return Header{}, t.corrupt(types.ErrTruncatedPayload, start)
	}
	if h.End() > b.End {
		return Header{}, t.corrupt(types.ErrChildExceedsParent, start)
	}

	return h, nil
}

// readVint reads one vint whose encoding must end at or before limit.
func (t *Tokenizer) readVint(limit int64, maxLen int, what string) ([]byte, error) {
	start := t.r.Offset()

	lead, err := binary.ReadValue[uint8](t.r, what)
	if err != nil {
		return nil, t.readErr(err, start)
	}

	n := VintLength(lead)
	if n == 0 || n > maxLen {
		return nil, t.corrupt(types.ErrInvalidVarintLength, start)
	}
	if start+int64(n) > limit {
		return nil, t.corrupt(types.ErrTruncatedVarint, start)
	}

	buf := make([]byte, n)
	buf[0] = lead
	if err := t.r.ReadFull(buf[1:], what); err != nil {
		return nil, t.readErr(err, start)
	}
	return buf, nil
}

// ReadPayload reads the whole payload of h.
func (t *Tokenizer) ReadPayload(h Header) ([]byte, error) {
	if err := t.r.SeekTo(h.DataOffset, "element data"); err != nil {
		return nil, err
	}
	buf := make([]byte, h.Size)
	if err := t.r.ReadFull(buf, "element data"); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, t.corrupt(types.ErrTruncatedPayload, h.Offset)
		}
		return nil, err
	}
	return buf, nil
}

// Skip moves past the payload of a sized element without reading it.
func (t *Tokenizer) Skip(h Header) error {
	return t.r.SeekTo(h.End(), "next element")
}

// Rewind moves back to the start of h so it can be decoded again.
func (t *Tokenizer) Rewind(h Header) error {
	return t.r.SeekTo(h.Offset, "element header")
}

func (t *Tokenizer) readErr(err error, offset int64) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return t.corrupt(types.ErrTruncatedVarint, offset)
	}
	return err
}

func (t *Tokenizer) corrupt(err error, offset int64) error {
	return &types.CorruptedFileError{
		Err:    err,
		Path:   t.r.Path(),
		Offset: offset,
	}
}
