// Package binary provides a bounds-aware sequential reader over a seekable byte source.
package binary

import (
	"io"

	"github.com/simonhull/mkvmeta/internal/types"
)

// Reader wraps an io.ReadSeeker, tracking the current offset and the source
// size so callers can check bounds before reading, and skip by seeking.
//
// Read failures from the source are returned as *types.ReadError. Running
// out of data is reported as io.EOF (nothing read) or io.ErrUnexpectedEOF
// (partial read) so callers can map it to their own truncation error.
type Reader struct {
	r      io.ReadSeeker
	path   string
	offset int64
	size   int64
}

// NewReader creates a Reader starting at the source's current position.
//
// The source size is found by seeking to the end, after which the
// position is restored.
func NewReader(r io.ReadSeeker, path string) (*Reader, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, &types.ReadError{Path: path, What: "current position", Err: err}
	}
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &types.ReadError{Path: path, What: "source size", Offset: start, Err: err}
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, &types.ReadError{Path: path, What: "start position", Offset: start, Err: err}
	}

	return &Reader{
		r:      r,
		path:   path,
		offset: start,
		size:   size,
	}, nil
}

// Path returns the file path associated with this reader.
func (r *Reader) Path() string {
	return r.path
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Size returns the size of the source in bytes.
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining returns the number of bytes between the current offset and the end of the source.
func (r *Reader) Remaining() int64 {
	if r.offset >= r.size {
		return 0
	}
	return r.size - r.offset
}

// ReadFull reads exactly len(b) bytes and advances the offset.
//
// what describes the data being read and appears in error messages.
func (r *Reader) ReadFull(b []byte, what string) error {
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)

	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return err
	default:
		return &types.ReadError{Path: r.path, What: what, Offset: r.offset, Err: err}
	}
}

// SeekTo moves to an absolute offset.
func (r *Reader) SeekTo(off int64, what string) error {
	if off == r.offset {
		return nil
	}
	if _, err := r.r.Seek(off, io.SeekStart); err != nil {
		return &types.ReadError{Path: r.path, What: what, Offset: off, Err: err}
	}
	r.offset = off
	return nil
}

// Skip advances the offset by n bytes without reading them.
func (r *Reader) Skip(n int64, what string) error {
	if n == 0 {
		return nil
	}
	return r.SeekTo(r.offset+n, what)
}
