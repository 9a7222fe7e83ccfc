package mkvmeta

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/matroska"
)

// File is a decoded Matroska or WebM file.
//
// A File owns all of its data. The source it was decoded from is not kept
// open, and a File can be shared between goroutines.
//
//	file, err := mkvmeta.Open("movie.mkv")
//	if err != nil {
//		return err
//	}
//	fmt.Println(file.Info().Duration().Value())
type File struct {
	// Path to the file, empty when opened from a reader
	Path string

	// Container format named by the EBML DocType
	Format Format

	// Source size in bytes
	Size int64

	header *Header
	info   *Info
	tracks []TrackEntry
}

// Header returns the EBML header.
func (f *File) Header() *Header {
	return f.header
}

// Info returns the segment information. It is never nil: a file without an
// Info element reports the defaults.
func (f *File) Info() *Info {
	return f.info
}

// Tracks returns the tracks in file order. The slice is a copy.
func (f *File) Tracks() []TrackEntry {
	out := make([]TrackEntry, len(f.tracks))
	copy(out, f.tracks)
	return out
}

// TracksOfType returns the tracks of type t in file order. TrackTypeUnknown
// selects tracks whose TrackType code is absent or unrecognised.
func (f *File) TracksOfType(t TrackType) []TrackEntry {
	var out []TrackEntry
	for _, tr := range f.tracks {
		if tr.Type() == t {
			out = append(out, tr)
		}
	}
	return out
}

// Open opens a Matroska or WebM file and reads its metadata.
//
// Only the EBML header, the segment information and the track list are
// read. The file is closed before Open returns.
//
// Example:
//
//	file, err := mkvmeta.Open("movie.mkv")
//	if err != nil {
//		return err
//	}
//	for _, t := range file.Tracks() {
//		fmt.Println(t.Type(), t.CodecID().Value())
//	}
func Open(path string, opts ...Option) (*File, error) {
	return OpenContext(context.Background(), path, opts...)
}

// OpenContext is like Open but stops reading when ctx is done.
//
// Cancellation is checked on every read and seek of the file, so a
// cancelled context aborts the decode with an error matching both ErrIO
// and ctx.Err().
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	file, err := mkvmeta.OpenContext(ctx, "movie.mkv")
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open file")
	}
	defer f.Close()

	return openReader(&contextReader{ctx: ctx, r: f}, path, opts)
}

// OpenReader reads metadata from r, starting at its current position.
//
// r is only used until OpenReader returns.
func OpenReader(r io.ReadSeeker, opts ...Option) (*File, error) {
	return openReader(r, "", opts)
}

func openReader(r io.ReadSeeker, path string, opts []Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	br, err := binary.NewReader(r, path)
	if err != nil {
		return nil, err
	}

	doc, err := matroska.Parse(br, options.config())
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:   path,
		Format: doc.Header.Format(),
		Size:   br.Size(),
		header: doc.Header,
		info:   doc.Info,
		tracks: doc.Tracks,
	}

	if options.logger != nil {
		options.logger.WithFields(logrus.Fields{
			"path":   path,
			"format": file.Format.String(),
			"tracks": len(file.tracks),
		}).Debug("file decoded")
	}

	return file, nil
}

// OpenMany opens multiple files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, OpenMany returns nil and the first error.
//
// Example:
//
//	files, err := mkvmeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %d tracks\n", f.Path, len(f.Tracks()))
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	return OpenManyWith(ctx, paths, nil)
}

// OpenManyWith is OpenMany with options applied to every file.
func OpenManyWith(ctx context.Context, paths []string, opts []Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return errors.Wrap(err, path)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// contextReader fails reads and seeks once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.ReadSeeker
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func (c *contextReader) Seek(offset int64, whence int) (int64, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Seek(offset, whence)
}
