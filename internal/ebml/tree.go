package ebml

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/types"
)

// DefaultMaxPayload is the largest scalar payload read into memory by default.
const DefaultMaxPayload = 16 << 20

// Config controls a Builder.
type Config struct {
	// Logger receives debug events for skipped and duplicate elements.
	// Nil discards them.
	Logger logrus.FieldLogger

	// MaxPayload caps the size of a single scalar payload. Zero means
	// DefaultMaxPayload.
	MaxPayload int64
}

// Builder decodes master elements into Master trees, driving a Tokenizer
// with a Schema.
type Builder struct {
	*Tokenizer
	schema     *Schema
	log        logrus.FieldLogger
	maxPayload int64
}

// NewBuilder returns a Builder reading from r.
func NewBuilder(r *binary.Reader, s *Schema, cfg Config) *Builder {
	log := cfg.Logger
	if log == nil {
		log = discardLogger()
	}
	maxPayload := cfg.MaxPayload
	if maxPayload <= 0 {
		maxPayload = DefaultMaxPayload
	}

	return &Builder{
		Tokenizer:  NewTokenizer(r),
		schema:     s,
		log:        log,
		maxPayload: maxPayload,
	}
}

// Logger returns the logger debug events are sent to.
func (b *Builder) Logger() logrus.FieldLogger {
	return b.log
}

// Schema returns the schema used by b.
func (b *Builder) Schema() *Schema {
	return b.schema
}

// Build decodes the master element h, found in the parent context within
// the window within. The reader must be positioned at h.DataOffset.
//
// On return the reader is positioned after the element. For an unknown-size
// element that is the first header that does not belong to it, which is left
// unread for the caller.
func (b *Builder) Build(parent Context, h Header, within Bound) (*Master, error) {
	def, ok := b.schema.Lookup(parent, h.ID)
	if !ok || def.Kind != KindMaster {
		return nil, b.corruptf(types.ErrTypeMismatch, h, "", "element %s is not a master element in %s", h.ID, parent)
	}
	if h.Unknown && !def.Unsized {
		return nil, b.corrupt(types.ErrIllegalUnknownSize, h, def.Name)
	}

	m := newMaster(b.schema, def.Children, h)
	if err := b.fill(m, b.window(h, within)); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *Builder) window(h Header, within Bound) Bound {
	if h.Unknown {
		return OpenBound(within.End)
	}
	return Bounded(h.End())
}

// fill decodes the children of m until w is exhausted or, for an open
// window, until a header belonging to an ancestor is found.
func (b *Builder) fill(m *Master, w Bound) error {
	for {
		h, err := b.Next(w)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		def, ok := b.schema.Lookup(m.Context, h.ID)
		if !ok {
			if w.Open && b.schema.ResolvesAbove(m.Context, h.ID) {
				return b.Rewind(h)
			}
			if h.Unknown {
				return b.corrupt(types.ErrIllegalUnknownSize, h, "")
			}
			b.logger(m.Context, h, "Unknown").Debug("skipping unknown element")
			if err := b.Skip(h); err != nil {
				return err
			}
			continue
		}

		if h.Unknown && !def.Unsized {
			return b.corrupt(types.ErrIllegalUnknownSize, h, def.Name)
		}

		if def.Skip {
			if err := b.skip(def, h, w); err != nil {
				return err
			}
			continue
		}

		e := &Element{Def: def, Offset: h.Offset}
		if def.Kind == KindMaster {
			child := newMaster(b.schema, def.Children, h)
			if err := b.fill(child, b.window(h, w)); err != nil {
				return err
			}
			e.Master = child
		} else {
			v, err := b.readValue(def, h)
			if err != nil {
				return err
			}
			e.Value = v
		}

		if m.add(e) {
			b.logger(m.Context, h, def.Name).Debug("duplicate element, keeping last")
		}
	}
}

// skip passes over an element without materializing it.
func (b *Builder) skip(def *Def, h Header, w Bound) error {
	b.logger(def.Children, h, def.Name).Debug("skipping element")
	if !h.Unknown {
		return b.Skip(h)
	}
	return b.skim(def.Children, OpenBound(w.End))
}

// skim walks an unknown-size element header by header, skipping every
// payload, until it is closed by a header that belongs to an ancestor.
func (b *Builder) skim(ctx Context, w Bound) error {
	for {
		h, err := b.Next(w)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		def, ok := b.schema.Lookup(ctx, h.ID)
		if !ok && b.schema.ResolvesAbove(ctx, h.ID) {
			return b.Rewind(h)
		}

		if h.Unknown {
			if !ok || !def.Unsized {
				name := ""
				if ok {
					name = def.Name
				}
				return b.corrupt(types.ErrIllegalUnknownSize, h, name)
			}
			if err := b.skim(def.Children, w); err != nil {
				return err
			}
			continue
		}

		if err := b.Skip(h); err != nil {
			return err
		}
	}
}

func (b *Builder) readValue(def *Def, h Header) (Value, error) {
	if err := checkWidth(def.Kind, h.Size); err != nil {
		return Value{}, b.corruptf(err, h, def.Name, "%s with %d-byte payload", def.Kind, h.Size)
	}
	if h.Size > uint64(b.maxPayload) {
		return Value{}, b.corruptf(types.ErrPayloadTooLarge, h, def.Name, "%d bytes exceeds limit of %d", h.Size, b.maxPayload)
	}

	data, err := b.ReadPayload(h)
	if err != nil {
		return Value{}, err
	}

	v, err := decodeValue(def.Kind, data)
	if err != nil {
		return Value{}, b.corrupt(err, h, def.Name)
	}
	if def.NonZero && v.Kind == KindUint && v.Uint == 0 {
		return Value{}, b.corrupt(types.ErrZeroNotAllowed, h, def.Name)
	}

	return v, nil
}

func (b *Builder) logger(ctx Context, h Header, name string) logrus.FieldLogger {
	return b.log.WithFields(logrus.Fields{
		"element": name,
		"id":      h.ID.String(),
		"offset":  h.Offset,
		"context": ctx.String(),
	})
}

func (b *Builder) corrupt(err error, h Header, element string) error {
	return &types.CorruptedFileError{
		Err:     err,
		Path:    b.r.Path(),
		Element: element,
		Offset:  h.Offset,
	}
}

func (b *Builder) corruptf(err error, h Header, element, format string, args ...any) error {
	return &types.CorruptedFileError{
		Err:     err,
		Path:    b.r.Path(),
		Element: element,
		Reason:  err.Error() + ": " + fmt.Sprintf(format, args...),
		Offset:  h.Offset,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
