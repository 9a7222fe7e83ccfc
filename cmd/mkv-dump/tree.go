package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/simonhull/mkvmeta/internal/binary"
	"github.com/simonhull/mkvmeta/internal/ebml"
)

// treeWalker prints element headers as it walks a file, without decoding
// any payload.
type treeWalker struct {
	t        *ebml.Tokenizer
	schema   *ebml.Schema
	w        io.Writer
	maxDepth int
}

func dumpTree(w io.Writer, path string, maxDepth int) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open file")
	}
	defer f.Close()

	r, err := binary.NewReader(f, path)
	if err != nil {
		return err
	}

	tw := &treeWalker{
		t:        ebml.NewTokenizer(r),
		schema:   ebml.Matroska,
		w:        w,
		maxDepth: maxDepth,
	}
	return tw.walk(ebml.ContextRoot, ebml.Bounded(r.Size()), 0)
}

func (tw *treeWalker) walk(ctx ebml.Context, b ebml.Bound, depth int) error {
	for {
		h, err := tw.t.Next(b)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		def, ok := tw.schema.Lookup(ctx, h.ID)
		if !ok && b.Open && tw.schema.ResolvesAbove(ctx, h.ID) {
			return tw.t.Rewind(h)
		}

		tw.print(ctx, h, depth)

		if ok && def.Kind == ebml.KindMaster && def.Children != ebml.ContextOpaque && depth < tw.maxDepth {
			child := ebml.Bounded(h.End())
			if h.Unknown {
				child = ebml.OpenBound(b.End)
			}
			if err := tw.walk(def.Children, child, depth+1); err != nil {
				return err
			}
			if !h.Unknown {
				if err := tw.t.Skip(h); err != nil {
					return err
				}
			}
			continue
		}

		if h.Unknown {
			// An unknown-size element can only be passed by reading through it.
			if !ok || !def.Unsized {
				return errors.Errorf("unknown size on %s at offset %d", tw.schema.Name(ctx, h.ID), h.Offset)
			}
			if err := tw.walk(def.Children, ebml.OpenBound(b.End), tw.maxDepth+1); err != nil {
				return err
			}
			continue
		}
		if err := tw.t.Skip(h); err != nil {
			return err
		}
	}
}

func (tw *treeWalker) print(ctx ebml.Context, h ebml.Header, depth int) {
	if depth > tw.maxDepth {
		return
	}
	size := fmt.Sprintf("%d", h.Size)
	if h.Unknown {
		size = "unknown"
	}
	fmt.Fprintf(tw.w, "%s%s [%s] (offset: %d, size: %s)\n",
		strings.Repeat("  ", depth), tw.schema.Name(ctx, h.ID), h.ID, h.Offset, size)
}
