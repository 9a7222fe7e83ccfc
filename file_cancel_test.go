package mkvmeta_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/simonhull/mkvmeta"
)

func TestOpenContext_Cancelled(t *testing.T) {
	path := writeTemp(t, "movie.mkv", createSimpleMKV())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mkvmeta.OpenContext(ctx, path)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestOpenContext_DeadlineExceeded(t *testing.T) {
	path := writeTemp(t, "movie.mkv", createSimpleMKV())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := mkvmeta.OpenContext(ctx, path)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

// cancelAfter cancels its context once n reads have gone through.
type cancelAfter struct {
	io.ReadSeeker
	n      int
	cancel context.CancelFunc
	ctx    context.Context
}

func (c *cancelAfter) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	c.n--
	if c.n <= 0 {
		c.cancel()
	}
	return c.ReadSeeker.Read(p)
}

func TestOpenReader_SourceCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &cancelAfter{ReadSeeker: bytes.NewReader(createSimpleMKV()), n: 5, cancel: cancel, ctx: ctx}

	_, err := mkvmeta.OpenReader(r)
	if !errors.Is(err, mkvmeta.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	var re *mkvmeta.ReadError
	if !errors.As(err, &re) {
		t.Errorf("expected *ReadError, got %T", err)
	}
}

func TestOpenMany(t *testing.T) {
	data := createSimpleMKV()
	paths := []string{
		writeTemp(t, "a.mkv", data),
		writeTemp(t, "b.mkv", data),
		writeTemp(t, "c.mkv", data),
	}

	files, err := mkvmeta.OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	if len(files) != len(paths) {
		t.Fatalf("expected %d files, got %d", len(paths), len(files))
	}
	for i, f := range files {
		if f.Path != paths[i] {
			t.Errorf("result %d: expected path %q, got %q", i, paths[i], f.Path)
		}
	}
}

func TestOpenMany_Empty(t *testing.T) {
	files, err := mkvmeta.OpenMany(context.Background())
	if err != nil || files != nil {
		t.Errorf("expected nil, nil; got %v, %v", files, err)
	}
}

func TestOpenMany_PartialFailure(t *testing.T) {
	good := writeTemp(t, "good.mkv", createSimpleMKV())
	bad := writeTemp(t, "bad.mkv", []byte("not ebml"))

	files, err := mkvmeta.OpenMany(context.Background(), good, bad)
	if err == nil {
		t.Fatal("expected error")
	}
	if files != nil {
		t.Error("expected nil results on failure")
	}
	if !errors.Is(err, mkvmeta.ErrNotEBML) {
		t.Errorf("expected ErrNotEBML, got %v", err)
	}
}

func TestOpenMany_Cancelled(t *testing.T) {
	path := writeTemp(t, "movie.mkv", createSimpleMKV())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mkvmeta.OpenMany(ctx, path, path)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
