package types

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCorruptedFileError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CorruptedFileError
		contains []string
	}{
		{
			name: "reason and element",
			err: &CorruptedFileError{
				Path:    "broken.mkv",
				Offset:  256,
				Element: "TrackEntry",
				Reason:  "child ends at 400, parent ends at 300",
				Err:     ErrChildExceedsParent,
			},
			contains: []string{"broken.mkv", "offset 256", "TrackEntry", "parent ends at 300", "corrupted file"},
		},
		{
			name: "kind only",
			err: &CorruptedFileError{
				Path:   "short.mkv",
				Offset: 12,
				Err:    ErrTruncatedVarint,
			},
			contains: []string{"short.mkv", "offset 12", "truncated variable-length integer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestCorruptedFileError_Is(t *testing.T) {
	var err error = &CorruptedFileError{Path: "a.mkv", Err: ErrInvalidUTF8}
	wrapped := errors.Wrap(err, "parse info")

	if !errors.Is(wrapped, ErrInvalidUTF8) {
		t.Error("errors.Is should see the kind through pkg/errors wrapping")
	}
	if errors.Is(wrapped, ErrInvalidASCII) {
		t.Error("errors.Is matched the wrong kind")
	}

	var cfe *CorruptedFileError
	if !errors.As(wrapped, &cfe) || cfe.Path != "a.mkv" {
		t.Errorf("errors.As failed: %v", cfe)
	}
}

func TestReadError(t *testing.T) {
	err := &ReadError{Path: "x.mkv", What: "element id", Offset: 40, Err: io.ErrClosedPipe}

	if !errors.Is(err, ErrIO) {
		t.Error("ReadError should match ErrIO")
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("ReadError should unwrap to the source error")
	}
	for _, s := range []string{"x.mkv", "element id", "offset 40"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error message %q should contain %q", err.Error(), s)
		}
	}
}

func TestErrors_NoPath(t *testing.T) {
	err := &CorruptedFileError{Offset: 4, Err: ErrNotEBML}
	if got, want := err.Error(), "corrupted file at offset 4: not an EBML file"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
