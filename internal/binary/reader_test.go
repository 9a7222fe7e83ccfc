package binary

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/simonhull/mkvmeta/internal/types"
)

// failingSeeker returns readErr from Read once the offset reaches failAt.
type failingSeeker struct {
	*bytes.Reader
	failAt  int64
	readErr error
}

func (f *failingSeeker) Read(p []byte) (int, error) {
	pos, _ := f.Reader.Seek(0, io.SeekCurrent)
	if pos >= f.failAt {
		return 0, f.readErr
	}
	return f.Reader.Read(p)
}

func TestNewReader_SizeAndStart(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))
	if _, err := src.Seek(3, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(src, "test.mkv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Size() != 10 {
		t.Errorf("expected size 10, got %d", r.Size())
	}
	if r.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", r.Offset())
	}
	if r.Remaining() != 7 {
		t.Errorf("expected 7 remaining, got %d", r.Remaining())
	}

	b := make([]byte, 2)
	if err := r.ReadFull(b, "digits"); err != nil {
		t.Fatal(err)
	}
	if string(b) != "34" {
		t.Errorf("expected %q, got %q", "34", b)
	}
}

func TestReader_ReadFull_EOF(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0x01, 0x02}), "test.mkv")
	if err != nil {
		t.Fatal(err)
	}

	b := make([]byte, 4)
	if err := r.ReadFull(b, "too much"); err != io.ErrUnexpectedEOF {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if r.Offset() != 2 {
		t.Errorf("offset should advance by the bytes read, got %d", r.Offset())
	}

	if err := r.ReadFull(b[:1], "nothing left"); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReader_ReadFull_SourceError(t *testing.T) {
	src := &failingSeeker{
		Reader:  bytes.NewReader(make([]byte, 16)),
		failAt:  4,
		readErr: io.ErrClosedPipe,
	}
	r, err := NewReader(src, "broken.mkv")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Skip(4, "prefix"); err != nil {
		t.Fatal(err)
	}

	err = r.ReadFull(make([]byte, 2), "element size")
	if !errors.Is(err, types.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected source error to be preserved, got %v", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, "broken.mkv") || !strings.Contains(msg, "element size") {
		t.Errorf("error should contain path and context: %v", msg)
	}
}

func TestReader_SkipAndSeek(t *testing.T) {
	data := make([]byte, 100)
	data[30] = 0xAB
	r, err := NewReader(bytes.NewReader(data), "test.mkv")
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Skip(30, "payload"); err != nil {
		t.Fatal(err)
	}
	if r.Offset() != 30 {
		t.Errorf("expected offset 30 after skip, got %d", r.Offset())
	}

	v, err := ReadValue[uint8](r, "marker")
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xAB {
		t.Errorf("expected 0xAB, got 0x%02x", v)
	}

	if err := r.SeekTo(30, "rewind"); err != nil {
		t.Fatal(err)
	}
	if r.Offset() != 30 {
		t.Errorf("expected offset 30 after seek, got %d", r.Offset())
	}
}

func TestReadValue_Sequential(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	r, err := NewReader(bytes.NewReader(data), "test.mkv")
	if err != nil {
		t.Fatal(err)
	}

	v8, err := ReadValue[uint8](r, "first byte")
	if err != nil || v8 != 0x01 {
		t.Fatalf("ReadValue[uint8] = 0x%02x, %v", v8, err)
	}

	v16, err := ReadValue[uint16](r, "second word")
	if err != nil || v16 != 0x0203 {
		t.Fatalf("ReadValue[uint16] = 0x%04x, %v", v16, err)
	}

	v32, err := ReadValue[uint32](r, "dword")
	if err != nil || v32 != 0x04050607 {
		t.Fatalf("ReadValue[uint32] = 0x%08x, %v", v32, err)
	}

	if r.Offset() != 7 {
		t.Errorf("expected offset 7, got %d", r.Offset())
	}

	if _, err := ReadValue[uint64](r, "past end"); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
