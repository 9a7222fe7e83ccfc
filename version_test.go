package mkvmeta_test

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/simonhull/mkvmeta"
	"github.com/simonhull/mkvmeta/internal/ebml"
	"github.com/simonhull/mkvmeta/internal/ebml/ebmltest"
)

func TestGetVersionInfo(t *testing.T) {
	info := mkvmeta.GetVersionInfo()
	if info.Version != mkvmeta.Version {
		t.Errorf("Version = %q", info.Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.GitCommit == "" || info.BuildTime == "" {
		t.Error("GitCommit and BuildTime should never be empty")
	}
}

func TestSupports(t *testing.T) {
	header := func(readVersion uint64) []byte {
		return ebmltest.Concat(
			ebmltest.Element(ebml.IDEBML,
				ebmltest.String(ebml.IDDocType, "matroska"),
				ebmltest.Uint(ebml.IDDocTypeReadVersion, readVersion),
			),
			ebmltest.Element(ebml.IDSegment),
		)
	}

	tests := []struct {
		readVersion uint64
		want        bool
	}{
		{1, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		file, err := mkvmeta.OpenReader(bytes.NewReader(header(tt.readVersion)))
		if err != nil {
			t.Fatalf("read version %d: %v", tt.readVersion, err)
		}
		if got := mkvmeta.Supports(file.Header()); got != tt.want {
			t.Errorf("Supports(read version %d) = %v, want %v", tt.readVersion, got, tt.want)
		}
	}
}
