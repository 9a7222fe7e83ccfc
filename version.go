package mkvmeta

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the mkvmeta library.
const Version = "0.1.0"

// MaxDocTypeReadVersion is the highest DocTypeReadVersion the decoder
// understands. Files that need a newer reader are still decoded, but
// elements added after this version are skipped as unknown.
const MaxDocTypeReadVersion = 4

// VersionInfo describes the build of the library.
type VersionInfo struct {
	Version   string
	GitCommit string // "unknown" outside a VCS build
	BuildTime string
	GoVersion string
	Modified  bool // built from a dirty tree
}

// GetVersionInfo returns version details, taken from ldflags when set and
// from the embedded build information otherwise.
//
//	go build -ldflags="-X github.com/simonhull/mkvmeta.gitCommit=$(git rev-parse HEAD)"
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Supports reports whether the DocTypeReadVersion in h is one this library
// can fully read.
func Supports(h *Header) bool {
	v, ok := h.DocTypeReadVersion().Get()
	return !ok || v <= MaxDocTypeReadVersion
}

var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
