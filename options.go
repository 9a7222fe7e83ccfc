package mkvmeta

import (
	"github.com/sirupsen/logrus"

	"github.com/simonhull/mkvmeta/internal/ebml"
)

// Option configures behavior when opening files.
//
// Example:
//
//	file, err := mkvmeta.Open("movie.mkv",
//	    mkvmeta.WithLogger(log),
//	    mkvmeta.WithMaxPayloadSize(1<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	logger     logrus.FieldLogger // nil discards debug output
	maxPayload int64              // largest scalar element read into memory
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		maxPayload: ebml.DefaultMaxPayload,
	}
}

func (o *openOptions) config() ebml.Config {
	return ebml.Config{Logger: o.logger, MaxPayload: o.maxPayload}
}

// WithLogger sends decoder debug events to l.
//
// The decoder logs at debug level when it skips an unknown element, drops
// an earlier occurrence of a duplicate element, or passes over a Cluster
// or other large element. Each entry carries the element name, id, offset
// and context.
//
// Example:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	file, err := mkvmeta.Open("movie.mkv", mkvmeta.WithLogger(log))
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *openOptions) {
		o.logger = l
	}
}

// WithMaxPayloadSize limits the size of a single scalar element, such as
// CodecPrivate, that is read into memory. Larger elements fail with
// ErrPayloadTooLarge.
//
// Default is 16 MiB. Values of zero or less restore the default.
func WithMaxPayloadSize(bytes int64) Option {
	return func(o *openOptions) {
		if bytes <= 0 {
			bytes = ebml.DefaultMaxPayload
		}
		o.maxPayload = bytes
	}
}
