// Command mkv-dump prints the metadata of Matroska and WebM files.
//
// By default it prints the decoded header, segment information and tracks.
// With --tree it lists the raw element layout instead, which is useful for
// checking what a muxer actually wrote.
//
// Usage:
//
//	mkv-dump [--format yaml|pretty|text] [--debug] <file.mkv>...
//	mkv-dump --tree [--depth N] <file.mkv>
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/simonhull/mkvmeta"
)

var flags struct {
	tree       bool
	depth      int
	format     string
	debug      bool
	maxPayload int64
	version    bool
}

func main() {
	flag.BoolVar(&flags.tree, "tree", false, "list the raw element tree")
	flag.IntVar(&flags.depth, "depth", 3, "maximum tree depth with --tree")
	flag.StringVarP(&flags.format, "format", "f", "yaml", "output format: yaml, pretty or text")
	flag.BoolVarP(&flags.debug, "debug", "d", false, "log decoder events")
	flag.Int64Var(&flags.maxPayload, "max-payload", 0, "largest element read into memory, in bytes")
	flag.BoolVarP(&flags.version, "version", "v", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mkv-dump [flags] <file.mkv>...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	configureLog()

	if flags.version {
		v := mkvmeta.GetVersionInfo()
		fmt.Printf("mkv-dump %s (%s, %s)\n", v.Version, v.GitCommit, v.GoVersion)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		var err error
		if flags.tree {
			err = dumpTree(os.Stdout, path, flags.depth)
		} else {
			err = dumpFile(os.Stdout, path)
		}
		if err != nil {
			log.WithField("path", path).Error(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dumpFile(w *os.File, path string) error {
	file, err := mkvmeta.Open(path,
		mkvmeta.WithLogger(log.StandardLogger().WithField("path", path)),
		mkvmeta.WithMaxPayloadSize(flags.maxPayload),
	)
	if err != nil {
		return err
	}
	if !mkvmeta.Supports(file.Header()) {
		log.WithField("path", path).Warn("file needs a newer reader, some elements were skipped")
	}

	return render(w, newFileView(file), flags.format)
}
