package main

import (
	"fmt"
	"os"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

func configureLog() {
	log.SetOutput(os.Stderr)

	if isTty() {
		log.SetFormatter(&log.TextFormatter{
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				return "", fmt.Sprintf("%s:%d", path.Base(f.File), f.Line)
			},
			FullTimestamp: true,
		})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}

	if flags.debug {
		log.SetReportCaller(true)
		log.SetLevel(log.DebugLevel)
		log.Debug("debug log enabled")
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func isTty() bool {
	fi, err := os.Stderr.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
