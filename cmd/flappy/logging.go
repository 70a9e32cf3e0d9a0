package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger selected by --log-file. Without a file, logs
// are discarded so they cannot corrupt the alternate screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return log.NewWithOptions(fallback, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy",
		}), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	return logger, func() { f.Close() }, nil
}
