package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/phuslu/log"
)

// setupLogging sends leveled logs to stderr, colored when stderr is a terminal.
// Unknown levels fall back to info.
func setupLogging(level string) {
	fd := os.Stderr.Fd()
	log.DefaultLogger = log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
			EndWithMessage: true,
			Writer:         stderr,
		},
	}
}
