// SPDX-License-Identifier: MPL-2.0

// Package logging builds the diagnostic logger commands share. User
// facing result lines go to stdout; everything here goes to stderr so
// output stays pipeable.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns the stderr logger. Verbose raises the level to debug;
// otherwise only warnings and errors are reported.
func New(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "catwalk",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
