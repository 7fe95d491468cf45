// Package log implements xenogl's leveled loggers. Every level writes through
// one shared charmbracelet logger so that output, level and color can be set
// in one place. Output is discarded until SetOutput is called.
// Provides info, warn, debug, fatal and performance loggers.
package log

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// The prefix label of the performance logger
const perfLabel = "PERF"

var (
	std  = log.NewWithOptions(io.Discard, log.Options{ReportTimestamp: true, Level: log.InfoLevel})
	perf = newPerf(std)
)

func newPerf(base *log.Logger) *log.Logger {
	return base.WithPrefix(perfLabel)
}

// SetOutput sets the output destination for every logger.
func SetOutput(out io.Writer) {
	std.SetOutput(out)
	perf.SetOutput(out)
}

// SetLevel sets the minimum level that is written. Valid levels are debug,
// info, warn, error and fatal.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	std.SetLevel(lvl)
	perf.SetLevel(lvl)
	return nil
}

// SetColorized toggles ANSI colors on the level labels.
func SetColorized(toggle bool) {
	profile := termenv.Ascii
	if toggle {
		profile = termenv.ANSI256
	}
	std.SetColorProfile(profile)
	perf.SetColorProfile(profile)
}

// ConstErr is a string that satisfies error, so sentinel errors can be
// declared as constants.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}
