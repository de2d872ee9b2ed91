// Package logging builds the leveled logger used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps the tools quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). An empty level means DefaultLevel.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}
