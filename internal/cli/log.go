// Package cli implements the calibkit command-line interface.
//
// calibkit generates printable calibration artifacts: a ChArUco board,
// sheets of fiducial markers, and a PDF printing guide, plus the
// staggered playback timeline for the acoustics subsystem. Commands share
// an optional TOML defaults file (--config) and verbose logging (-v).
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type contextKey string

const loggerKey contextKey = "logger"

// newLogger creates a logger writing to w at the given level with
// timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches a logger to the context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger. Commands
// always run under the root's PersistentPreRun, so the logger is present;
// the default guards tests that build commands directly.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
