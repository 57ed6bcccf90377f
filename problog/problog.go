// Package problog builds the structured logger used for harness diagnostics.
package problog

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// New returns a slog.Logger writing colorized, time-prefixed records to w.
// Pass slog.LevelDebug to see per-invocation dispatch and outcome records
// from the threaded proxies.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}
