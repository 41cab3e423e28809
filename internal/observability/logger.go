package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide JSON logger. Dev runs log at debug,
// everything else at info. Records emitted with a request context pick
// up trace/span ids through the TraceHandler wrapper.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(NewTraceHandler(handler))
}
