package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
)

// requestFormatter writes one structured line per request to the logger.
type requestFormatter struct {
	logger *log.Logger
}

func (f *requestFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestEntry{
		logger: f.logger.With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"request_id", middleware.GetReqID(r.Context()),
		),
	}
}

type requestEntry struct {
	logger *log.Logger
}

func (e *requestEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	kv := []any{"status", status, "bytes", bytes, "elapsed", elapsed.Round(time.Microsecond)}
	switch {
	case status >= 500:
		e.logger.Error("request", kv...)
	case status >= 400:
		e.logger.Warn("request", kv...)
	default:
		e.logger.Debug("request", kv...)
	}
}

func (e *requestEntry) Panic(v any, stack []byte) {
	e.logger.Error("panic serving request", "panic", v, "stack", string(stack))
}
