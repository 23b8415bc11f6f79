package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

const (
	redacted       = "[REDACTED]"
	tokenKeepChars = 20
)

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request_id from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// NewHandler builds the JSON handler used by the service.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactSecrets,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	return &StackTraceHandler{Handler: slog.NewJSONHandler(w, opts)}
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, level)))
}

// redactSecrets keeps provider credentials out of the logs and shortens
// booking tokens to a recognisable prefix.
func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case "api_key":
		return slog.String(a.Key, redacted)
	case "booking_token", "token":
		return slog.String(a.Key, TruncateToken(a.Value.String()))
	}

	return a
}

// TruncateToken shortens a token for display.
func TruncateToken(token string) string {
	if len(token) <= tokenKeepChars {
		return token
	}

	return token[:tokenKeepChars] + "..."
}

// WithRequestID stores the request id picked up by StackTraceHandler.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
