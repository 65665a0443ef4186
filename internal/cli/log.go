package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vecnet/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Encoded 42 vertices (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks traces codec, cache and tool events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetCodecHooks(h)
	observability.SetCacheHooks(h)
	observability.SetToolHooks(h)
}

func (h logHooks) OnEncodeStart(_ context.Context, vertices, segments int) {
	h.logger.Debug("encode start", "vertices", vertices, "segments", segments)
}

func (h logHooks) OnEncodeComplete(_ context.Context, bytes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encode failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("encode complete", "bytes", bytes, "duration", d)
}

func (h logHooks) OnDecodeStart(_ context.Context, bytes int) {
	h.logger.Debug("decode start", "bytes", bytes)
}

func (h logHooks) OnDecodeComplete(_ context.Context, vertices, segments int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("decode failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("decode complete", "vertices", vertices, "segments", segments, "duration", d)
}

func (h logHooks) OnHandleConflict(_ context.Context, msg string) {
	h.logger.Debug("handle conflict", "detail", msg)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnToolCall(_ context.Context, id, tool string) {
	h.logger.Debug("tool call", "id", id, "tool", tool)
}

func (h logHooks) OnToolResult(_ context.Context, id, tool string, ok bool, code string, d time.Duration) {
	h.logger.Debug("tool result", "id", id, "tool", tool, "ok", ok, "code", code, "duration", d)
}
