// Package trace provides lightweight span timing for engine passes.
// Dep-free by design: spans log their duration through slog on End.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"
)

type ctxKey struct{}

var spanCtxKey = ctxKey{}

// Span measures one named pass (a capture+diff cycle, a redraw).
type Span struct {
	name     string
	id       string
	parentID string
	start    time.Time
	attrs    []any
}

// StartSpan begins a span and attaches it to the context so nested spans
// can reference their parent in logs.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	s := &Span{
		name:  name,
		id:    generateSpanID(),
		start: time.Now(),
	}
	if parent, ok := ctx.Value(spanCtxKey).(*Span); ok {
		s.parentID = parent.id
	}
	return context.WithValue(ctx, spanCtxKey, s), s
}

// SetAttr records a key-value pair emitted when the span ends.
func (s *Span) SetAttr(key string, value any) {
	s.attrs = append(s.attrs, key, value)
}

// End logs the span's duration and attributes at Debug level.
func (s *Span) End() {
	args := []any{"span", s.id, "duration", time.Since(s.start)}
	if s.parentID != "" {
		args = append(args, "parent", s.parentID)
	}
	args = append(args, s.attrs...)
	slog.Debug(s.name, args...)
}

// Logger returns a logger carrying the current span ID, if any.
func Logger(ctx context.Context) *slog.Logger {
	if s, ok := ctx.Value(spanCtxKey).(*Span); ok {
		return slog.Default().With("span", s.id)
	}
	return slog.Default()
}

func generateSpanID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(b)
}
