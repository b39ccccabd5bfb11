package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	return m
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug(ctx, "m") }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info(ctx, "m") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(ctx, "m") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(ctx, "m") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger(t, slog.LevelDebug)
			tt.log(l)
			m := decodeLine(t, buf)
			if m["level"] != tt.level {
				t.Errorf("level = %v, want %v", m["level"], tt.level)
			}
			if m["msg"] != "m" {
				t.Errorf("msg = %v, want m", m["msg"])
			}
		})
	}
}

func TestNewJSONLogger_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSONLogger(buf)

	l.Info(context.Background(), "started", "addr", ":8080")

	m := decodeLine(t, buf)
	if m["msg"] != "started" {
		t.Errorf("msg = %v, want started", m["msg"])
	}
	if m["addr"] != ":8080" {
		t.Errorf("addr = %v, want :8080", m["addr"])
	}
}

func TestSlogLogger_WithAddsAttrs(t *testing.T) {
	l, buf := newBufLogger(t, slog.LevelInfo)

	child := l.With("module", "test")
	child.Info(context.Background(), "hello", "k", "v")

	m := decodeLine(t, buf)
	if m["module"] != "test" {
		t.Errorf("module attr = %v, want test", m["module"])
	}
	if m["k"] != "v" {
		t.Errorf("k attr = %v, want v", m["k"])
	}
}
