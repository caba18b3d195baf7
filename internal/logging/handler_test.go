package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bloghub/bloghub/internal/audit"
)

func newTestLogger(log *audit.Log) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewAuditLogHandler(inner, log)), &buf
}

func TestAuditLogHandler_ForwardsWarnings(t *testing.T) {
	log := audit.NewLog(10)
	logger, buf := newTestLogger(log)

	logger.Info("routine startup")
	logger.Warn("something odd")
	logger.Error("something broke")

	if log.Len() != 2 {
		t.Fatalf("expected 2 audit entries, got %d", log.Len())
	}

	entries := log.Entries()
	if entries[0].Level != audit.LevelError {
		t.Errorf("expected error level, got %q", entries[0].Level)
	}
	if entries[1].Level != audit.LevelWarning {
		t.Errorf("expected warning level, got %q", entries[1].Level)
	}

	// All three still reach the wrapped handler.
	out := buf.String()
	for _, msg := range []string{"routine startup", "something odd", "something broke"} {
		if !bytes.Contains([]byte(out), []byte(msg)) {
			t.Errorf("expected %q in inner handler output", msg)
		}
	}
}

func TestAuditLogHandler_ExplicitCategory(t *testing.T) {
	log := audit.NewLog(10)
	logger, _ := newTestLogger(log)

	logger.Warn("limit reached", "category", "auth", "ip", "10.0.0.1")

	entries := log.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Category != audit.CategoryAuth {
		t.Errorf("expected auth category, got %q", entries[0].Category)
	}
	if entries[0].Metadata["ip"] != "10.0.0.1" {
		t.Errorf("expected ip metadata, got %#v", entries[0].Metadata)
	}
	if _, ok := entries[0].Metadata["category"]; ok {
		t.Error("category attr must not leak into metadata")
	}
}

func TestAuditLogHandler_InferredCategory(t *testing.T) {
	log := audit.NewLog(10)
	logger, _ := newTestLogger(log)

	tests := []struct {
		message string
		want    string
	}{
		{"login rate limit exceeded", audit.CategoryAuth},
		{"post moderation failed", audit.CategoryPost},
		{"user record malformed", audit.CategoryUser},
		{"disk almost full", audit.CategorySystem},
	}
	for _, tc := range tests {
		logger.Warn(tc.message)
	}

	entries := log.Entries()
	if len(entries) != len(tests) {
		t.Fatalf("expected %d entries, got %d", len(tests), len(entries))
	}
	// Entries are newest first; walk tests in reverse.
	for i, tc := range tests {
		got := entries[len(entries)-1-i]
		if got.Category != tc.want {
			t.Errorf("message %q: expected category %q, got %q", tc.message, tc.want, got.Category)
		}
	}
}
