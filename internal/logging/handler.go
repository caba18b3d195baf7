// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a custom slog handler that integrates with the
// audit log. It forwards logs at WARN level and above to the in-memory
// audit log for review in the admin area.
package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bloghub/bloghub/internal/audit"
)

// AuditLogHandler is a slog.Handler that wraps another handler and also
// records WARN and ERROR level logs in the audit log.
type AuditLogHandler struct {
	inner slog.Handler
	log   *audit.Log
	level slog.Level // Minimum level to forward to the audit log (default: WARN)
}

// NewAuditLogHandler creates a new AuditLogHandler that wraps the given handler.
// Logs at WARN level and above are written to both the wrapped handler and the
// audit log.
func NewAuditLogHandler(inner slog.Handler, log *audit.Log) *AuditLogHandler {
	return &AuditLogHandler{
		inner: inner,
		log:   log,
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *AuditLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *AuditLogHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.log.Append(audit.Entry{
			Time:     r.Time,
			Level:    slogLevelToAuditLevel(r.Level),
			Category: extractCategory(r),
			Message:  r.Message,
			Metadata: extractMetadata(r),
		})
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *AuditLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AuditLogHandler{
		inner: h.inner.WithAttrs(attrs),
		log:   h.log,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *AuditLogHandler) WithGroup(name string) slog.Handler {
	return &AuditLogHandler{
		inner: h.inner.WithGroup(name),
		log:   h.log,
		level: h.level,
	}
}

func slogLevelToAuditLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return audit.LevelError
	case level >= slog.LevelWarn:
		return audit.LevelWarning
	default:
		return audit.LevelInfo
	}
}

// extractCategory looks for a "category" attribute or infers one from the
// message.
func extractCategory(r slog.Record) string {
	var category string

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})

	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "auth") || strings.Contains(msg, "login") || strings.Contains(msg, "logout") || strings.Contains(msg, "session"):
		return audit.CategoryAuth
	case strings.Contains(msg, "post") || strings.Contains(msg, "content"):
		return audit.CategoryPost
	case strings.Contains(msg, "user") || strings.Contains(msg, "signup"):
		return audit.CategoryUser
	default:
		return audit.CategorySystem
	}
}

// extractMetadata collects the record attributes as strings.
func extractMetadata(r slog.Record) map[string]string {
	if r.NumAttrs() == 0 {
		return nil
	}

	metadata := make(map[string]string, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			return true // already extracted
		}
		metadata[a.Key] = a.Value.String()
		return true
	})

	if len(metadata) == 0 {
		return nil
	}
	return metadata
}
