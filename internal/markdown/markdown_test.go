// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package markdown

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bloghub/bloghub/internal/cache"
	"github.com/bloghub/bloghub/internal/model"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	c := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = c.Close() })
	return New(c, time.Minute)
}

func TestRender_Basic(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.Render("# Heading\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "<h1") {
		t.Errorf("expected heading in output: %s", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected bold text in output: %s", html)
	}
}

func TestRender_Extensions(t *testing.T) {
	r := newTestRenderer(t)

	// Tables
	html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "<table") {
		t.Errorf("expected table in output: %s", html)
	}

	// Strikethrough
	html, err = r.Render("~~gone~~")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "<del>gone</del>") {
		t.Errorf("expected strikethrough in output: %s", html)
	}

	// Autolinks
	html, err = r.Render("see https://example.com for details")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, `<a href="https://example.com"`) {
		t.Errorf("expected autolink in output: %s", html)
	}
}

func TestRender_SanitizesScripts(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.Render("hello <script>alert('xss')</script> world")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("script tags must be stripped: %s", html)
	}

	html, err = r.Render(`<img src="x" onerror="alert(1)">`)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(html, "onerror") {
		t.Errorf("event handlers must be stripped: %s", html)
	}
}

func TestRenderPost_Caching(t *testing.T) {
	c := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()
	r := New(c, time.Minute)

	post := model.Post{
		ID:        "1",
		Content:   "# Cached",
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	first, err := r.RenderPost(context.Background(), post)
	if err != nil {
		t.Fatalf("RenderPost failed: %v", err)
	}

	second, err := r.RenderPost(context.Background(), post)
	if err != nil {
		t.Fatalf("RenderPost failed: %v", err)
	}
	if first != second {
		t.Error("cached render must match the original")
	}

	// A moderation edit bumps UpdatedAt, so the key changes and the new
	// content renders fresh.
	post.Content = "# Changed"
	post.UpdatedAt = post.UpdatedAt.Add(time.Hour)
	third, err := r.RenderPost(context.Background(), post)
	if err != nil {
		t.Fatalf("RenderPost failed: %v", err)
	}
	if !strings.Contains(third, "Changed") {
		t.Errorf("expected fresh render after update: %s", third)
	}
}

func TestRenderPost_NilCache(t *testing.T) {
	r := New(nil, 0)

	html, err := r.RenderPost(context.Background(), model.Post{ID: "1", Content: "plain text"})
	if err != nil {
		t.Fatalf("RenderPost failed: %v", err)
	}
	if !strings.Contains(html, "plain text") {
		t.Errorf("unexpected output: %s", html)
	}
}
