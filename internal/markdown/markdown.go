// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown renders post bodies to sanitized HTML. Conversion is
// delegated to goldmark with the table, strikethrough and autolink
// extensions enabled; the output passes through bluemonday's UGC policy
// before it reaches a browser.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bloghub/bloghub/internal/cache"
	"github.com/bloghub/bloghub/internal/model"
)

// Renderer converts Markdown to sanitized HTML, caching rendered output
// per post revision.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  cache.Cacher
	ttl    time.Duration
}

// New creates a renderer backed by the given cache. A nil cache disables
// caching.
func New(c cache.Cacher, ttl time.Duration) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
			),
		),
		policy: bluemonday.UGCPolicy(),
		cache:  c,
		ttl:    ttl,
	}
}

// RenderPost converts a post body to sanitized HTML. The cache key carries
// the post's update timestamp, so a moderation edit invalidates naturally.
func (r *Renderer) RenderPost(ctx context.Context, post model.Post) (string, error) {
	key := fmt.Sprintf("render:%s:%d", post.ID, post.UpdatedAt.Unix())

	if r.cache != nil {
		// A degraded cache is not fatal; any error falls through to a
		// direct render.
		if cached, err := r.cache.Get(ctx, key); err == nil {
			return string(cached), nil
		}
	}

	html, err := r.Render(post.Content)
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, key, []byte(html), r.ttl)
	}
	return html, nil
}

// Render converts raw Markdown to sanitized HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes())), nil
}
