// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bloghub/bloghub/internal/audit"
	"github.com/bloghub/bloghub/internal/model"
)

func auditEntry(msg string) audit.Entry {
	return audit.Entry{Level: audit.LevelInfo, Category: audit.CategorySystem, Message: msg}
}

func TestQueue_IncludesAllStatuses(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	_, envelope := doJSON(t, router, http.MethodGet, "/api/v1/admin/posts", "")
	posts := decodePosts(t, envelope["data"])
	if len(posts) != 5 {
		t.Fatalf("expected all 5 posts in queue, got %d", len(posts))
	}

	statuses := make(map[string]bool)
	for _, p := range posts {
		statuses[p.Status] = true
	}
	for _, status := range []string{model.StatusPending, model.StatusApproved, model.StatusRejected} {
		if !statuses[status] {
			t.Errorf("queue must include %s posts", status)
		}
	}
}

func TestQueue_StatusFilter(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	_, envelope := doJSON(t, router, http.MethodGet, "/api/v1/admin/posts?status=pending", "")
	posts := decodePosts(t, envelope["data"])
	if len(posts) != 1 {
		t.Fatalf("expected 1 pending post, got %d", len(posts))
	}
	if posts[0].Status != model.StatusPending {
		t.Errorf("expected pending post, got %q", posts[0].Status)
	}
}

func TestApprovePost(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	// Post 3 starts pending.
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/admin/posts/3/approve", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var post PostResponse
	if err := json.Unmarshal(envelope["data"], &post); err != nil {
		t.Fatalf("decoding post: %v", err)
	}
	if post.Status != model.StatusApproved {
		t.Errorf("expected approved, got %q", post.Status)
	}
	if post.PublishedAt == nil {
		t.Error("approval must stamp the publication time")
	}
}

func TestRejectPost_KeepsPublicationTime(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/admin/posts/3/approve", "")
	var approved PostResponse
	if err := json.Unmarshal(envelope["data"], &approved); err != nil {
		t.Fatalf("decoding post: %v", err)
	}
	if approved.PublishedAt == nil {
		t.Fatal("approval must stamp the publication time")
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/v1/admin/posts/3/reject", "")
	var rejected PostResponse
	if err := json.Unmarshal(envelope["data"], &rejected); err != nil {
		t.Fatalf("decoding post: %v", err)
	}
	if rejected.Status != model.StatusRejected {
		t.Errorf("expected rejected, got %q", rejected.Status)
	}
	if rejected.PublishedAt == nil || !rejected.PublishedAt.Equal(*approved.PublishedAt) {
		t.Error("rejection must keep the first-approval time")
	}
}

func TestModeration_UnknownIDSilentNoOp(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	for _, target := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/v1/admin/posts/ghost/approve"},
		{http.MethodPost, "/api/v1/admin/posts/ghost/reject"},
		{http.MethodDelete, "/api/v1/admin/posts/ghost"},
	} {
		rec, envelope := doJSON(t, router, target.method, target.path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: unknown id must not error, got %d", target.method, target.path, rec.Code)
		}
		if string(envelope["data"]) != "null" {
			t.Errorf("%s %s: expected null data, got %s", target.method, target.path, envelope["data"])
		}
	}

	if h.content.Len() != 5 {
		t.Errorf("no-op moderation must not alter the collection, got %d posts", h.content.Len())
	}
}

func TestDeletePost(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/v1/admin/posts/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := h.content.GetByID("2"); ok {
		t.Error("deleted post must be gone")
	}
	if h.content.Len() != 4 {
		t.Errorf("expected 4 posts, got %d", h.content.Len())
	}
}

func TestStats(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	_, envelope := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", "")
	var stats StatsResponse
	if err := json.Unmarshal(envelope["data"], &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}

	if stats.Total != 5 {
		t.Errorf("expected 5 total, got %d", stats.Total)
	}
	if stats.Approved != 3 || stats.Pending != 1 || stats.Rejected != 1 {
		t.Errorf("unexpected status breakdown: %+v", stats)
	}
	if stats.Approved+stats.Pending+stats.Rejected != stats.Total {
		t.Error("status counts must sum to total")
	}
	if stats.Likes == 0 || stats.Views == 0 {
		t.Error("expected fixture engagement in stats")
	}
}

func TestEvents(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(h, nil)

	h.auditLog.Append(auditEntry("one"))
	h.auditLog.Append(auditEntry("two"))

	_, envelope := doJSON(t, router, http.MethodGet, "/api/v1/admin/events", "")
	var entries []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope["data"], &entries); err != nil {
		t.Fatalf("decoding events: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 events, got %d", len(entries))
	}
	if entries[0].Message != "two" {
		t.Errorf("expected newest event first, got %q", entries[0].Message)
	}
}
