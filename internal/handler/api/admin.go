// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloghub/bloghub/internal/model"
)

// Queue handles GET /api/v1/admin/posts: the moderation queue, every post
// regardless of status. An optional ?status= parameter narrows the view.
func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	posts := h.content.All()

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	WriteSuccess(w, postsToResponse(posts), &Meta{Total: len(posts)})
}

// ApprovePost handles POST /api/v1/admin/posts/{id}/approve. The first
// approval stamps the publication time; later status flips leave it alone.
// An unknown id is a silent no-op.
func (h *Handler) ApprovePost(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusApproved)
}

// RejectPost handles POST /api/v1/admin/posts/{id}/reject.
func (h *Handler) RejectPost(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusRejected)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")

	post, ok := h.content.SetStatus(id, status)
	if !ok {
		WriteSuccess(w, nil, nil)
		return
	}

	slog.Info("post moderated", "category", "post", "post_id", post.ID, "status", status)
	WriteSuccess(w, postToResponse(post), nil)
}

// DeletePost handles DELETE /api/v1/admin/posts/{id}. An unknown id is a
// silent no-op.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.content.Delete(id) {
		slog.Info("post deleted", "category", "post", "post_id", id)
	}
	WriteSuccess(w, nil, nil)
}

// Events handles GET /api/v1/admin/events, returning the audit log newest
// first.
func (h *Handler) Events(w http.ResponseWriter, _ *http.Request) {
	entries := h.auditLog.Entries()
	WriteSuccess(w, entries, &Meta{Total: len(entries)})
}

// StatsResponse aggregates counts for the admin dashboard.
type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Likes    int `json:"likes"`
	Views    int `json:"views"`
}

// Stats handles GET /api/v1/admin/stats.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	var stats StatsResponse
	for _, p := range h.content.All() {
		stats.Total++
		switch p.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
		case model.StatusRejected:
			stats.Rejected++
		}
		stats.Likes += p.Likes
		stats.Views += p.Views
	}
	WriteSuccess(w, stats, nil)
}
