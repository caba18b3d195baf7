// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bloghub/bloghub/internal/middleware"
	"github.com/bloghub/bloghub/internal/model"
	"github.com/bloghub/bloghub/internal/util"
)

// PostResponse represents a post in API responses.
type PostResponse struct {
	model.Post
	Slug string `json:"slug"`
	// HTML carries the rendered body on detail responses only.
	HTML string `json:"html,omitempty"`
}

// CreatePostRequest represents the request body for submitting a post.
type CreatePostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featured_image"`
}

func postToResponse(p model.Post) PostResponse {
	return PostResponse{
		Post: p,
		Slug: util.Slugify(p.Title),
	}
}

func postsToResponse(posts []model.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = postToResponse(p)
	}
	return out
}

// ListPosts handles GET /api/v1/posts.
// Query parameters replace the stored filter state wholesale before the
// query runs; an absent parameter clears its filter. A request with no
// parameters leaves the stored filters untouched.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if len(q) > 0 {
		h.content.SetFilters(model.Filters{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			Status:   q.Get("status"),
			SortBy:   q.Get("sort"),
		})
	}

	posts := h.content.Query()
	WriteSuccess(w, postsToResponse(posts), &Meta{
		Total:   len(posts),
		Loading: !h.content.Ready(),
	})
}

// GetPost handles GET /api/v1/posts/{id}. The detail response includes the
// sanitized HTML rendering of the body.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, ok := h.content.GetByID(id)
	if !ok {
		WriteNotFound(w, "Post not found")
		return
	}

	resp := postToResponse(post)
	html, err := h.renderer.RenderPost(r.Context(), post)
	if err != nil {
		slog.Error("rendering post body", "category", "post", "post_id", post.ID, "error", err)
		WriteInternalError(w, "Failed to render post")
		return
	}
	resp.HTML = html

	WriteSuccess(w, resp, nil)
}

// CreatePost handles POST /api/v1/posts. The new post enters the
// moderation queue as pending.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		fieldErrors["content"] = "Content is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	post, err := h.content.Create(model.PostDraft{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
	}, *user)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	slog.Info("post submitted for review", "category", "post", "post_id", post.ID, "author_id", user.ID)
	WriteCreated(w, postToResponse(post))
}

// LikePost handles POST /api/v1/posts/{id}/like. An unknown id is a silent
// no-op: the response carries a null post rather than an error.
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, ok := h.content.Like(id)
	if !ok {
		WriteSuccess(w, nil, nil)
		return
	}
	WriteSuccess(w, postToResponse(post), nil)
}

// TrendingPosts handles GET /api/v1/posts/trending. The selection ignores
// the stored filters.
func (h *Handler) TrendingPosts(w http.ResponseWriter, _ *http.Request) {
	posts := h.content.Trending()
	WriteSuccess(w, postsToResponse(posts), &Meta{Total: len(posts)})
}

// Categories handles GET /api/v1/posts/categories.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, h.content.Categories(), nil)
}
