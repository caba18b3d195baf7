// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"
)

// Post moderation statuses. Every post starts pending and moves to approved
// or rejected through the admin moderation queue.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is a known moderation status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Post is a unit of authored content subject to moderation.
//
// Author is a value copy taken at creation time, not a live reference:
// later profile changes do not propagate to existing posts.
// Comments and Views are tracked but no exposed operation increments them.
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Author        User       `json:"author"`
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Likes         int        `json:"likes"`
	Comments      int        `json:"comments"`
	Views         int        `json:"views"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	FeaturedImage string     `json:"featured_image,omitempty"`
}

// Engagement is the trending sort key: likes plus comments.
func (p *Post) Engagement() int {
	return p.Likes + p.Comments
}

// PostDraft holds the author-supplied fields of a new post. Missing textual
// fields default to empty strings, the category to "General" and the tags to
// an empty set at creation time.
type PostDraft struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featured_image"`
}

// Sort modes for post listings.
const (
	SortLatest   = "latest"
	SortOldest   = "oldest"
	SortTrending = "trending"
)

// Filters holds the active listing criteria. The zero value means no
// filtering and the default (latest) sort. Filters are replaced wholesale,
// never merged.
type Filters struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	SortBy   string `json:"sort_by,omitempty"`
}
