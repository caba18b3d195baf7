// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store holds the authoritative in-memory post collection and the
// query engine deriving filtered, sorted and trending views from it, plus
// the SQLite-backed session database.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bloghub/bloghub/internal/model"
)

// ErrAuthorRequired is returned by Create when no valid author is supplied.
var ErrAuthorRequired = errors.New("store: post author required")

// TrendingLimit is the fixed size of the trending view.
const TrendingLimit = 6

// DefaultCategory is assigned to drafts that carry no category.
const DefaultCategory = "General"

// ContentStore owns the post collection and the active listing filters.
// Derived views are recomputed on every read; the collection is small and
// mutation-driven, so nothing is cached here.
//
// Mutations swap the whole collection value, so readers never observe a
// partially applied update.
type ContentStore struct {
	mu      sync.RWMutex
	posts   []model.Post
	filters model.Filters
	ready   bool
}

// NewContentStore returns an empty store in the loading state. Until Load
// is called every derived view observes an empty collection.
func NewContentStore() *ContentStore {
	return &ContentStore{}
}

// Load replaces the collection with the given posts and marks the store
// ready. It is also used by the demo resetter to restore fixtures.
func (s *ContentStore) Load(posts []model.Post) {
	next := make([]model.Post, len(posts))
	copy(next, posts)

	s.mu.Lock()
	s.posts = next
	s.ready = true
	s.mu.Unlock()
}

// Ready reports whether the initial data source has completed.
func (s *ContentStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Len returns the number of posts in the collection.
func (s *ContentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// All returns a snapshot of the collection in storage order.
func (s *ContentStore) All() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Create builds a new pending post from the draft, stamps the author, and
// prepends it to the collection. Counters start at zero and both timestamps
// at now, so a fresh post always has UpdatedAt equal to CreatedAt.
func (s *ContentStore) Create(draft model.PostDraft, author model.User) (model.Post, error) {
	if !author.Valid() {
		return model.Post{}, ErrAuthorRequired
	}

	now := time.Now().UTC()
	category := draft.Category
	if category == "" {
		category = DefaultCategory
	}
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	post := model.Post{
		ID:            uuid.NewString(),
		Title:         draft.Title,
		Content:       draft.Content,
		Excerpt:       draft.Excerpt,
		Author:        author,
		Status:        model.StatusPending,
		Category:      category,
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
		FeaturedImage: draft.FeaturedImage,
	}

	s.mu.Lock()
	next := make([]model.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	s.posts = next
	s.mu.Unlock()

	return post, nil
}

// SetStatus transitions a post to approved or rejected. PublishedAt is set
// only on approval and a previously set value survives a later rejection:
// it marks when the post was first approved. Unknown ids and unknown
// statuses are silent no-ops.
func (s *ContentStore) SetStatus(id, status string) (model.Post, bool) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return model.Post{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Post{}, false
	}

	now := time.Now().UTC()
	next := s.snapshot()
	next[i].Status = status
	next[i].UpdatedAt = now
	if status == model.StatusApproved {
		next[i].PublishedAt = &now
	}
	s.posts = next
	return next[i], true
}

// Delete removes the post with the given id. Unknown ids are a no-op.
func (s *ContentStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	next := make([]model.Post, 0, len(s.posts)-1)
	next = append(next, s.posts[:i]...)
	next = append(next, s.posts[i+1:]...)
	s.posts = next
	return true
}

// Like increments the like counter by exactly one. Comments and views are
// untouched. Unknown ids are a no-op. Deduplication of repeat likes is a
// view concern, not enforced here.
func (s *ContentStore) Like(id string) (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Post{}, false
	}

	next := s.snapshot()
	next[i].Likes++
	next[i].UpdatedAt = time.Now().UTC()
	s.posts = next
	return next[i], true
}

// SetFilters replaces the active listing criteria wholesale.
func (s *ContentStore) SetFilters(f model.Filters) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
}

// Filters returns the active listing criteria.
func (s *ContentStore) Filters() model.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Query derives the filtered, sorted view using the active criteria.
// The search term matches case-insensitively against title, excerpt and
// tags; category and status match exactly. Sorting is stable: posts with
// equal keys keep their storage order.
func (s *ContentStore) Query() []model.Post {
	s.mu.RLock()
	posts := s.snapshot()
	f := s.filters
	s.mu.RUnlock()

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		filtered := posts[:0]
		for _, p := range posts {
			if matchesSearch(p, term) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	if f.Category != "" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.Category == f.Category {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	if f.Status != "" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.Status == f.Status {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	switch f.SortBy {
	case model.SortTrending:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Engagement() > posts[j].Engagement()
		})
	case model.SortOldest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.Before(posts[j].CreatedAt)
		})
	default: // latest, including unrecognized sort modes
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}

	return posts
}

// GetByID returns the post with the given id, or false if absent.
func (s *ContentStore) GetByID(id string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Post{}, false
	}
	return clonePost(s.posts[i]), true
}

// Trending returns the fixed engagement-ranked view: approved posts sorted
// by likes+comments descending with stable ties, capped at TrendingLimit.
// It ignores the active filters.
func (s *ContentStore) Trending() []model.Post {
	s.mu.RLock()
	posts := s.snapshot()
	s.mu.RUnlock()

	approved := posts[:0]
	for _, p := range posts {
		if p.Status == model.StatusApproved {
			approved = append(approved, p)
		}
	}

	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Engagement() > approved[j].Engagement()
	})

	if len(approved) > TrendingLimit {
		approved = approved[:TrendingLimit]
	}
	return approved
}

// Categories returns the distinct categories present in the collection,
// sorted alphabetically. The filter bar in the UI is built from this.
func (s *ContentStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.posts))
	categories := make([]string, 0, len(s.posts))
	for _, p := range s.posts {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// snapshot returns a copy of the collection. Tags slices are cloned as well
// so callers can never mutate stored posts through a returned view.
// Callers must hold at least the read lock.
func (s *ContentStore) snapshot() []model.Post {
	posts := make([]model.Post, len(s.posts))
	for i, p := range s.posts {
		posts[i] = clonePost(p)
	}
	return posts
}

// indexOf returns the position of the post with the given id, or -1.
// Callers must hold at least the read lock. Linear scan is fine at this
// scale.
func (s *ContentStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func clonePost(p model.Post) model.Post {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		p.PublishedAt = &t
	}
	return p
}

func matchesSearch(p model.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
