// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/bloghub/bloghub/internal/model"
)

// Loader populates a content store from a data source after a simulated
// load latency. Until it completes, the store reports not ready and all
// derived views observe an empty collection.
//
// A real backend integration replaces only Source and the delay; the
// completion signal into the store stays the same.
type Loader struct {
	Store  *ContentStore
	Delay  time.Duration
	Source func() []model.Post
}

// NewLoader returns a loader that applies the fixture post set.
func NewLoader(s *ContentStore, delay time.Duration) *Loader {
	return &Loader{
		Store:  s,
		Delay:  delay,
		Source: FixturePosts,
	}
}

// Start runs the load in a background goroutine. The load is skipped if ctx
// is cancelled before the delay elapses.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		timer := time.NewTimer(l.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		posts := l.Source()
		l.Store.Load(posts)
		slog.Info("content store loaded", "posts", len(posts), "delay", l.Delay)
	}()
}
