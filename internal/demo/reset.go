// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package demo restores the content store to its seed data on a schedule.
// Public demo deployments accumulate junk posts; a periodic reset keeps
// them presentable.
package demo

import (
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/bloghub/bloghub/internal/model"
	"github.com/bloghub/bloghub/internal/store"
)

// Resetter periodically restores the content store to its seed posts.
type Resetter struct {
	store  *store.ContentStore
	cron   *cron.Cron
	seed   func() []model.Post
	logger *slog.Logger
}

// New creates a resetter for the given store. Seed defaults to the
// built-in fixtures.
func New(s *store.ContentStore, logger *slog.Logger) *Resetter {
	return &Resetter{
		store:  s,
		cron:   cron.New(),
		seed:   store.FixturePosts,
		logger: logger,
	}
}

// Start schedules resets on the given cron spec (e.g. "0 * * * *" for
// hourly).
func (r *Resetter) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, r.Reset)
	if err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("demo reset scheduled", "spec", spec)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running reset.
func (r *Resetter) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("demo reset stopped")
}

// Reset replaces all posts with the seed data.
func (r *Resetter) Reset() {
	posts := r.seed()
	r.store.Load(posts)
	r.logger.Info("demo content reset", "category", "system", "posts", len(posts))
}
