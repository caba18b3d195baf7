// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"testing"
	"time"

	"github.com/bloghub/bloghub/internal/model"
)

func TestLoader_LoadsAfterDelay(t *testing.T) {
	s := NewContentStore()
	l := NewLoader(s, 10*time.Millisecond)
	l.Source = func() []model.Post {
		return []model.Post{testPost("1", model.StatusApproved, 0, 0, time.Now())}
	}

	l.Start(context.Background())

	if s.Ready() {
		t.Error("store must not be ready before the delay elapses")
	}

	deadline := time.After(2 * time.Second)
	for !s.Ready() {
		select {
		case <-deadline:
			t.Fatal("loader did not complete in time")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if s.Len() != 1 {
		t.Errorf("expected 1 post after load, got %d", s.Len())
	}
}

func TestLoader_CancelledContextSkipsLoad(t *testing.T) {
	s := NewContentStore()
	l := NewLoader(s, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Start(ctx)

	time.Sleep(100 * time.Millisecond)
	if s.Ready() {
		t.Error("cancelled loader must not populate the store")
	}
}
