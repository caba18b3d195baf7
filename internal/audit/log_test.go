// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package audit

import (
	"fmt"
	"testing"
	"time"
)

func TestLog_AppendAndEntries(t *testing.T) {
	l := NewLog(10)

	l.Append(Entry{Level: LevelInfo, Category: CategorySystem, Message: "first"})
	l.Append(Entry{Level: LevelWarning, Category: CategoryAuth, Message: "second"})

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Message != "second" || entries[1].Message != "first" {
		t.Errorf("expected newest-first order, got %q then %q", entries[0].Message, entries[1].Message)
	}
	if entries[0].Time.IsZero() {
		t.Error("append must stamp a zero time")
	}
}

func TestLog_EvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Append(Entry{Message: fmt.Sprintf("msg-%d", i)})
	}

	if l.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", l.Len())
	}
	entries := l.Entries()
	if entries[0].Message != "msg-4" {
		t.Errorf("expected msg-4 newest, got %q", entries[0].Message)
	}
	if entries[2].Message != "msg-2" {
		t.Errorf("expected msg-2 oldest, got %q", entries[2].Message)
	}
}

func TestLog_KeepsExplicitTime(t *testing.T) {
	l := NewLog(10)
	stamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l.Append(Entry{Message: "stamped", Time: stamp})

	if got := l.Entries()[0].Time; !got.Equal(stamp) {
		t.Errorf("expected explicit time preserved, got %v", got)
	}
}
