// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package audit keeps a bounded in-memory log of notable application
// events, browsable from the admin area. It replaces a database event
// table; like the post collection, audit history is memory-resident.
package audit

import (
	"sync"
	"time"
)

// Event levels.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Event categories.
const (
	CategoryAuth   = "auth"
	CategoryPost   = "post"
	CategoryUser   = "user"
	CategorySystem = "system"
)

// Entry is a single audit log record.
type Entry struct {
	Time     time.Time         `json:"time"`
	Level    string            `json:"level"`
	Category string            `json:"category"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Log is a bounded, thread-safe audit log. When full, the oldest entries
// are dropped.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

// NewLog creates an audit log holding at most max entries.
func NewLog(max int) *Log {
	if max <= 0 {
		max = 1000
	}
	return &Log{max: max}
}

// Append adds an entry, evicting the oldest if the log is full.
func (l *Log) Append(e Entry) {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Entries returns a snapshot of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of entries currently held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
