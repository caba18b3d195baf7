// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"strings"
	"sync"

	"github.com/bloghub/bloghub/internal/model"
)

// UserDirectory is the registry of known accounts: the fixture allow-list
// plus any accounts created through signup. Accounts are never removed.
//
// Signup performs no duplicate-email check; the first matching account wins
// on lookup.
type UserDirectory struct {
	mu    sync.RWMutex
	users []model.User
}

// NewUserDirectory returns a directory seeded with the given accounts.
func NewUserDirectory(seed []model.User) *UserDirectory {
	users := make([]model.User, len(seed))
	copy(users, seed)
	return &UserDirectory{users: users}
}

// FindByEmail returns the first account matching the email,
// case-insensitively.
func (d *UserDirectory) FindByEmail(email string) (model.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

// Add appends a new account to the directory.
func (d *UserDirectory) Add(u model.User) {
	d.mu.Lock()
	d.users = append(d.users, u)
	d.mu.Unlock()
}

// Len returns the number of registered accounts.
func (d *UserDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
