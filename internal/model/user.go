// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including User, Post, and filter structures.
package model

import (
	"time"
)

// User roles. Roles form a closed set: a user is either a reader or an
// administrator.
const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

// User represents a registered account. Users are append-only: nothing in
// the exposed API mutates a user after creation except the profile update,
// which no view currently calls.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	Avatar    string    `json:"avatar,omitempty"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Valid reports whether the user carries the minimum identity needed to
// stamp authorship on a post.
func (u *User) Valid() bool {
	return u.ID != "" && u.Email != ""
}
