// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"testing"

	"github.com/bloghub/bloghub/internal/model"
)

func TestUserDirectory_FindByEmail(t *testing.T) {
	d := NewUserDirectory(FixtureUsers())

	user, ok := d.FindByEmail("admin@blog.com")
	if !ok {
		t.Fatal("expected to find admin account")
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}

	// Lookup is case-insensitive.
	if _, ok := d.FindByEmail("ADMIN@BLOG.COM"); !ok {
		t.Error("expected case-insensitive email lookup")
	}

	if _, ok := d.FindByEmail("nobody@blog.com"); ok {
		t.Error("unknown email must not resolve")
	}
}

func TestUserDirectory_AddDuplicateEmail(t *testing.T) {
	d := NewUserDirectory(nil)
	d.Add(model.User{ID: "1", Email: "a@b.com", Username: "first"})
	d.Add(model.User{ID: "2", Email: "a@b.com", Username: "second"})

	if d.Len() != 2 {
		t.Fatalf("directory accepts duplicate emails, expected 2 entries, got %d", d.Len())
	}

	// First registration wins on lookup.
	user, ok := d.FindByEmail("a@b.com")
	if !ok || user.ID != "1" {
		t.Errorf("expected first account to win lookup, got %+v", user)
	}
}

func TestFixtureUsers(t *testing.T) {
	users := FixtureUsers()
	if len(users) != 3 {
		t.Fatalf("expected 3 fixture users, got %d", len(users))
	}

	admins := 0
	for _, u := range users {
		if !u.Valid() {
			t.Errorf("fixture user %q is invalid", u.ID)
		}
		if u.IsAdmin() {
			admins++
		}
	}
	if admins != 1 {
		t.Errorf("expected exactly one admin fixture, got %d", admins)
	}
}
