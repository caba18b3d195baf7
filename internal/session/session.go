// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session provides the identity session layer: an scs session
// manager persisted in SQLite, and the Identity service implementing
// login, signup, logout and session restoration on top of it.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys for the persisted identity record. The user record must
// round-trip through JSON without loss; if it fails to parse on restore,
// both keys are cleared and the session falls back to unauthenticated.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// New creates a new session manager backed by the SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	sm.Store = sqlite3store.New(db)

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
