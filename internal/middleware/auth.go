// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/bloghub/bloghub/internal/model"
	"github.com/bloghub/bloghub/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request-scoped data.
const (
	ContextKeyUser        ContextKey = "user"
	ContextKeyRequestPath ContextKey = "request_path"
)

// Redirect targets of the route guard. These strings are the guard's whole
// contract with the router.
const (
	RedirectLogin        = "/login"
	RedirectUnauthorized = "/unauthorized"
)

// Auth creates middleware that requires an authenticated session.
// Unauthenticated requests are redirected to the login view.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sm.GetString(r.Context(), session.KeyToken) == "" {
				http.Redirect(w, r, RedirectLogin, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadUser creates middleware that loads the session's user record into the
// request context. A record that fails to parse clears the session and
// redirects to login. Use after Auth.
func LoadUser(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := sm.GetString(r.Context(), session.KeyUser)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			var user model.User
			if err := json.Unmarshal([]byte(raw), &user); err != nil {
				slog.Warn("malformed session user record, clearing session", "error", err)
				_ = sm.Destroy(r.Context())
				http.Redirect(w, r, RedirectLogin, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalLoadUser is LoadUser without the redirect: a missing or malformed
// record just continues unauthenticated. Use on public routes where user
// context is useful but not required.
func OptionalLoadUser(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := sm.GetString(r.Context(), session.KeyUser)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			var user model.User
			if err := json.Unmarshal([]byte(raw), &user); err != nil {
				_ = sm.Destroy(r.Context())
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the current user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}

// RequireRole creates middleware that requires an exact user role.
// Unauthenticated requests go to login; authenticated requests with a
// different role go to the unauthorized view. Roles are a closed set, so
// the match is exact rather than hierarchical.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUser(r)
			if user == nil {
				http.Redirect(w, r, RedirectLogin, http.StatusSeeOther)
				return
			}

			if user.Role != role {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"user_id", user.ID,
					"user_role", user.Role,
					"required_role", role,
				)
				http.Redirect(w, r, RedirectUnauthorized, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin creates middleware that requires the admin role.
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(model.RoleAdmin)
}

// RequestPath creates middleware that stores the request path in the context.
// This is used by the logging handler to include the URL in error logs.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath retrieves the request path from the context.
func GetRequestPath(ctx context.Context) string {
	path, ok := ctx.Value(ContextKeyRequestPath).(string)
	if !ok {
		return ""
	}
	return path
}
