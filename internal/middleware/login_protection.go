// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Login protection limits.
const (
	// LoginRatePerMinute is the sustained login attempt rate per IP.
	LoginRatePerMinute = 5
	// LoginBurst is the burst allowance per IP.
	LoginBurst = 5
	// LockoutThreshold is the number of failed attempts before an account
	// is locked.
	LockoutThreshold = 5
	// LockoutDuration is how long an account stays locked.
	LockoutDuration = 15 * time.Minute
	// maxTrackedEntries caps the limiter and lockout maps.
	maxTrackedEntries = 10000
)

// accountState tracks failed login attempts for a single account.
type accountState struct {
	failures    int
	lockedUntil time.Time
}

// LoginProtection combines per-IP rate limiting with per-account lockout
// for the login endpoint.
type LoginProtection struct {
	ips      *limiterCache[string]
	mu       sync.Mutex
	accounts map[string]*accountState
}

// NewLoginProtection creates login protection with default limits.
func NewLoginProtection() *LoginProtection {
	return &LoginProtection{
		ips:      newLimiterCache[string](LoginRatePerMinute/60.0, LoginBurst),
		accounts: make(map[string]*accountState),
	}
}

// AllowAttempt reports whether a login attempt from ip against the given
// email may proceed. Only the account lockout is checked here; the per-IP
// limiter belongs to Middleware, which runs once per request. It does not
// record an outcome; call RecordFailure or RecordSuccess after the
// credential check.
func (lp *LoginProtection) AllowAttempt(ip, email string) bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	state, ok := lp.accounts[normalizeEmail(email)]
	if !ok {
		return true
	}
	if time.Now().Before(state.lockedUntil) {
		slog.Warn("login attempt on locked account", "category", "auth", "ip", ip)
		return false
	}
	return true
}

// RecordFailure registers a failed login. The account locks after
// LockoutThreshold consecutive failures.
func (lp *LoginProtection) RecordFailure(email string) {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	if len(lp.accounts) > maxTrackedEntries {
		lp.accounts = make(map[string]*accountState)
	}

	key := normalizeEmail(email)
	state, ok := lp.accounts[key]
	if !ok {
		state = &accountState{}
		lp.accounts[key] = state
	}

	state.failures++
	if state.failures >= LockoutThreshold {
		state.lockedUntil = time.Now().Add(LockoutDuration)
		state.failures = 0
		slog.Warn("account locked after repeated login failures", "category", "auth")
	}
}

// RecordSuccess clears the failure count for an account.
func (lp *LoginProtection) RecordSuccess(email string) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	delete(lp.accounts, normalizeEmail(email))
}

// Middleware applies the per-IP limiter to the wrapped handler. Account
// lockout is checked inside the login handler where the email is known.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)
			if !lp.ips.get(ip).Allow() {
				slog.Warn("login rate limit exceeded", "category", "auth", "ip", ip)
				http.Error(w, "Too many login attempts. Please wait and try again.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
