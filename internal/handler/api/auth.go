// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bloghub/bloghub/internal/model"
	"github.com/bloghub/bloghub/internal/session"
)

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents the request body for registering.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse represents an established session in API responses.
type SessionResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Email) == "" {
		fieldErrors["email"] = "Email is required"
	}
	if req.Password == "" {
		fieldErrors["password"] = "Password is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	ip := r.Header.Get("X-Real-IP")
	if ip == "" {
		ip = r.RemoteAddr
	}
	if !h.protection.AllowAttempt(ip, req.Email) {
		WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded",
			"Too many login attempts. Please wait and try again.", nil)
		return
	}

	user, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			h.protection.RecordFailure(req.Email)
			WriteUnauthorized(w, "Invalid email or password")
			return
		}
		WriteInternalError(w, "Login failed")
		return
	}

	h.protection.RecordSuccess(req.Email)
	WriteSuccess(w, SessionResponse{
		Token: session.Token(user.ID),
		User:  user,
	}, nil)
}

// Signup handles POST /auth/signup. Registration always succeeds for a
// well-formed request and yields a reader account.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Email) == "" {
		fieldErrors["email"] = "Email is required"
	}
	if strings.TrimSpace(req.Username) == "" {
		fieldErrors["username"] = "Username is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	user, err := h.identity.Signup(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		WriteInternalError(w, "Signup failed")
		return
	}

	WriteCreated(w, SessionResponse{
		Token: session.Token(user.ID),
		User:  user,
	})
}

// Logout handles POST /auth/logout. Idempotent.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.Logout(r.Context()); err != nil {
		WriteInternalError(w, "Logout failed")
		return
	}
	WriteSuccess(w, nil, nil)
}

// Me handles GET /auth/me, restoring the session's user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.identity.Current(r.Context())
	if !ok {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, SessionResponse{
		Token: session.Token(user.ID),
		User:  user,
	}, nil)
}

// UpdateProfileRequest represents the request body for updating a profile.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// UpdateProfile handles PUT /auth/profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.identity.Current(r.Context())
	if !ok {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if strings.TrimSpace(req.Username) != "" {
		user.Username = req.Username
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := h.identity.UpdateProfile(r.Context(), user); err != nil {
		WriteInternalError(w, "Profile update failed")
		return
	}
	WriteSuccess(w, user, nil)
}
