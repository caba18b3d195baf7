// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/bloghub/bloghub/internal/auth"
	"github.com/bloghub/bloghub/internal/model"
	"github.com/bloghub/bloghub/internal/store"
)

// ErrInvalidCredentials is returned by Login when the email is unknown or
// the secret does not match. The session is left untouched in both cases.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Identity maintains at most one authenticated user per client session,
// durable across restarts through the session manager's store. There is no
// network validation of the token; trust is storage-based, a stand-in for a
// real credential verification step.
type Identity struct {
	sm         *scs.SessionManager
	users      *store.UserDirectory
	secretHash string
}

// NewIdentity creates the identity service. secretHash is the argon2id hash
// of the shared demo password every known account authenticates with.
func NewIdentity(sm *scs.SessionManager, users *store.UserDirectory, secretHash string) *Identity {
	return &Identity{sm: sm, users: users, secretHash: secretHash}
}

// Token synthesizes the session token for a user. It is deterministic by
// design so a restored session can be correlated with its account.
func Token(userID string) string {
	return fmt.Sprintf("token-%s", userID)
}

// Login authenticates an email against the directory and the shared secret.
// On success the session is renewed (fixation defence) and the token and
// user record are persisted. On any mismatch it returns
// ErrInvalidCredentials without altering the session.
func (i *Identity) Login(ctx context.Context, email, secret string) (model.User, error) {
	user, ok := i.users.FindByEmail(email)
	if !ok {
		slog.Debug("login attempt for unknown email", "email", email)
		return model.User{}, ErrInvalidCredentials
	}

	valid, err := auth.CheckPassword(secret, i.secretHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		return model.User{}, ErrInvalidCredentials
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		return model.User{}, ErrInvalidCredentials
	}

	if err := i.establish(ctx, user); err != nil {
		return model.User{}, err
	}

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Signup unconditionally registers a new reader account and establishes the
// session. There is no duplicate-email check; see the directory docs.
func (i *Identity) Signup(ctx context.Context, email, username, secret string) (model.User, error) {
	_ = secret // accepted but not stored; all demo accounts share one secret

	user := model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		Role:      model.RoleReader,
		CreatedAt: time.Now().UTC(),
	}
	i.users.Add(user)

	if err := i.establish(ctx, user); err != nil {
		return model.User{}, err
	}

	slog.Info("user signed up", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Logout clears the persisted token and user record. Idempotent: logging
// out an unauthenticated session is a no-op.
func (i *Identity) Logout(ctx context.Context) error {
	if err := i.sm.Destroy(ctx); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

// Current restores the session's user. Both the token and the user record
// must be present; a user record that fails to parse clears the whole
// session and yields unauthenticated. Parse failures are recovered
// silently, never surfaced.
func (i *Identity) Current(ctx context.Context) (model.User, bool) {
	token := i.sm.GetString(ctx, KeyToken)
	raw := i.sm.GetString(ctx, KeyUser)
	if token == "" || raw == "" {
		return model.User{}, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		slog.Warn("malformed persisted session, clearing", "error", err)
		_ = i.sm.Destroy(ctx)
		return model.User{}, false
	}
	return user, true
}

// UpdateProfile re-persists the user record for the current session. It is
// exposed for completeness; no view calls it today. Calling it on an
// unauthenticated session is a safe no-op.
func (i *Identity) UpdateProfile(ctx context.Context, user model.User) error {
	if _, ok := i.Current(ctx); !ok {
		return nil
	}
	return i.putUser(ctx, user)
}

// establish renews the session token and persists the identity record.
func (i *Identity) establish(ctx context.Context, user model.User) error {
	if err := i.sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	i.sm.Put(ctx, KeyToken, Token(user.ID))
	return i.putUser(ctx, user)
}

func (i *Identity) putUser(ctx context.Context, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user record: %w", err)
	}
	i.sm.Put(ctx, KeyUser, string(raw))
	return nil
}
