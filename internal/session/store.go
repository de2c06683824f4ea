// Package session keeps the bearer credentials of one console application.
// It replaces browser local storage: the store is created at start-up and
// handed to the API client and the routing guard explicitly.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"delivery-console/internal/domain"
)

type App string

const (
	AppAdmin      App = "admin"
	AppStorefront App = "storefront"
)

func ParseApp(raw string) (App, error) {
	switch App(raw) {
	case AppAdmin, AppStorefront:
		return App(raw), nil
	}
	return "", fmt.Errorf("unknown app %q (want admin or storefront)", raw)
}

// Keys are the fixed key names credentials are persisted under.
type Keys struct {
	Token string
	User  string
}

func KeysFor(app App) Keys {
	if app == AppAdmin {
		return Keys{Token: "token", User: "user_role"}
	}
	return Keys{Token: "client_token", User: "client_user"}
}

// Backend is the key/value persistence behind a Store.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type Store struct {
	backend Backend
	keys    Keys
	now     func() time.Time
}

func New(backend Backend, app App) *Store {
	return &Store{backend: backend, keys: KeysFor(app), now: time.Now}
}

// WithClock overrides the clock used for token expiry checks.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Keys() Keys {
	return s.keys
}

// Token returns the stored bearer token, or "" when there is none. An
// expired JWT is wiped and reported as absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, ok, err := s.backend.Get(ctx, s.keys.Token)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if !ok || token == "" {
		return "", nil
	}
	if TokenExpired(token, s.now()) {
		if err := s.Clear(ctx); err != nil {
			return "", err
		}
		return "", nil
	}
	return token, nil
}

func (s *Store) User(ctx context.Context) (*domain.User, error) {
	raw, ok, err := s.backend.Get(ctx, s.keys.User)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &user, nil
}

func (s *Store) SaveLogin(ctx context.Context, token string, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.keys.Token, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := s.backend.Set(ctx, s.keys.User, string(payload)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, s.keys.Token, s.keys.User)
}
