package session_test

import (
	"context"
	"testing"
	"time"

	"delivery-console/internal/domain"
	"delivery-console/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "olena",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestKeysFor(t *testing.T) {
	assert.Equal(t, session.Keys{Token: "token", User: "user_role"}, session.KeysFor(session.AppAdmin))
	assert.Equal(t, session.Keys{Token: "client_token", User: "client_user"}, session.KeysFor(session.AppStorefront))
}

func TestParseApp(t *testing.T) {
	app, err := session.ParseApp("storefront")
	require.NoError(t, err)
	assert.Equal(t, session.AppStorefront, app)

	_, err = session.ParseApp("kiosk")
	assert.Error(t, err)
}

func TestStore_SaveAndClear(t *testing.T) {
	ctx := context.Background()
	store := session.New(session.NewMemoryBackend(), session.AppStorefront)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	user := domain.User{ID: 7, Username: "olena", Role: domain.RoleClient}
	require.NoError(t, store.SaveLogin(ctx, "opaque-token", user))

	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	stored, err := store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, &user, stored)

	require.NoError(t, store.Clear(ctx))
	token, _ = store.Token(ctx)
	assert.Empty(t, token)
	stored, _ = store.User(ctx)
	assert.Nil(t, stored)
}

func TestStore_ExpiredTokenIsWiped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	backend := session.NewMemoryBackend()
	store := session.New(backend, session.AppAdmin).WithClock(func() time.Time { return now })

	require.NoError(t, store.SaveLogin(ctx, signedToken(t, now.Add(-time.Minute)), domain.User{ID: 1, Role: domain.RoleSystemAdmin}))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	_, ok, _ := backend.Get(ctx, "user_role")
	assert.False(t, ok)
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, session.TokenExpired(signedToken(t, now.Add(-time.Second)), now))
	assert.False(t, session.TokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.False(t, session.TokenExpired("not-a-jwt", now))
}
