package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-console/internal/domain"
	"delivery-console/internal/notify"
	"delivery-console/internal/session"

	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, app session.App, user *domain.User) *session.Store {
	t.Helper()
	store := session.New(session.NewMemoryBackend(), app)
	if user != nil {
		require.NoError(t, store.SaveLogin(context.Background(), "opaque-token", *user))
	}
	return store
}

func newBus(t *testing.T) *notify.Bus {
	t.Helper()
	bus := notify.NewBus(nil)
	t.Cleanup(bus.Close)
	return bus
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func strPtr(s string) *string { return &s }
