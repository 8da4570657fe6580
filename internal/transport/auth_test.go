package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/session"
	"github.com/stretchr/testify/require"
)

type testResolver struct {
	enabled bool
	tokens  map[string]*session.Session
}

func (r *testResolver) Enabled() bool {
	return r.enabled
}

func (r *testResolver) Validate(_ context.Context, token string) (*session.Session, error) {
	sess, ok := r.tokens[token]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return sess, nil
}

func TestRequireAdmin_Bearer(t *testing.T) {
	resolver := &testResolver{enabled: true, tokens: map[string]*session.Session{
		"token": {Token: "token", ClientKey: "10.0.0.1", ExpiresAt: time.Now().Add(time.Hour)},
	}}

	handler := RequireAdmin(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := AdminFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "token", sess.Token)
		require.Equal(t, "10.0.0.1", activity.ActorFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_Cookie(t *testing.T) {
	resolver := &testResolver{enabled: true, tokens: map[string]*session.Session{
		"cookie-token": {Token: "cookie-token"},
	}}

	handler := RequireAdmin(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAdmin_Invalid(t *testing.T) {
	resolver := &testResolver{enabled: true}

	handler := RequireAdmin(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, auth := range []string{"", "Bearer nope"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireAdmin_GateDisabled(t *testing.T) {
	handler := RequireAdmin(&testResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := AdminFromContext(r.Context())
		require.False(t, ok)
		require.Equal(t, "192.0.2.1", activity.ActorFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenFromRequest_PrefersHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie"})
	require.Equal(t, "header", TokenFromRequest(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Equal(t, "cookie", TokenFromRequest(req))
}
