package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/session"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type adminKey struct{}

// SessionResolver validates admin tokens.
type SessionResolver interface {
	// Enabled reports whether the admin gate is active. When false every caller is admin.
	Enabled() bool
	Validate(ctx context.Context, token string) (*session.Session, error)
}

// AdminFromContext returns the admin session from context, if present.
func AdminFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(adminKey{}).(*session.Session)
	return sess, ok
}

// RequireAdmin rejects requests without a live admin session, taken from the
// Authorization bearer token or the session cookie.
func RequireAdmin(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolver == nil || !resolver.Enabled() {
				ctx := activity.WithActor(r.Context(), ClientKey(r))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := TokenFromRequest(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "admin login required")
				return
			}

			sess, err := resolver.Validate(r.Context(), token)
			if err != nil || sess == nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired admin session")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey{}, sess)
			ctx = activity.WithActor(ctx, sess.ClientKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
