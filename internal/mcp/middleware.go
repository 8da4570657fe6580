package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/memad/portfolio/internal/domain/activity"
)

type contextKey int

const adminKey contextKey = iota

// isAdmin reports whether the caller may use mutating tools.
func isAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}

// authMiddleware resolves the bearer token, if any, into an admin identity.
// Anonymous callers keep read access; a token that does not validate is rejected outright.
func authMiddleware(resolver SessionResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if resolver == nil || !resolver.Enabled() {
				ctx = context.WithValue(ctx, adminKey, true)
				ctx = activity.WithActor(ctx, "mcp")
				return next(ctx, method, req)
			}

			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" || strings.HasPrefix(method, "notifications/") {
				return next(ctx, method, req)
			}

			token := bearerToken(req)
			if token == "" {
				return next(ctx, method, req)
			}

			sess, err := resolver.Validate(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}

			ctx = context.WithValue(ctx, adminKey, true)
			ctx = activity.WithActor(ctx, "mcp:"+sess.ClientKey)
			return next(ctx, method, req)
		}
	}
}

func bearerToken(req sdkmcp.Request) string {
	extra := req.GetExtra()
	if extra == nil || extra.Header == nil {
		return ""
	}
	auth := extra.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
