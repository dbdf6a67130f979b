package auth

import (
	"context"
	"net/http"
	"strings"
)

// User identity is resolved upstream; the service trusts an opaque
// user id header and falls back to the demo identity when absent.
const (
	UserHeader  = "X-User-Id"
	DefaultUser = "demo-user"
)

type userKey struct{}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserHeader))
		if userID == "" {
			userID = DefaultUser
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

func UserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userKey{}).(string); ok {
		return userID
	}
	return DefaultUser
}
