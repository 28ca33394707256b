package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

type credentialsValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
	ValidateSession(ctx context.Context, rawToken string) (uuid.UUID, string, error)
}

// Auth authenticates a request from either a bearer access token or the
// session cookie. A bearer token takes precedence when both are present.
// Requests carrying neither pass through anonymously; handlers that need
// a user reject them via the services.
func Auth(validator credentialsValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				userID, err := validator.ValidateToken(r.Context(), token)
				if err != nil {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				ctx := ctxutil.WithUserID(r.Context(), userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				userID, sessionHash, err := validator.ValidateSession(r.Context(), cookie.Value)
				if err != nil {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				ctx := ctxutil.WithUserID(r.Context(), userID)
				ctx = ctxutil.WithSessionHash(ctx, sessionHash)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r) // Anonymous
		})
	}
}

// RequireUser rejects requests that Auth let through anonymously.
// Mount it on routes that must have an authenticated caller.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
