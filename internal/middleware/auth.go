package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CallerResolver resolves a bearer token to a user id. The repo package's
// SessionRepo satisfies it in production; tests supply a stub.
type CallerResolver interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// callerKey is the context key for the authenticated caller's user id.
// An unexported struct type prevents collisions with other packages.
type callerKey struct{}

// WithCallerID returns a context carrying the caller's user id.
// Exported for handler tests that bypass the middleware.
func WithCallerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// CallerID extracts the authenticated caller's user id from the context.
// ok is false when the request did not pass through the auth middleware.
func CallerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerKey{}).(uuid.UUID)
	return id, ok
}

// NewAuthenticator returns a middleware that resolves the Authorization
// bearer token to a caller id and injects it into the request context.
//
// A missing or unknown token is rejected with 404 — the same status a
// missing resource produces, so responses never reveal whether a session
// (or the account behind it) exists.
func NewAuthenticator(sessions CallerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				rejectCaller(w)
				return
			}

			userID, err := sessions.GetUserID(r.Context(), token)
			if err != nil {
				rejectCaller(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCallerID(r.Context(), userID)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case-insensitive per RFC 9110.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	return auth[len(prefix):], true
}

func rejectCaller(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized: User not found"})
}
