package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/akun-go/apperror"
)

// contextKey is a private type for context keys so values set by this package
// cannot collide with other packages.
type contextKey string

// userIDKey is the key under which the authenticated user's id is stored in
// the request context.
const userIDKey contextKey = "userID"

// Messages returned by the gate. The service speaks Indonesian to its clients.
const (
	msgTokenMissing = "Token tidak ditemukan"
	msgTokenInvalid = "Token tidak valid"
)

// JWTMiddleware gates protected routes. It rejects requests without a valid
// bearer token and, on success, attaches the token's embedded user id to the
// request context for the downstream handler.
//
// The gate trusts the token signature alone; it never consults the datastore.
func JWTMiddleware(issuer *Issuer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError(msgTokenMissing, nil))
				return
			}

			// The header must be in the form "Bearer <token>".
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				WriteError(w, r, apperror.NewAuthError(msgTokenMissing, nil))
				return
			}

			userID, err := issuer.Verify(parts[1])
			if err != nil {
				// Bad signature, expiry, and malformed tokens all collapse to
				// a single 401; clients get no hint which check failed.
				WriteError(w, r, apperror.NewAuthError(msgTokenInvalid, err))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the authenticated user id stored by
// JWTMiddleware. The bool is false when the request did not pass the gate.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
