package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

type contextKey string

const userKey contextKey = "user"

// AuthMiddleware verifies the Firebase ID token on every request and puts
// the decoded token into the request context.
func AuthMiddleware(authClient *auth.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
				return
			}

			verified, err := authClient.VerifyIDToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, verified)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated uid from the context.
func GetUserID(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(userKey).(*auth.Token)
	if !ok {
		return "", false
	}
	return token.UID, true
}
