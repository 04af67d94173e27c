package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/emrekoca/mealweek-server/internal/store"
)

// Service verifies Firebase ID tokens and provisions user documents. The
// popup sign-in itself happens in the browser against the identity
// provider; the server only ever sees the resulting ID token.
type Service struct {
	AuthClient *auth.Client
	Store      *store.Store
}

func NewService(authClient *auth.Client, st *store.Store) *Service {
	return &Service{AuthClient: authClient, Store: st}
}

// VerifyToken checks a Firebase ID token and returns its decoded claims.
func (s *Service) VerifyToken(ctx context.Context, token string) (*auth.Token, error) {
	return s.AuthClient.VerifyIDToken(ctx, token)
}

// Session handles POST /api/auth/session: it verifies the ID token from
// the Authorization header, creates the user document on first sign-in and
// returns the profile.
func (s *Service) Session(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if header == "" {
		http.Error(w, "Authorization header required", http.StatusUnauthorized)
		return
	}
	idToken := strings.TrimPrefix(header, "Bearer ")
	if idToken == header {
		http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
		return
	}

	token, err := s.VerifyToken(r.Context(), idToken)
	if err != nil {
		http.Error(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	user, err := s.Store.EnsureUser(r.Context(), identityFromToken(token))
	if err != nil {
		log.Printf("auth: provisioning user %s failed: %v", token.UID, err)
		http.Error(w, "Failed to load user profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// identityFromToken pulls the profile fields out of the ID token claims.
func identityFromToken(token *auth.Token) store.Identity {
	id := store.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		id.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		id.PhotoURL = picture
	}
	return id
}
