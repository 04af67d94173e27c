package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/emrekoca/mealweek-server/internal/middleware"
	"github.com/emrekoca/mealweek-server/internal/store"
)

// UserHandler serves profile and follow operations.
type UserHandler struct {
	Store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{Store: st}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, found, err := h.Store.GetUser(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading user %s failed: %v", uid, err)
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// Follow handles POST /api/users/{uid}/follow.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	target := mux.Vars(r)["uid"]
	if err := h.Store.Follow(r.Context(), uid, target); err != nil {
		log.Printf("api: %s following %s failed: %v", uid, target, err)
		http.Error(w, "Failed to follow user", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unfollow handles DELETE /api/users/{uid}/follow.
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	target := mux.Vars(r)["uid"]
	if err := h.Store.Unfollow(r.Context(), uid, target); err != nil {
		log.Printf("api: %s unfollowing %s failed: %v", uid, target, err)
		http.Error(w, "Failed to unfollow user", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
