package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/emrekoca/mealweek-server/internal/catalog"
	"github.com/emrekoca/mealweek-server/internal/middleware"
	"github.com/emrekoca/mealweek-server/internal/models"
	"github.com/emrekoca/mealweek-server/internal/store"
)

// MealHandler serves the combined default+personal meal catalog.
type MealHandler struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewMealHandler(st *store.Store, cat *catalog.Catalog) *MealHandler {
	return &MealHandler{Store: st, Catalog: cat}
}

// List handles GET /api/meals with filter, q and type query parameters.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// A failed refresh falls back to whatever is cached.
	if err := h.Catalog.Load(r.Context()); err != nil {
		log.Printf("api: refreshing meal catalog failed: %v", err)
	}

	personal, err := h.Store.UserMeals(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading personal meals for %s failed: %v", uid, err)
		personal = []models.Meal{}
	}

	query := r.URL.Query()
	meals := catalog.FilterMeals(h.Catalog.DefaultMeals(), personal, catalog.MealQuery{
		Filter: query.Get("filter"),
		Search: query.Get("q"),
		Type:   query.Get("type"),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meals)
}

// Create handles POST /api/meals: a new personal meal for the signed-in
// user.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if meal.Name == "" {
		http.Error(w, "Meal name is required", http.StatusBadRequest)
		return
	}
	if !models.IsValidMealType(meal.Type) {
		http.Error(w, "Meal type must be breakfast, lunch or dinner", http.StatusBadRequest)
		return
	}

	created, err := h.Store.AddUserMeal(r.Context(), uid, meal)
	if err != nil {
		log.Printf("api: adding personal meal for %s failed: %v", uid, err)
		http.Error(w, "Failed to add meal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// Delete handles DELETE /api/meals/{id}. Deleting an unknown id is a
// silent no-op reported in the response body.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	mealID := mux.Vars(r)["id"]
	deleted, err := h.Store.DeleteUserMeal(r.Context(), uid, mealID)
	if err != nil {
		log.Printf("api: deleting personal meal %s for %s failed: %v", mealID, uid, err)
		http.Error(w, "Failed to delete meal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": deleted})
}

// Recipes handles GET /api/meals/{id}/recipes: the recipes attached to one
// meal, default catalog first.
func (h *MealHandler) Recipes(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Catalog.Load(r.Context()); err != nil {
		log.Printf("api: refreshing meal catalog failed: %v", err)
	}

	personal, err := h.Store.UserRecipes(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading personal recipes for %s failed: %v", uid, err)
		personal = []models.Recipe{}
	}

	recipes := h.Catalog.RecipesForMeal(mux.Vars(r)["id"], personal)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}
