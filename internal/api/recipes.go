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

// RecipeHandler serves the recipe catalog and the user's personal and
// saved recipe lists.
type RecipeHandler struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewRecipeHandler(st *store.Store, cat *catalog.Catalog) *RecipeHandler {
	return &RecipeHandler{Store: st, Catalog: cat}
}

// List handles GET /api/recipes with filter, q, difficulty and mealId
// query parameters, ANDed together.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Catalog.Load(r.Context()); err != nil {
		log.Printf("api: refreshing recipe catalog failed: %v", err)
	}

	personal, err := h.Store.UserRecipes(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading personal recipes for %s failed: %v", uid, err)
		personal = []models.Recipe{}
	}

	query := r.URL.Query()
	recipes := catalog.FilterRecipes(h.Catalog.DefaultRecipes(), personal, catalog.RecipeQuery{
		Filter:     query.Get("filter"),
		Search:     query.Get("q"),
		Difficulty: query.Get("difficulty"),
		MealID:     query.Get("mealId"),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}

// Create handles POST /api/recipes: a new personal recipe stamped with the
// creator's profile.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if recipe.Name == "" {
		http.Error(w, "Recipe name is required", http.StatusBadRequest)
		return
	}
	if recipe.Difficulty != "" &&
		recipe.Difficulty != models.DifficultyEasy &&
		recipe.Difficulty != models.DifficultyMedium &&
		recipe.Difficulty != models.DifficultyHard {
		http.Error(w, "Difficulty must be easy, medium or hard", http.StatusBadRequest)
		return
	}

	if user, found, err := h.Store.GetUser(r.Context(), uid); err == nil && found {
		recipe.CreatedBy = user.DisplayName
		recipe.CreatedByUID = user.UID
		recipe.CreatedByPhoto = user.PhotoURL
	}

	created, err := h.Store.AddUserRecipe(r.Context(), uid, recipe)
	if err != nil {
		log.Printf("api: adding personal recipe for %s failed: %v", uid, err)
		http.Error(w, "Failed to add recipe", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// Delete handles DELETE /api/recipes/{id}.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID := mux.Vars(r)["id"]
	deleted, err := h.Store.DeleteUserRecipe(r.Context(), uid, recipeID)
	if err != nil {
		log.Printf("api: deleting personal recipe %s for %s failed: %v", recipeID, uid, err)
		http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": deleted})
}

// Saved handles GET /api/recipes/saved.
func (h *RecipeHandler) Saved(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	saved, err := h.Store.SavedRecipes(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading saved recipes for %s failed: %v", uid, err)
		http.Error(w, "Failed to load saved recipes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// Save handles POST /api/recipes/{id}/save. The body carries the full
// recipe value because saved recipes are embedded by value, not by id.
func (h *RecipeHandler) Save(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if recipe.ID != mux.Vars(r)["id"] {
		http.Error(w, "Recipe id mismatch", http.StatusBadRequest)
		return
	}

	if err := h.Store.SaveRecipeForUser(r.Context(), uid, recipe); err != nil {
		log.Printf("api: saving recipe %s for %s failed: %v", recipe.ID, uid, err)
		http.Error(w, "Failed to save recipe", http.StatusInternalServerError)
		return
	}

	saved, err := h.Store.SavedRecipes(r.Context(), uid)
	if err != nil {
		log.Printf("api: reloading saved recipes for %s failed: %v", uid, err)
		saved = []models.Recipe{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// Unsave handles DELETE /api/recipes/{id}/save.
func (h *RecipeHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID := mux.Vars(r)["id"]
	removed, err := h.Store.UnsaveRecipeForUser(r.Context(), uid, recipeID)
	if err != nil {
		log.Printf("api: unsaving recipe %s for %s failed: %v", recipeID, uid, err)
		http.Error(w, "Failed to unsave recipe", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"removed": removed})
}
