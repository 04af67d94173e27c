package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/emrekoca/mealweek-server/internal/catalog"
	"github.com/emrekoca/mealweek-server/internal/middleware"
	"github.com/emrekoca/mealweek-server/internal/models"
	"github.com/emrekoca/mealweek-server/internal/seed"
	"github.com/emrekoca/mealweek-server/internal/store"
)

// AdminHandler covers the operations behind the isAdmin flag: maintaining
// the shared default catalog.
type AdminHandler struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewAdminHandler(st *store.Store, cat *catalog.Catalog) *AdminHandler {
	return &AdminHandler{Store: st, Catalog: cat}
}

// requireAdmin resolves the caller and checks the isAdmin flag on their
// user document.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	isAdmin, err := h.Store.IsAdmin(r.Context(), uid)
	if err != nil {
		log.Printf("api: admin check for %s failed: %v", uid, err)
		http.Error(w, "Failed to check permissions", http.StatusInternalServerError)
		return "", false
	}
	if !isAdmin {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return "", false
	}
	return uid, true
}

// AddRecipe handles POST /api/admin/recipes: attach a recipe to a default
// meal and patch it into the catalog cache so readers see it immediately.
func (h *AdminHandler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if recipe.MealID == "" {
		http.Error(w, "mealId is required", http.StatusBadRequest)
		return
	}
	if recipe.Name == "" {
		http.Error(w, "Recipe name is required", http.StatusBadRequest)
		return
	}

	created, err := h.Store.AddRecipeToDefaultMeal(r.Context(), recipe.MealID, recipe)
	if err != nil {
		log.Printf("api: adding default recipe to %s failed: %v", recipe.MealID, err)
		http.Error(w, "Failed to add recipe", http.StatusBadRequest)
		return
	}
	h.Catalog.AddDefaultRecipe(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// DeleteRecipe handles DELETE /api/admin/meals/{mealId}/recipes/{recipeId}.
func (h *AdminHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	vars := mux.Vars(r)
	mealID, recipeID := vars["mealId"], vars["recipeId"]
	deleted, err := h.Store.DeleteRecipeFromDefaultMeal(r.Context(), mealID, recipeID)
	if err != nil {
		log.Printf("api: deleting default recipe %s from %s failed: %v", recipeID, mealID, err)
		http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
		return
	}
	if deleted {
		h.Catalog.RemoveDefaultRecipe(mealID, recipeID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": deleted})
}

// Seed handles POST /api/admin/seed: load the default meal and recipe
// catalog into an empty database.
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	if err := h.Store.SeedDefaultMeals(r.Context(), seed.DefaultMeals()); err != nil {
		log.Printf("api: seeding default meals failed: %v", err)
		http.Error(w, "Failed to seed meals", http.StatusInternalServerError)
		return
	}
	if err := h.Store.SeedDefaultRecipes(r.Context(), seed.DefaultRecipes()); err != nil {
		log.Printf("api: seeding default recipes failed: %v", err)
		http.Error(w, "Failed to seed recipes", http.StatusInternalServerError)
		return
	}
	h.Catalog.Refresh()

	w.WriteHeader(http.StatusNoContent)
}
