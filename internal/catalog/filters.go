package catalog

import (
	"strings"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// Ownership filter values shared by meal and recipe queries.
const (
	FilterAll      = "all"
	FilterDefault  = "default"
	FilterPersonal = "personal"
)

// MealQuery selects meals from the combined catalog.
type MealQuery struct {
	Filter string // all | default | personal
	Search string // case-insensitive substring on name or description
	Type   string // all | breakfast | lunch | dinner
}

// FilterMeals applies the ownership filter, search term and type filter in
// that order. An empty or unknown ownership filter behaves like "all".
func FilterMeals(defaults, personal []models.Meal, q MealQuery) []models.Meal {
	var pool []models.Meal
	switch q.Filter {
	case FilterDefault:
		pool = append(pool, defaults...)
	case FilterPersonal:
		pool = append(pool, personal...)
	default:
		pool = append(pool, defaults...)
		pool = append(pool, personal...)
	}

	search := strings.ToLower(q.Search)
	out := []models.Meal{}
	for _, meal := range pool {
		matchesSearch := strings.Contains(strings.ToLower(meal.Name), search) ||
			strings.Contains(strings.ToLower(meal.Description), search)
		matchesType := q.Type == "" || q.Type == FilterAll || meal.Type == q.Type
		if matchesSearch && matchesType {
			out = append(out, meal)
		}
	}
	return out
}

// RecipeQuery selects recipes from the combined catalog.
type RecipeQuery struct {
	Filter     string // all | default | personal
	Search     string // case-insensitive substring on name or any ingredient name
	Difficulty string // all | easy | medium | hard
	MealID     string // restrict to a single meal when set
}

// FilterRecipes applies the ownership filter plus search, difficulty and
// meal-id predicates, all ANDed together.
func FilterRecipes(defaults, personal []models.Recipe, q RecipeQuery) []models.Recipe {
	var pool []models.Recipe
	switch q.Filter {
	case FilterDefault:
		pool = append(pool, defaults...)
	case FilterPersonal:
		pool = append(pool, personal...)
	default:
		pool = append(pool, defaults...)
		pool = append(pool, personal...)
	}

	search := strings.ToLower(q.Search)
	out := []models.Recipe{}
	for _, recipe := range pool {
		if !recipeMatchesSearch(recipe, search) {
			continue
		}
		if q.Difficulty != "" && q.Difficulty != FilterAll && recipe.Difficulty != q.Difficulty {
			continue
		}
		if q.MealID != "" && recipe.MealID != q.MealID {
			continue
		}
		out = append(out, recipe)
	}
	return out
}

func recipeMatchesSearch(recipe models.Recipe, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(recipe.Name), search) {
		return true
	}
	for _, ing := range recipe.Ingredients {
		if ing.Structured() && strings.Contains(strings.ToLower(ing.Name), search) {
			return true
		}
	}
	return false
}
