package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/mealweek-server/internal/models"
)

var (
	defaultMeals = []models.Meal{
		{ID: "d1", Name: "Mercimek Çorbası", Description: "Geleneksel çorba", Type: models.MealTypeLunch},
		{ID: "d2", Name: "Menemen", Type: models.MealTypeBreakfast},
	}
	personalMeals = []models.Meal{
		{ID: "p1", Name: "Omlet", Description: "Peynirli", Type: models.MealTypeBreakfast, IsPersonal: true},
	}
)

func TestFilterMealsOwnership(t *testing.T) {
	all := FilterMeals(defaultMeals, personalMeals, MealQuery{Filter: FilterAll})
	assert.Len(t, all, 3)

	defaults := FilterMeals(defaultMeals, personalMeals, MealQuery{Filter: FilterDefault})
	assert.Len(t, defaults, 2)

	personal := FilterMeals(defaultMeals, personalMeals, MealQuery{Filter: FilterPersonal})
	require.Len(t, personal, 1)
	assert.Equal(t, "p1", personal[0].ID)

	// Unknown filter behaves like all.
	assert.Len(t, FilterMeals(defaultMeals, personalMeals, MealQuery{Filter: "whatever"}), 3)
}

func TestFilterMealsSearchIsCaseInsensitive(t *testing.T) {
	got := FilterMeals(defaultMeals, personalMeals, MealQuery{Search: "MENEMEN"})
	require.Len(t, got, 1)
	assert.Equal(t, "d2", got[0].ID)
}

func TestFilterMealsSearchMatchesDescription(t *testing.T) {
	got := FilterMeals(defaultMeals, personalMeals, MealQuery{Search: "peynirli"})
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestFilterMealsByType(t *testing.T) {
	got := FilterMeals(defaultMeals, personalMeals, MealQuery{Type: models.MealTypeBreakfast})
	assert.Len(t, got, 2)

	assert.Len(t, FilterMeals(defaultMeals, personalMeals, MealQuery{Type: FilterAll}), 3)
}

func TestFilterMealsNoMatchReturnsEmpty(t *testing.T) {
	got := FilterMeals(defaultMeals, personalMeals, MealQuery{Search: "pizza"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

var (
	defaultRecipes = []models.Recipe{
		{
			ID: "r1", MealID: "d1", Name: "Mercimek Çorbası", Difficulty: models.DifficultyEasy,
			Ingredients: []models.Ingredient{{Name: "Kırmızı Mercimek", Amount: 2, Unit: "su bardağı"}},
		},
		{
			ID: "r2", MealID: "d2", Name: "Menemen", Difficulty: models.DifficultyMedium,
			Ingredients: []models.Ingredient{{Name: "Domates", Amount: 3, Unit: "adet"}},
		},
	}
	personalRecipes = []models.Recipe{
		{
			ID: "pr1", MealID: "p1", Name: "Omlet", Difficulty: models.DifficultyEasy, IsPersonal: true,
			Ingredients: []models.Ingredient{{Raw: "2 yumurta"}},
		},
	}
)

func TestFilterRecipesSearchByIngredientName(t *testing.T) {
	got := FilterRecipes(defaultRecipes, personalRecipes, RecipeQuery{Search: "domates"})
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)
}

func TestFilterRecipesRawIngredientsDoNotMatchSearch(t *testing.T) {
	// Substring search only inspects structured ingredient names.
	got := FilterRecipes(defaultRecipes, personalRecipes, RecipeQuery{Search: "yumurta"})
	assert.Empty(t, got)
}

func TestFilterRecipesByDifficulty(t *testing.T) {
	got := FilterRecipes(defaultRecipes, personalRecipes, RecipeQuery{Difficulty: models.DifficultyEasy})
	assert.Len(t, got, 2)
}

func TestFilterRecipesByMealID(t *testing.T) {
	got := FilterRecipes(defaultRecipes, personalRecipes, RecipeQuery{MealID: "d1"})
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestFilterRecipesPredicatesAreANDed(t *testing.T) {
	got := FilterRecipes(defaultRecipes, personalRecipes, RecipeQuery{
		Search:     "mercimek",
		Difficulty: models.DifficultyMedium,
	})
	assert.Empty(t, got)
}

func TestFilterRecipesOwnership(t *testing.T) {
	personal := FilterRecipes(defaultRecipes, personalRecipes, RecipeQuery{Filter: FilterPersonal})
	require.Len(t, personal, 1)
	assert.Equal(t, "pr1", personal[0].ID)
}
