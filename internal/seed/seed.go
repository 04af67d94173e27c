// Package seed carries the default catalog an admin can load into an empty
// database.
package seed

import "github.com/emrekoca/mealweek-server/internal/models"

// DefaultMeals returns the shared meal catalog with the default recipes
// embedded on their meals.
func DefaultMeals() []models.Meal {
	meals := []models.Meal{
		{ID: "breakfast1", Name: "Yulaf Ezmesi", Type: models.MealTypeBreakfast, Description: "Sütlü yulaf ezmesi, meyve ve bal ile", Calories: 320, PrepTime: 10},
		{ID: "breakfast2", Name: "Avokado Toast", Type: models.MealTypeBreakfast, Description: "Tam tahıllı ekmek üzerinde ezilmiş avokado", Calories: 280, PrepTime: 7},
		{ID: "breakfast3", Name: "Menemen", Type: models.MealTypeBreakfast, Description: "Domates ve biberli yumurta", Calories: 250, PrepTime: 15},
		{ID: "lunch1", Name: "Tavuklu Sezar Salata", Type: models.MealTypeLunch, Description: "Izgara tavuklu klasik sezar salata", Calories: 420, PrepTime: 25},
		{ID: "lunch2", Name: "Mercimek Çorbası", Type: models.MealTypeLunch, Description: "Geleneksel kırmızı mercimek çorbası", Calories: 180, PrepTime: 30},
		{ID: "lunch3", Name: "Karnıyarık", Type: models.MealTypeLunch, Description: "Kıymalı patlıcan yemeği", Calories: 380, PrepTime: 45},
		{ID: "dinner1", Name: "Izgara Somon", Type: models.MealTypeDinner, Description: "Kuşkonmaz garnitürlü ızgara somon", Calories: 450, PrepTime: 25},
		{ID: "dinner2", Name: "Mantı", Type: models.MealTypeDinner, Description: "Yoğurtlu kayseri mantısı", Calories: 520, PrepTime: 60},
		{ID: "dinner3", Name: "Köfte", Type: models.MealTypeDinner, Description: "Izgara köfte", Calories: 400, PrepTime: 35},
	}

	recipes := DefaultRecipes()
	for i := range meals {
		for _, recipe := range recipes {
			if recipe.MealID == meals[i].ID {
				meals[i].Recipes = append(meals[i].Recipes, recipe)
			}
		}
	}
	return meals
}

// DefaultRecipes returns the default recipe set. The same recipes are also
// written to the legacy flat collection for older clients.
func DefaultRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:     "recipe1",
			MealID: "breakfast1",
			Name:   "Yulaf Ezmesi",
			Ingredients: []models.Ingredient{
				{Name: "Yulaf", Amount: 1, Unit: "su bardağı"},
				{Name: "Süt", Amount: 1, Unit: "su bardağı"},
				{Name: "Karışık Meyveler", Amount: 0.5, Unit: "su bardağı"},
				{Name: "Bal", Amount: 1, Unit: "yemek kaşığı"},
			},
			Instructions: []string{
				"Süt ve yulafı tencereye koyun",
				"Orta ateşte 5 dakika pişirin",
				"Meyveleri ve balı ekleyin",
			},
			PrepTime:   5,
			CookTime:   5,
			Difficulty: models.DifficultyEasy,
			Servings:   1,
		},
		{
			ID:     "recipe2",
			MealID: "breakfast2",
			Name:   "Avokado Toast",
			Ingredients: []models.Ingredient{
				{Name: "Tam Tahıllı Ekmek", Amount: 2, Unit: "dilim"},
				{Name: "Avokado", Amount: 1, Unit: "adet"},
				{Name: "Limon Suyu", Amount: 1, Unit: "tatlı kaşığı"},
				{Name: "Tuz", Amount: 1, Unit: "çimdik"},
				{Name: "Karabiber", Amount: 1, Unit: "çimdik"},
			},
			Instructions: []string{
				"Ekmeği kızartın",
				"Avokadoyu ezin ve limon suyu, tuz ve karabiber ekleyin",
				"Karışımı kızarmış ekmeğin üzerine yayın",
			},
			PrepTime:   5,
			CookTime:   2,
			Difficulty: models.DifficultyEasy,
			Servings:   2,
		},
		{
			ID:     "recipe3",
			MealID: "lunch1",
			Name:   "Tavuklu Sezar Salata",
			Ingredients: []models.Ingredient{
				{Name: "Tavuk Göğsü", Amount: 200, Unit: "gram"},
				{Name: "Marul", Amount: 1, Unit: "baş"},
				{Name: "Parmesan Peyniri", Amount: 30, Unit: "gram"},
				{Name: "Kruton", Amount: 50, Unit: "gram"},
				{Name: "Sezar Sosu", Amount: 3, Unit: "yemek kaşığı"},
			},
			Instructions: []string{
				"Tavuğu ızgarada pişirin ve dilimleyin",
				"Marulu yıkayın ve doğrayın",
				"Tüm malzemeleri karıştırın ve sosu ekleyin",
			},
			PrepTime:   10,
			CookTime:   15,
			Difficulty: models.DifficultyMedium,
			Servings:   2,
		},
		{
			ID:     "recipe4",
			MealID: "dinner1",
			Name:   "Izgara Somon",
			Ingredients: []models.Ingredient{
				{Name: "Somon Fileto", Amount: 300, Unit: "gram"},
				{Name: "Kuşkonmaz", Amount: 200, Unit: "gram"},
				{Name: "Zeytinyağı", Amount: 2, Unit: "yemek kaşığı"},
				{Name: "Limon", Amount: 1, Unit: "adet"},
				{Name: "Tuz", Amount: 1, Unit: "çay kaşığı"},
				{Name: "Karabiber", Amount: 0.5, Unit: "çay kaşığı"},
			},
			Instructions: []string{
				"Somonu tuz ve karabiber ile tatlandırın",
				"Kuşkonmazları temizleyin",
				"Somonu ve kuşkonmazları ızgarada pişirin",
				"Üzerine limon sıkın ve zeytinyağı gezdirin",
			},
			PrepTime:   10,
			CookTime:   15,
			Difficulty: models.DifficultyMedium,
			Servings:   2,
		},
		{
			ID:     "recipe5",
			MealID: "dinner3",
			Name:   "Köfte",
			Ingredients: []models.Ingredient{
				{Name: "Kıyma", Amount: 500, Unit: "gram"},
				{Name: "Soğan", Amount: 1, Unit: "adet"},
				{Name: "Sarımsak", Amount: 2, Unit: "diş"},
				{Name: "Maydanoz", Amount: 0.5, Unit: "demet"},
				{Name: "Kimyon", Amount: 1, Unit: "çay kaşığı"},
				{Name: "Pul Biber", Amount: 1, Unit: "çay kaşığı"},
				{Name: "Tuz", Amount: 1, Unit: "çay kaşığı"},
				{Name: "Karabiber", Amount: 0.5, Unit: "çay kaşığı"},
			},
			Instructions: []string{
				"Soğan ve sarımsağı ince doğrayın",
				"Tüm malzemeleri bir kapta karıştırın",
				"Köfte şekli verin",
				"Izgarada veya tavada pişirin",
			},
			PrepTime:   20,
			CookTime:   15,
			Difficulty: models.DifficultyMedium,
			Servings:   4,
		},
	}
}
