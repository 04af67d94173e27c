package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/mealweek-server/internal/models"
)

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "Mercimek Corbasi", Transliterate("Mercimek Çorbası"))
	assert.Equal(t, "Izgara Kofte", Transliterate("İzgara Köfte"))
	assert.Equal(t, "SCIGOU scigou", Transliterate("ŞÇİĞÖÜ şçığöü"))
	assert.Equal(t, "Menemen", Transliterate("Menemen"))
}

func TestTransliterateEmptyUsesPlaceholder(t *testing.T) {
	assert.Equal(t, "Isimsiz yemek", Transliterate(""))
}

func TestIngredientLineStructured(t *testing.T) {
	line := IngredientLine(models.Ingredient{Name: "Kırmızı Mercimek", Amount: 2, Unit: "su bardağı"})
	assert.Equal(t, "Kirmizi Mercimek (2 su bardagi)", line)
}

func TestIngredientLineFractionalAmount(t *testing.T) {
	line := IngredientLine(models.Ingredient{Name: "Tuz", Amount: 0.5, Unit: "çay kaşığı"})
	assert.Equal(t, "Tuz (0.5 cay kasigi)", line)
}

func TestIngredientLineRawString(t *testing.T) {
	// Legacy recipes store ingredients as plain strings; those pass through
	// untouched except for transliteration, and an empty raw string stays
	// empty rather than becoming a placeholder.
	assert.Equal(t, "2 yumurta, cirpilmis", IngredientLine(models.Ingredient{Raw: "2 yumurta, çırpılmış"}))
	assert.Equal(t, "", IngredientLine(models.Ingredient{Raw: ""}))
}

func TestIngredientLineZeroValue(t *testing.T) {
	// An all-empty ingredient has no raw string, so it is formally
	// structured; it must still render empty rather than "(0 )".
	assert.Equal(t, "", IngredientLine(models.Ingredient{}))
}

func TestRenderPlanProducesPDF(t *testing.T) {
	plan := models.NewWeekPlan()
	plan.Monday.Breakfast = []models.Meal{{ID: "b1", Name: "Menemen", Type: models.MealTypeBreakfast}}
	plan.Wednesday.Dinner = []models.Meal{{ID: "d1", Name: "Köfte", Type: models.MealTypeDinner}}

	recipesFor := func(mealID string) []models.Recipe {
		if mealID != "b1" {
			return nil
		}
		return []models.Recipe{{
			ID: "r1", MealID: "b1", Name: "Menemen",
			Ingredients: []models.Ingredient{
				{Name: "Domates", Amount: 3, Unit: "adet"},
				{Raw: "1 tutam tuz"},
			},
		}}
	}

	var buf bytes.Buffer
	err := RenderPlan(&buf, plan, recipesFor, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestRenderPlanEmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPlan(&buf, models.NewWeekPlan(), nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestSlotText(t *testing.T) {
	assert.Equal(t, "-", slotText(nil))
	assert.Equal(t, "Menemen, Sucuklu Yumurta", slotText([]models.Meal{
		{Name: "Menemen"},
		{Name: "Sucuklu Yumurta"},
	}))
	assert.Equal(t, "Isimsiz yemek", slotText([]models.Meal{{Name: ""}}))
}
