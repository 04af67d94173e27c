package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientUnmarshalObject(t *testing.T) {
	var ing Ingredient
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Domates","amount":3,"unit":"adet"}`), &ing))

	assert.True(t, ing.Structured())
	assert.Equal(t, "Domates", ing.Name)
	assert.Equal(t, 3.0, ing.Amount)
	assert.Equal(t, "adet", ing.Unit)
}

func TestIngredientUnmarshalString(t *testing.T) {
	var ing Ingredient
	require.NoError(t, json.Unmarshal([]byte(`"2 yumurta"`), &ing))

	assert.False(t, ing.Structured())
	assert.Equal(t, "2 yumurta", ing.Raw)
	assert.Empty(t, ing.Name)
}

func TestIngredientMarshalRoundTrip(t *testing.T) {
	structured := Ingredient{Name: "Tuz", Amount: 0.5, Unit: "çay kaşığı"}
	data, err := json.Marshal(structured)
	require.NoError(t, err)
	var back Ingredient
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, structured, back)

	raw := Ingredient{Raw: "1 tutam karabiber"}
	data, err = json.Marshal(raw)
	require.NoError(t, err)
	assert.Equal(t, `"1 tutam karabiber"`, string(data))
	var rawBack Ingredient
	require.NoError(t, json.Unmarshal(data, &rawBack))
	assert.Equal(t, raw, rawBack)
}

func TestRecipeUnmarshalMixedIngredients(t *testing.T) {
	payload := `{
		"id": "r1",
		"mealId": "m1",
		"name": "Menemen",
		"ingredients": ["2 yumurta", {"name": "Domates", "amount": 3, "unit": "adet"}]
	}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(payload), &r))
	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, "2 yumurta", r.Ingredients[0].Raw)
	assert.Equal(t, "Domates", r.Ingredients[1].Name)
}

func TestWeekPlanDayLookup(t *testing.T) {
	plan := NewWeekPlan()

	assert.Same(t, &plan.Monday, plan.Day("monday"))
	assert.Same(t, &plan.Monday, plan.Day("MONDAY"))
	assert.Same(t, &plan.Sunday, plan.Day("Sunday"))
	assert.Nil(t, plan.Day("notaday"))
}

func TestDayPlanSlotLookup(t *testing.T) {
	var dp DayPlan

	assert.Same(t, &dp.Breakfast, dp.Slot(MealTypeBreakfast))
	assert.Same(t, &dp.Lunch, dp.Slot(MealTypeLunch))
	assert.Same(t, &dp.Dinner, dp.Slot(MealTypeDinner))
	assert.Nil(t, dp.Slot("brunch"))
}

func TestWeekPlanCloneIsDeep(t *testing.T) {
	plan := NewWeekPlan()
	plan.Friday.Dinner = []Meal{{ID: "a", Name: "Köfte", Type: MealTypeDinner}}

	clone := plan.Clone()
	clone.Friday.Dinner[0].Name = "changed"
	clone.Friday.Dinner = append(clone.Friday.Dinner, Meal{ID: "b"})

	assert.Equal(t, "Köfte", plan.Friday.Dinner[0].Name)
	assert.Len(t, plan.Friday.Dinner, 1)
}

func TestNormalizeReplacesNilSlots(t *testing.T) {
	var plan WeekPlan
	plan.Normalize()

	for _, day := range Days {
		for _, slotType := range SlotTypes {
			assert.NotNil(t, *plan.Day(day).Slot(slotType), "%s/%s", day, slotType)
		}
	}
}

func TestIsValidMealType(t *testing.T) {
	assert.True(t, IsValidMealType("breakfast"))
	assert.True(t, IsValidMealType("lunch"))
	assert.True(t, IsValidMealType("dinner"))
	assert.False(t, IsValidMealType("brunch"))
	assert.False(t, IsValidMealType(""))
}
