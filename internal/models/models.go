package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Meal slot types
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// Recipe difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// IsValidMealType reports whether t is one of the three slot types.
func IsValidMealType(t string) bool {
	return t == MealTypeBreakfast || t == MealTypeLunch || t == MealTypeDinner
}

// Meal is a catalog entry. Default meals live in the default_meals collection
// and may embed their recipes; personal meals are embedded in the owning
// user's document with IsPersonal set.
type Meal struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Type        string    `json:"type" firestore:"type"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Calories    int       `json:"calories,omitempty" firestore:"calories,omitempty"`
	PrepTime    int       `json:"prepTime,omitempty" firestore:"prepTime,omitempty"`
	IsPersonal  bool      `json:"isPersonal" firestore:"isPersonal"`
	Recipes     []Recipe  `json:"recipes,omitempty" firestore:"recipes,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// Ingredient is either structured (name/amount/unit) or a single free-form
// string kept in Raw. Older recipe documents stored plain strings, so the
// JSON codec accepts both shapes.
type Ingredient struct {
	Name   string  `json:"name,omitempty" firestore:"name,omitempty"`
	Amount float64 `json:"amount,omitempty" firestore:"amount,omitempty"`
	Unit   string  `json:"unit,omitempty" firestore:"unit,omitempty"`
	Raw    string  `json:"-" firestore:"raw,omitempty"`
}

// Structured reports whether the ingredient carries name/amount/unit fields
// rather than a raw string.
func (i Ingredient) Structured() bool {
	return i.Raw == ""
}

func (i Ingredient) MarshalJSON() ([]byte, error) {
	if i.Raw != "" {
		return json.Marshal(i.Raw)
	}
	type alias Ingredient
	return json.Marshal(alias(i))
}

func (i *Ingredient) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(data, &i.Raw)
	}
	type alias Ingredient
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*i = Ingredient(a)
	return nil
}

// Recipe belongs to a meal via MealID. Default recipes are embedded in a
// default meal's recipes array; personal recipes live in the owning user's
// document.
type Recipe struct {
	ID             string       `json:"id" firestore:"id"`
	MealID         string       `json:"mealId" firestore:"mealId"`
	Name           string       `json:"name" firestore:"name"`
	Ingredients    []Ingredient `json:"ingredients" firestore:"ingredients"`
	Instructions   []string     `json:"instructions" firestore:"instructions"`
	PrepTime       int          `json:"prepTime" firestore:"prepTime"`
	CookTime       int          `json:"cookTime" firestore:"cookTime"`
	Servings       int          `json:"servings" firestore:"servings"`
	Difficulty     string       `json:"difficulty" firestore:"difficulty"`
	IsPersonal     bool         `json:"isPersonal" firestore:"isPersonal"`
	CreatedBy      string       `json:"createdBy,omitempty" firestore:"createdBy,omitempty"`
	CreatedByUID   string       `json:"createdByUid,omitempty" firestore:"createdByUid,omitempty"`
	CreatedByPhoto string       `json:"createdByPhoto,omitempty" firestore:"createdByPhoto,omitempty"`
	CreatedAt      time.Time    `json:"createdAt" firestore:"createdAt"`
}

// User is the single per-identity document in the users collection. All
// personal sub-collections are embedded arrays, so sibling fields survive a
// write only because every write merges at top-level-field granularity.
type User struct {
	UID             string    `json:"uid" firestore:"uid"`
	Email           string    `json:"email" firestore:"email"`
	DisplayName     string    `json:"displayName" firestore:"displayName"`
	PhotoURL        string    `json:"photoURL" firestore:"photoURL"`
	IsAdmin         bool      `json:"isAdmin" firestore:"isAdmin"`
	PersonalMeals   []Meal    `json:"personalMeals" firestore:"personalMeals"`
	PersonalRecipes []Recipe  `json:"personalRecipes" firestore:"personalRecipes"`
	SavedRecipes    []Recipe  `json:"savedRecipes" firestore:"savedRecipes"`
	MealPlan        WeekPlan  `json:"mealPlan" firestore:"mealPlan"`
	Following       []string  `json:"following" firestore:"following"`
	Followers       []string  `json:"followers" firestore:"followers"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
}
