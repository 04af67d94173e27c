package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// LegacyRecipes reads the flat recipes collection. Newer data embeds
// recipes inside default meals; this collection survives for documents
// written before the embedding change.
func (s *Store) LegacyRecipes(ctx context.Context) ([]models.Recipe, error) {
	iter := s.client.Collection(collectionRecipes).Documents(ctx)
	defer iter.Stop()

	var recipes []models.Recipe
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading recipes: %w", err)
		}
		var recipe models.Recipe
		if err := doc.DataTo(&recipe); err != nil {
			log.Printf("store: skipping malformed recipe document %s: %v", doc.Ref.ID, err)
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// SeedDefaultRecipes writes the given recipes into the flat collection,
// keyed by recipe id.
func (s *Store) SeedDefaultRecipes(ctx context.Context, recipes []models.Recipe) error {
	col := s.client.Collection(collectionRecipes)
	for _, recipe := range recipes {
		if _, err := col.Doc(recipe.ID).Set(ctx, recipe); err != nil {
			return fmt.Errorf("seeding recipe %s: %w", recipe.ID, err)
		}
	}
	return nil
}

// UserRecipes returns the personal recipes embedded in the user's document.
func (s *Store) UserRecipes(ctx context.Context, uid string) ([]models.Recipe, error) {
	doc, err := s.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return []models.Recipe{}, nil
		}
		return nil, fmt.Errorf("reading user %s: %w", uid, err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", uid, err)
	}
	if user.PersonalRecipes == nil {
		return []models.Recipe{}, nil
	}
	return user.PersonalRecipes, nil
}

// AddUserRecipe appends a personal recipe to the user's document.
func (s *Store) AddUserRecipe(ctx context.Context, uid string, recipe models.Recipe) (models.Recipe, error) {
	recipe.ID = "user_recipe_" + uuid.New().String()
	recipe.IsPersonal = true
	recipe.CreatedAt = time.Now()

	_, err := s.users().Doc(uid).Set(ctx, map[string]interface{}{
		"personalRecipes": firestore.ArrayUnion(recipe),
	}, firestore.MergeAll)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("adding personal recipe for %s: %w", uid, err)
	}
	return recipe, nil
}

// DeleteUserRecipe removes the personal recipe with the given id; absent
// ids are a silent no-op reported as false.
func (s *Store) DeleteUserRecipe(ctx context.Context, uid, recipeID string) (bool, error) {
	recipes, err := s.UserRecipes(ctx, uid)
	if err != nil {
		return false, err
	}
	for _, recipe := range recipes {
		if recipe.ID == recipeID {
			_, err := s.users().Doc(uid).Update(ctx, []firestore.Update{
				{Path: "personalRecipes", Value: firestore.ArrayRemove(recipe)},
			})
			if err != nil {
				return false, fmt.Errorf("deleting personal recipe %s for %s: %w", recipeID, uid, err)
			}
			return true, nil
		}
	}
	return false, nil
}

// SavedRecipes returns the user's saved-recipe list.
func (s *Store) SavedRecipes(ctx context.Context, uid string) ([]models.Recipe, error) {
	doc, err := s.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return []models.Recipe{}, nil
		}
		return nil, fmt.Errorf("reading user %s: %w", uid, err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", uid, err)
	}
	if user.SavedRecipes == nil {
		return []models.Recipe{}, nil
	}
	return user.SavedRecipes, nil
}

// SaveRecipeForUser adds the recipe to the user's saved list. The union is
// element-level, so saving the same recipe twice is a no-op and two
// concurrent saves of different recipes both land.
func (s *Store) SaveRecipeForUser(ctx context.Context, uid string, recipe models.Recipe) error {
	_, err := s.users().Doc(uid).Set(ctx, map[string]interface{}{
		"savedRecipes": firestore.ArrayUnion(recipe),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("saving recipe %s for %s: %w", recipe.ID, uid, err)
	}
	return nil
}

// UnsaveRecipeForUser removes the recipe with the given id from the saved
// list; absent ids are a silent no-op reported as false.
func (s *Store) UnsaveRecipeForUser(ctx context.Context, uid, recipeID string) (bool, error) {
	saved, err := s.SavedRecipes(ctx, uid)
	if err != nil {
		return false, err
	}
	for _, recipe := range saved {
		if recipe.ID == recipeID {
			_, err := s.users().Doc(uid).Update(ctx, []firestore.Update{
				{Path: "savedRecipes", Value: firestore.ArrayRemove(recipe)},
			})
			if err != nil {
				return false, fmt.Errorf("unsaving recipe %s for %s: %w", recipeID, uid, err)
			}
			return true, nil
		}
	}
	return false, nil
}

// AddRecipeToDefaultMeal attaches a recipe to a default meal's embedded
// recipe list. The meal must exist.
func (s *Store) AddRecipeToDefaultMeal(ctx context.Context, mealID string, recipe models.Recipe) (models.Recipe, error) {
	mealRef := s.client.Collection(collectionDefaultMeals).Doc(mealID)
	if _, err := mealRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return models.Recipe{}, fmt.Errorf("default meal %s not found", mealID)
		}
		return models.Recipe{}, fmt.Errorf("reading default meal %s: %w", mealID, err)
	}

	if recipe.ID == "" {
		recipe.ID = "recipe_" + uuid.New().String()
	}
	recipe.MealID = mealID
	recipe.CreatedAt = time.Now()

	_, err := mealRef.Set(ctx, map[string]interface{}{
		"recipes": firestore.ArrayUnion(recipe),
	}, firestore.MergeAll)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("adding recipe to meal %s: %w", mealID, err)
	}
	return recipe, nil
}

// DeleteRecipeFromDefaultMeal removes a recipe from a default meal's
// embedded list; a missing meal or recipe is reported as false.
func (s *Store) DeleteRecipeFromDefaultMeal(ctx context.Context, mealID, recipeID string) (bool, error) {
	mealRef := s.client.Collection(collectionDefaultMeals).Doc(mealID)
	doc, err := mealRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading default meal %s: %w", mealID, err)
	}

	var meal models.Meal
	if err := doc.DataTo(&meal); err != nil {
		return false, fmt.Errorf("decoding default meal %s: %w", mealID, err)
	}
	for _, recipe := range meal.Recipes {
		if recipe.ID == recipeID {
			_, err := mealRef.Update(ctx, []firestore.Update{
				{Path: "recipes", Value: firestore.ArrayRemove(recipe)},
			})
			if err != nil {
				return false, fmt.Errorf("removing recipe %s from meal %s: %w", recipeID, mealID, err)
			}
			return true, nil
		}
	}
	return false, nil
}
