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

// DefaultMeals returns the shared meal catalog. Documents that fail to
// decode are skipped with a log line rather than failing the whole read.
func (s *Store) DefaultMeals(ctx context.Context) ([]models.Meal, error) {
	iter := s.client.Collection(collectionDefaultMeals).Documents(ctx)
	defer iter.Stop()

	var meals []models.Meal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading default meals: %w", err)
		}
		var meal models.Meal
		if err := doc.DataTo(&meal); err != nil {
			log.Printf("store: skipping malformed meal document %s: %v", doc.Ref.ID, err)
			continue
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

// SeedDefaultMeals writes the given meals into the shared catalog, one
// document per meal keyed by meal id.
func (s *Store) SeedDefaultMeals(ctx context.Context, meals []models.Meal) error {
	col := s.client.Collection(collectionDefaultMeals)
	for _, meal := range meals {
		if _, err := col.Doc(meal.ID).Set(ctx, meal); err != nil {
			return fmt.Errorf("seeding meal %s: %w", meal.ID, err)
		}
	}
	return nil
}

// UserMeals returns the personal meals embedded in the user's document. A
// missing document or missing field yields an empty list, not an error.
func (s *Store) UserMeals(ctx context.Context, uid string) ([]models.Meal, error) {
	doc, err := s.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return []models.Meal{}, nil
		}
		return nil, fmt.Errorf("reading user %s: %w", uid, err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", uid, err)
	}
	if user.PersonalMeals == nil {
		return []models.Meal{}, nil
	}
	return user.PersonalMeals, nil
}

// AddUserMeal appends a personal meal to the user's document via an
// element-level array union, assigning it an id and ownership metadata.
func (s *Store) AddUserMeal(ctx context.Context, uid string, meal models.Meal) (models.Meal, error) {
	meal.ID = "user_meal_" + uuid.New().String()
	meal.IsPersonal = true
	meal.Recipes = nil
	meal.CreatedAt = time.Now()

	_, err := s.users().Doc(uid).Set(ctx, map[string]interface{}{
		"personalMeals": firestore.ArrayUnion(meal),
	}, firestore.MergeAll)
	if err != nil {
		return models.Meal{}, fmt.Errorf("adding personal meal for %s: %w", uid, err)
	}
	return meal, nil
}

// DeleteUserMeal removes the personal meal with the given id. An absent id
// is a silent no-op reported as false.
func (s *Store) DeleteUserMeal(ctx context.Context, uid, mealID string) (bool, error) {
	meals, err := s.UserMeals(ctx, uid)
	if err != nil {
		return false, err
	}
	for _, meal := range meals {
		if meal.ID == mealID {
			// Remove the matched element only; sibling fields and any
			// concurrently added meals stay untouched.
			_, err := s.users().Doc(uid).Update(ctx, []firestore.Update{
				{Path: "personalMeals", Value: firestore.ArrayRemove(meal)},
			})
			if err != nil {
				return false, fmt.Errorf("deleting personal meal %s for %s: %w", mealID, uid, err)
			}
			return true, nil
		}
	}
	return false, nil
}
