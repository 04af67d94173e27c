package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// SaveMealPlan writes the user's plan under the mealPlan field of the
// users document. The merge touches only mealPlan and updatedAt; the
// embedded personal collections on the same document stay intact.
func (s *Store) SaveMealPlan(ctx context.Context, uid string, plan models.WeekPlan) error {
	if uid == "" {
		return fmt.Errorf("user id required")
	}
	_, err := s.users().Doc(uid).Set(ctx, map[string]interface{}{
		"mealPlan":  plan,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("saving meal plan for %s: %w", uid, err)
	}
	return nil
}

// GetMealPlan reads the user's persisted plan. found is false when either
// the user document or its mealPlan field is absent.
func (s *Store) GetMealPlan(ctx context.Context, uid string) (models.WeekPlan, bool, error) {
	if uid == "" {
		return models.WeekPlan{}, false, fmt.Errorf("user id required")
	}
	doc, err := s.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return models.WeekPlan{}, false, nil
		}
		return models.WeekPlan{}, false, fmt.Errorf("reading user %s: %w", uid, err)
	}
	if _, ok := doc.Data()["mealPlan"]; !ok {
		return models.WeekPlan{}, false, nil
	}

	var wrapper struct {
		MealPlan models.WeekPlan `firestore:"mealPlan"`
	}
	if err := doc.DataTo(&wrapper); err != nil {
		return models.WeekPlan{}, false, fmt.Errorf("decoding meal plan for %s: %w", uid, err)
	}
	wrapper.MealPlan.Normalize()
	return wrapper.MealPlan, true, nil
}
