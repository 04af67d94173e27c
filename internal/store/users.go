package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// Identity carries the fields the identity provider hands back after a
// popup sign-in.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// EnsureUser returns the user's profile document, creating it on first
// sign-in. The admin flag is decided once, at creation, by comparing the
// sign-in email against the configured admin address.
func (s *Store) EnsureUser(ctx context.Context, id Identity) (models.User, error) {
	ref := s.users().Doc(id.UID)
	doc, err := ref.Get(ctx)
	if err == nil {
		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return models.User{}, fmt.Errorf("decoding user %s: %w", id.UID, err)
		}
		user.MealPlan.Normalize()
		return user, nil
	}
	if !isNotFound(err) {
		return models.User{}, fmt.Errorf("reading user %s: %w", id.UID, err)
	}

	user := models.User{
		UID:             id.UID,
		Email:           id.Email,
		DisplayName:     id.DisplayName,
		PhotoURL:        id.PhotoURL,
		IsAdmin:         s.adminEmail != "" && id.Email == s.adminEmail,
		PersonalMeals:   []models.Meal{},
		PersonalRecipes: []models.Recipe{},
		SavedRecipes:    []models.Recipe{},
		MealPlan:        models.NewWeekPlan(),
		Following:       []string{},
		Followers:       []string{},
		CreatedAt:       time.Now(),
	}
	if _, err := ref.Set(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("creating user %s: %w", id.UID, err)
	}
	return user, nil
}

// GetUser reads a user document. found is false for unknown uids.
func (s *Store) GetUser(ctx context.Context, uid string) (models.User, bool, error) {
	doc, err := s.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("reading user %s: %w", uid, err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return models.User{}, false, fmt.Errorf("decoding user %s: %w", uid, err)
	}
	user.MealPlan.Normalize()
	return user, true, nil
}

// IsAdmin reports whether the user document carries the admin flag.
func (s *Store) IsAdmin(ctx context.Context, uid string) (bool, error) {
	user, found, err := s.GetUser(ctx, uid)
	if err != nil || !found {
		return false, err
	}
	return user.IsAdmin, nil
}

// Follow records uid following targetUID, updating both documents with
// element-level unions. The target must exist.
func (s *Store) Follow(ctx context.Context, uid, targetUID string) error {
	if uid == targetUID {
		return fmt.Errorf("cannot follow yourself")
	}
	if _, found, err := s.GetUser(ctx, targetUID); err != nil {
		return err
	} else if !found {
		return fmt.Errorf("user %s not found", targetUID)
	}

	if _, err := s.users().Doc(uid).Set(ctx, map[string]interface{}{
		"following": firestore.ArrayUnion(targetUID),
	}, firestore.MergeAll); err != nil {
		return fmt.Errorf("updating following for %s: %w", uid, err)
	}
	if _, err := s.users().Doc(targetUID).Set(ctx, map[string]interface{}{
		"followers": firestore.ArrayUnion(uid),
	}, firestore.MergeAll); err != nil {
		return fmt.Errorf("updating followers for %s: %w", targetUID, err)
	}
	return nil
}

// Unfollow removes the follow edge from both documents.
func (s *Store) Unfollow(ctx context.Context, uid, targetUID string) error {
	if _, err := s.users().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "following", Value: firestore.ArrayRemove(targetUID)},
	}); err != nil {
		return fmt.Errorf("updating following for %s: %w", uid, err)
	}
	if _, err := s.users().Doc(targetUID).Update(ctx, []firestore.Update{
		{Path: "followers", Value: firestore.ArrayRemove(uid)},
	}); err != nil {
		return fmt.Errorf("updating followers for %s: %w", targetUID, err)
	}
	return nil
}
