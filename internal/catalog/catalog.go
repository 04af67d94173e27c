package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// The default catalog is refetched only when it is older than this.
const refreshTTL = 5 * time.Minute

// Fetcher loads the default meal catalog from the document store.
type Fetcher interface {
	DefaultMeals(ctx context.Context) ([]models.Meal, error)
}

// Catalog caches the default meal/recipe catalog in memory. The catalog is
// shared read-mostly data, so it is kept behind a TTL: a load within five
// minutes of the previous fetch serves the cached copy, and a manual
// Refresh zeroes the timestamp to force the next load through. Writes that
// go through this process (admin recipe add/remove) are patched into the
// cache directly rather than waiting for the TTL to lapse.
type Catalog struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	meals     []models.Meal
	recipes   []models.Recipe
	lastFetch time.Time
}

func New(fetcher Fetcher) *Catalog {
	return &Catalog{
		fetcher: fetcher,
		ttl:     refreshTTL,
		now:     time.Now,
	}
}

// Load refreshes the cache from the store when the TTL has lapsed. A failed
// fetch keeps whatever was cached before and returns the error; callers log
// it and carry on with stale or empty data.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.RLock()
	fresh := c.now().Sub(c.lastFetch) <= c.ttl
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	meals, err := c.fetcher.DefaultMeals(ctx)
	if err != nil {
		log.Printf("catalog: loading default meals failed: %v", err)
		return err
	}

	var recipes []models.Recipe
	for _, meal := range meals {
		recipes = append(recipes, meal.Recipes...)
	}

	c.mu.Lock()
	c.meals = meals
	c.recipes = recipes
	c.lastFetch = c.now()
	c.mu.Unlock()
	return nil
}

// Refresh forces the next Load to hit the store.
func (c *Catalog) Refresh() {
	c.mu.Lock()
	c.lastFetch = time.Time{}
	c.mu.Unlock()
}

// DefaultMeals returns the cached default meal catalog.
func (c *Catalog) DefaultMeals() []models.Meal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Meal{}, c.meals...)
}

// DefaultRecipes returns the recipes extracted from the default meals.
func (c *Catalog) DefaultRecipes() []models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Recipe{}, c.recipes...)
}

// RecipesForMeal returns the recipes attached to the given meal. The
// default catalog's embedded recipes win; when the meal is not a default
// meal the combined default+personal recipe list is scanned by mealId.
// Callers conventionally use only the first element.
func (c *Catalog) RecipesForMeal(mealID string, personal []models.Recipe) []models.Recipe {
	if mealID == "" {
		return []models.Recipe{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, meal := range c.meals {
		if meal.ID == mealID && len(meal.Recipes) > 0 {
			return append([]models.Recipe{}, meal.Recipes...)
		}
	}

	var out []models.Recipe
	for _, r := range c.recipes {
		if r.MealID == mealID {
			out = append(out, r)
		}
	}
	for _, r := range personal {
		if r.MealID == mealID {
			out = append(out, r)
		}
	}
	return out
}

// AddDefaultRecipe patches a freshly written recipe into the cached meal
// and recipe lists so readers see it without waiting for the TTL.
func (c *Catalog) AddDefaultRecipe(recipe models.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.meals {
		if c.meals[i].ID == recipe.MealID {
			c.meals[i].Recipes = append(c.meals[i].Recipes, recipe)
			break
		}
	}
	c.recipes = append(c.recipes, recipe)
}

// RemoveDefaultRecipe drops a deleted recipe from the cache. The kept
// recipes go into freshly allocated slices: snapshots handed out by
// DefaultMeals and DefaultRecipes still alias the old backing arrays, so
// compacting in place would mutate data a concurrent reader may be
// encoding.
func (c *Catalog) RemoveDefaultRecipe(mealID, recipeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.meals {
		if c.meals[i].ID != mealID {
			continue
		}
		kept := make([]models.Recipe, 0, len(c.meals[i].Recipes))
		for _, r := range c.meals[i].Recipes {
			if r.ID != recipeID {
				kept = append(kept, r)
			}
		}
		c.meals[i].Recipes = kept
		break
	}
	kept := make([]models.Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	c.recipes = kept
}
