package planner

import (
	"math/rand"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// Generate builds a fresh random plan from the combined meal catalog,
// replacing whatever plan existed before. For each slot type the seven days
// are filled monday through sunday by drawing without replacement from a
// shrinking pool of that type's meals; once the pool runs dry the remaining
// days redraw, with replacement, from the original full list. With seven or
// more meals of a type every day therefore gets a distinct meal; with fewer,
// the early days are distinct and the later ones may repeat. A type with no
// meals at all leaves its row empty.
func Generate(catalog []models.Meal, rng *rand.Rand) models.WeekPlan {
	plan := models.NewWeekPlan()

	byType := make(map[string][]models.Meal)
	for _, meal := range catalog {
		if models.IsValidMealType(meal.Type) {
			byType[meal.Type] = append(byType[meal.Type], meal)
		}
	}

	for _, slotType := range models.SlotTypes {
		original := byType[slotType]
		if len(original) == 0 {
			continue
		}

		pool := append([]models.Meal{}, original...)
		for _, day := range models.Days {
			var picked models.Meal
			if len(pool) > 0 {
				i := rng.Intn(len(pool))
				picked = pool[i]
				pool = append(pool[:i], pool[i+1:]...)
			} else {
				picked = original[rng.Intn(len(original))]
			}
			*plan.Day(day).Slot(slotType) = []models.Meal{picked}
		}
	}

	return plan
}
