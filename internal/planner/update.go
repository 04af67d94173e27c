package planner

import (
	"log"
	"strings"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// Action is a slot mutation kind.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionClear  Action = "clear"
)

// A slot holds at most three meals.
const maxSlotMeals = 3

// Update applies a single slot mutation and returns the resulting plan
// snapshot plus whether anything changed. Invalid day or slot names abort
// the operation with a log line and leave the plan untouched; a rejected
// add (slot full or duplicate meal id) and a remove of an absent meal are
// silent no-ops. The input plan is never mutated.
func Update(plan models.WeekPlan, day, slotType string, meal *models.Meal, action Action) (models.WeekPlan, bool) {
	if day == "" || slotType == "" || (action != ActionClear && meal == nil) {
		log.Printf("planner: invalid update parameters: day=%q slotType=%q action=%q", day, slotType, action)
		return plan, false
	}

	normalizedDay := strings.ToLower(day)
	next := plan.Clone()
	next.Normalize()

	dayPlan := next.Day(normalizedDay)
	if dayPlan == nil {
		log.Printf("planner: invalid day: %s", normalizedDay)
		return plan, false
	}

	slot := dayPlan.Slot(slotType)
	if slot == nil {
		log.Printf("planner: invalid meal type: %s", slotType)
		return plan, false
	}

	switch action {
	case ActionAdd:
		if len(*slot) >= maxSlotMeals || containsMeal(*slot, meal.ID) {
			return plan, false
		}
		*slot = append(*slot, *meal)
		return next, true
	case ActionRemove:
		for i, m := range *slot {
			if m.ID == meal.ID {
				*slot = append((*slot)[:i], (*slot)[i+1:]...)
				return next, true
			}
		}
		return plan, false
	case ActionClear:
		*slot = []models.Meal{}
		return next, true
	}

	log.Printf("planner: unknown action: %s", action)
	return plan, false
}

func containsMeal(meals []models.Meal, id string) bool {
	for _, m := range meals {
		if m.ID == id {
			return true
		}
	}
	return false
}

// sameSlot compares two slot references, days case-insensitive.
func sameSlot(a, b models.SlotRef) bool {
	return strings.EqualFold(a.Day, b.Day) && a.SlotType == b.SlotType
}

// Move applies the drag gesture as one operation: add at the destination,
// then remove at the origin. The client-side protocol this replaces issued
// the two calls independently and removed from the origin even when the
// destination rejected the add, silently dropping the meal when the target
// slot was full. Here the remove is issued only after a successful add, so
// a drop into a full slot leaves the meal where it was.
func Move(plan models.WeekPlan, origin, dest models.SlotRef, meal models.Meal) (models.WeekPlan, bool) {
	next, added := Update(plan, dest.Day, dest.SlotType, &meal, ActionAdd)
	if !added {
		log.Printf("planner: move rejected at %s/%s for meal %s", dest.Day, dest.SlotType, meal.ID)
		return plan, false
	}
	if !sameSlot(origin, dest) {
		next, _ = Update(next, origin.Day, origin.SlotType, &meal, ActionRemove)
	}
	return next, true
}
