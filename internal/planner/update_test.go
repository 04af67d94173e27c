package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/mealweek-server/internal/models"
)

func meal(id string) *models.Meal {
	return &models.Meal{ID: id, Name: "Meal " + id, Type: models.MealTypeBreakfast}
}

func TestUpdateAddAppendsToSlot(t *testing.T) {
	plan := models.NewWeekPlan()

	next, changed := Update(plan, "monday", "breakfast", meal("a"), ActionAdd)
	require.True(t, changed)
	assert.Len(t, next.Monday.Breakfast, 1)

	// The input snapshot is untouched.
	assert.Empty(t, plan.Monday.Breakfast)
}

func TestUpdateAddNormalizesDayCase(t *testing.T) {
	plan := models.NewWeekPlan()

	next, changed := Update(plan, "MONDAY", "breakfast", meal("a"), ActionAdd)
	require.True(t, changed)
	assert.Len(t, next.Monday.Breakfast, 1)
}

func TestUpdateAddRejectsDuplicateID(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "breakfast", meal("a"), ActionAdd)

	next, changed := Update(plan, "monday", "breakfast", meal("a"), ActionAdd)
	assert.False(t, changed)
	assert.Len(t, next.Monday.Breakfast, 1)
}

func TestUpdateAddRejectsFullSlot(t *testing.T) {
	plan := models.NewWeekPlan()
	for _, id := range []string{"a", "b", "c"} {
		var changed bool
		plan, changed = Update(plan, "monday", "breakfast", meal(id), ActionAdd)
		require.True(t, changed)
	}

	next, changed := Update(plan, "monday", "breakfast", meal("d"), ActionAdd)
	assert.False(t, changed)
	assert.Len(t, next.Monday.Breakfast, 3)
}

func TestUpdateAddRemoveRoundTrip(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "tuesday", "lunch", meal("keep"), ActionAdd)
	before := plan.Clone()

	plan, changed := Update(plan, "tuesday", "lunch", meal("x"), ActionAdd)
	require.True(t, changed)
	plan, changed = Update(plan, "tuesday", "lunch", meal("x"), ActionRemove)
	require.True(t, changed)

	assert.Equal(t, before, plan)
}

func TestUpdateRemoveAbsentIsNoOp(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "friday", "dinner", meal("a"), ActionAdd)

	next, changed := Update(plan, "friday", "dinner", meal("missing"), ActionRemove)
	assert.False(t, changed)
	assert.Equal(t, plan, next)
}

func TestUpdateClearEmptiesSlot(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "sunday", "dinner", meal("a"), ActionAdd)
	plan, _ = Update(plan, "sunday", "dinner", meal("b"), ActionAdd)

	next, changed := Update(plan, "sunday", "dinner", nil, ActionClear)
	require.True(t, changed)
	assert.Empty(t, next.Sunday.Dinner)

	// Clearing an already empty slot still succeeds.
	next, changed = Update(next, "sunday", "dinner", nil, ActionClear)
	assert.True(t, changed)
	assert.Empty(t, next.Sunday.Dinner)
}

func TestUpdateInvalidDayLeavesPlanUnchanged(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "breakfast", meal("a"), ActionAdd)

	next, changed := Update(plan, "notaday", "breakfast", meal("b"), ActionAdd)
	assert.False(t, changed)
	assert.Equal(t, plan, next)
}

func TestUpdateInvalidSlotTypeLeavesPlanUnchanged(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "breakfast", meal("a"), ActionAdd)

	next, changed := Update(plan, "monday", "brunch", meal("b"), ActionAdd)
	assert.False(t, changed)
	assert.Equal(t, plan, next)
}

func TestUpdateMissingMealAborts(t *testing.T) {
	plan := models.NewWeekPlan()

	next, changed := Update(plan, "monday", "breakfast", nil, ActionAdd)
	assert.False(t, changed)
	assert.Equal(t, plan, next)
}

func TestUpdateSlotFillScenario(t *testing.T) {
	plan := models.NewWeekPlan()

	plan, changed := Update(plan, "monday", "breakfast", meal("A"), ActionAdd)
	require.True(t, changed)

	plan, changed = Update(plan, "monday", "breakfast", meal("B"), ActionAdd)
	require.True(t, changed)
	assert.Equal(t, []string{"A", "B"}, slotIDs(plan.Monday.Breakfast))

	plan, changed = Update(plan, "monday", "breakfast", meal("A"), ActionAdd)
	assert.False(t, changed)
	assert.Equal(t, []string{"A", "B"}, slotIDs(plan.Monday.Breakfast))

	plan, changed = Update(plan, "monday", "breakfast", meal("C"), ActionAdd)
	require.True(t, changed)
	plan, changed = Update(plan, "monday", "breakfast", meal("D"), ActionAdd)
	assert.False(t, changed)
	assert.Equal(t, []string{"A", "B", "C"}, slotIDs(plan.Monday.Breakfast))
}

func slotIDs(meals []models.Meal) []string {
	ids := make([]string, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}
	return ids
}

func TestMoveBetweenSlots(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "lunch", meal("x"), ActionAdd)

	next, moved := Move(plan,
		models.SlotRef{Day: "monday", SlotType: "lunch"},
		models.SlotRef{Day: "tuesday", SlotType: "dinner"},
		*meal("x"))
	require.True(t, moved)
	assert.Empty(t, next.Monday.Lunch)
	assert.Equal(t, []string{"x"}, slotIDs(next.Tuesday.Dinner))
}

func TestMoveIntoFullSlotKeepsMealAtOrigin(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "lunch", meal("x"), ActionAdd)
	for _, id := range []string{"a", "b", "c"} {
		plan, _ = Update(plan, "tuesday", "dinner", meal(id), ActionAdd)
	}

	// The legacy client protocol removed from the origin even when the
	// destination rejected the add, so the meal vanished entirely. The
	// explicit policy here keeps it in place.
	next, moved := Move(plan,
		models.SlotRef{Day: "monday", SlotType: "lunch"},
		models.SlotRef{Day: "tuesday", SlotType: "dinner"},
		*meal("x"))
	assert.False(t, moved)
	assert.Equal(t, []string{"x"}, slotIDs(next.Monday.Lunch))
	assert.Equal(t, []string{"a", "b", "c"}, slotIDs(next.Tuesday.Dinner))
}

func TestMoveWithinSameSlotIsNoOp(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "lunch", meal("x"), ActionAdd)

	next, moved := Move(plan,
		models.SlotRef{Day: "Monday", SlotType: "lunch"},
		models.SlotRef{Day: "monday", SlotType: "lunch"},
		*meal("x"))
	assert.False(t, moved)
	assert.Equal(t, plan, next)
}

func TestMoveToDestinationAlreadyHoldingMeal(t *testing.T) {
	plan := models.NewWeekPlan()
	plan, _ = Update(plan, "monday", "lunch", meal("x"), ActionAdd)
	plan, _ = Update(plan, "tuesday", "dinner", meal("x"), ActionAdd)

	// Duplicate id at the destination rejects the add; the origin copy
	// survives.
	next, moved := Move(plan,
		models.SlotRef{Day: "monday", SlotType: "lunch"},
		models.SlotRef{Day: "tuesday", SlotType: "dinner"},
		*meal("x"))
	assert.False(t, moved)
	assert.Equal(t, []string{"x"}, slotIDs(next.Monday.Lunch))
}
