package planner

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// SaveStatus is the tri-state flag the UI shows next to the save button.
type SaveStatus string

const (
	SaveStatusIdle    SaveStatus = ""
	SaveStatusSaving  SaveStatus = "saving"
	SaveStatusSuccess SaveStatus = "success"
	SaveStatusError   SaveStatus = "error"
)

// How long the success state is shown before reverting to idle.
const statusRevertAfter = 3 * time.Second

// PlanSaver persists a user's plan.
type PlanSaver interface {
	SaveMealPlan(ctx context.Context, uid string, plan models.WeekPlan) error
}

// Session owns one user's in-memory plan. Mutations apply to the snapshot
// only; nothing reaches the document store until Save is called. Every
// settled save and every status-revert timer carries the generation it was
// started under, so a stale completion never clobbers the state of a newer
// save.
type Session struct {
	uid   string
	saver PlanSaver

	mu          sync.Mutex
	plan        models.WeekPlan
	status      SaveStatus
	gen         uint64
	revertAfter time.Duration
}

// NewSession wraps a loaded (or empty) plan for the given user.
func NewSession(uid string, plan models.WeekPlan, saver PlanSaver) *Session {
	plan.Normalize()
	return &Session{
		uid:         uid,
		saver:       saver,
		plan:        plan,
		revertAfter: statusRevertAfter,
	}
}

// Plan returns a snapshot of the current plan.
func (s *Session) Plan() models.WeekPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

// Status returns the current save status.
func (s *Session) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Update applies one slot mutation, returning the new snapshot and whether
// anything changed.
func (s *Session) Update(day, slotType string, meal *models.Meal, action Action) (models.WeekPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := Update(s.plan, day, slotType, meal, action)
	if changed {
		s.plan = next
	}
	return s.plan.Clone(), changed
}

// Move applies the drag gesture; see Move in update.go for the policy.
func (s *Session) Move(origin, dest models.SlotRef, meal models.Meal) (models.WeekPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, moved := Move(s.plan, origin, dest, meal)
	if moved {
		s.plan = next
	}
	return s.plan.Clone(), moved
}

// Generate replaces the plan with a random one drawn from the catalog.
func (s *Session) Generate(catalog []models.Meal, rng *rand.Rand) models.WeekPlan {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	plan := Generate(catalog, rng)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan
	return s.plan.Clone()
}

// Clear resets every slot to an empty sequence.
func (s *Session) Clear() models.WeekPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = models.NewWeekPlan()
	return s.plan.Clone()
}

// Save writes the current plan to the document store. The status moves to
// saving immediately and settles to success or error when the write returns;
// success reverts to idle after a fixed delay unless a newer save has
// started in the meantime.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.status = SaveStatusSaving
	plan := s.plan.Clone()
	s.mu.Unlock()

	err := s.saver.SaveMealPlan(ctx, s.uid, plan)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer save superseded this one; drop the stale result.
		return err
	}
	if err != nil {
		log.Printf("planner: saving meal plan for %s failed: %v", s.uid, err)
		s.status = SaveStatusError
		return err
	}
	s.status = SaveStatusSuccess
	time.AfterFunc(s.revertAfter, func() { s.revert(gen) })
	return nil
}

func (s *Session) revert(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen && s.status == SaveStatusSuccess {
		s.status = SaveStatusIdle
	}
}
