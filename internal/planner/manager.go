package planner

import (
	"context"
	"log"
	"sync"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// PlanStore loads and persists per-user plans.
type PlanStore interface {
	PlanSaver
	GetMealPlan(ctx context.Context, uid string) (models.WeekPlan, bool, error)
}

// Manager hands out one Session per signed-in user, loading the persisted
// plan on first access. Sessions live for the lifetime of the process and
// are dropped on sign-out.
type Manager struct {
	store PlanStore

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(store PlanStore) *Manager {
	return &Manager{
		store:    store,
		sessions: make(map[string]*Session),
	}
}

// Session returns the user's plan session, loading the stored plan if this
// is the first access. A failed load degrades to an empty plan so the
// caller stays interactive.
func (m *Manager) Session(ctx context.Context, uid string) *Session {
	m.mu.Lock()
	if s, ok := m.sessions[uid]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	plan, found, err := m.store.GetMealPlan(ctx, uid)
	if err != nil {
		log.Printf("planner: loading meal plan for %s failed: %v", uid, err)
		plan = models.NewWeekPlan()
	} else if !found {
		plan = models.NewWeekPlan()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[uid]; ok {
		// Another request loaded the plan first.
		return s
	}
	s := NewSession(uid, plan, m.store)
	m.sessions[uid] = s
	return s
}

// Drop discards the user's in-memory session. Unsaved changes are lost,
// matching the explicit-save contract.
func (m *Manager) Drop(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, uid)
}
