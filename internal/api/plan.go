package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/emrekoca/mealweek-server/internal/catalog"
	"github.com/emrekoca/mealweek-server/internal/middleware"
	"github.com/emrekoca/mealweek-server/internal/models"
	"github.com/emrekoca/mealweek-server/internal/planner"
	"github.com/emrekoca/mealweek-server/internal/realtime"
	"github.com/emrekoca/mealweek-server/internal/store"
)

// PlanHandler serves the in-memory weekly plan. All mutations work on the
// session snapshot; only POST /api/plan/save reaches the document store.
type PlanHandler struct {
	Store   *store.Store
	Catalog *catalog.Catalog
	Plans   *planner.Manager
	Hub     *realtime.Hub
}

func NewPlanHandler(st *store.Store, cat *catalog.Catalog, plans *planner.Manager, hub *realtime.Hub) *PlanHandler {
	return &PlanHandler{Store: st, Catalog: cat, Plans: plans, Hub: hub}
}

// Get handles GET /api/plan.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session := h.Plans.Session(r.Context(), uid)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session.Plan())
}

// UpdateSlot handles POST /api/plan/slots: one add/remove/clear mutation.
// Rejected operations come back with Changed false and an unchanged plan;
// they are not errors.
func (h *PlanHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	session := h.Plans.Session(r.Context(), uid)
	plan, changed := session.Update(req.Day, req.SlotType, req.Meal, planner.Action(req.Action))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PlanResponse{Plan: plan, Changed: changed})
}

// Move handles POST /api/plan/move: a whole drag gesture. The destination
// add runs first; the origin remove is issued only when the add succeeded,
// so a drop into a full slot leaves the plan unchanged instead of losing
// the meal.
func (h *PlanHandler) Move(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.MoveMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Meal.ID == "" {
		http.Error(w, "Meal id is required", http.StatusBadRequest)
		return
	}

	session := h.Plans.Session(r.Context(), uid)
	plan, moved := session.Move(req.Origin, req.Dest, req.Meal)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PlanResponse{Plan: plan, Changed: moved})
}

// Random handles POST /api/plan/random: replaces the plan with a random
// assignment drawn from the combined default+personal catalog.
func (h *PlanHandler) Random(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Catalog.Load(r.Context()); err != nil {
		log.Printf("api: refreshing meal catalog failed: %v", err)
	}
	personal, err := h.Store.UserMeals(r.Context(), uid)
	if err != nil {
		log.Printf("api: loading personal meals for %s failed: %v", uid, err)
		personal = []models.Meal{}
	}
	combined := append(h.Catalog.DefaultMeals(), personal...)

	session := h.Plans.Session(r.Context(), uid)
	plan := session.Generate(combined, nil)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PlanResponse{Plan: plan, Changed: true})
}

// Clear handles POST /api/plan/clear.
func (h *PlanHandler) Clear(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session := h.Plans.Session(r.Context(), uid)
	plan := session.Clear()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PlanResponse{Plan: plan, Changed: true})
}

// Save handles POST /api/plan/save. Failures surface as the error status,
// not as an HTTP error; the user retries manually.
func (h *PlanHandler) Save(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session := h.Plans.Session(r.Context(), uid)
	if err := session.Save(r.Context()); err == nil {
		h.Hub.Broadcast(uid, realtime.Event{Type: "plan.saved"})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.SaveStatusResponse{Status: string(session.Status())})
}

// Status handles GET /api/plan/status.
func (h *PlanHandler) Status(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session := h.Plans.Session(r.Context(), uid)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.SaveStatusResponse{Status: string(session.Status())})
}
