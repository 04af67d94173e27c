package models

// UpdateSlotRequest is the body of POST /api/plan/slots. Meal may be nil
// only for the clear action.
type UpdateSlotRequest struct {
	Day      string `json:"day"`
	SlotType string `json:"slotType"`
	Meal     *Meal  `json:"meal,omitempty"`
	Action   string `json:"action"`
}

// MoveMealRequest is the body of POST /api/plan/move: one drag gesture from
// origin to dest carrying the full meal value.
type MoveMealRequest struct {
	Origin SlotRef `json:"origin"`
	Dest   SlotRef `json:"dest"`
	Meal   Meal    `json:"meal"`
}

// PlanResponse returns the plan snapshot after a mutation. Changed is false
// when the operation was rejected or was a no-op.
type PlanResponse struct {
	Plan    WeekPlan `json:"plan"`
	Changed bool     `json:"changed"`
}

// SaveStatusResponse carries the tri-state save flag.
type SaveStatusResponse struct {
	Status string `json:"status"`
}

// TokenResponse carries a freshly minted download token.
type TokenResponse struct {
	Token string `json:"token"`
}
