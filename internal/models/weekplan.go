package models

import "strings"

// Days in week order. Plan operations iterate this slice so monday always
// comes first.
var Days = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// SlotTypes in display order.
var SlotTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// DayPlan holds the three slots of a single day. A slot never exceeds three
// meals and never holds the same meal id twice; the planner package enforces
// both.
type DayPlan struct {
	Breakfast []Meal `json:"breakfast" firestore:"breakfast"`
	Lunch     []Meal `json:"lunch" firestore:"lunch"`
	Dinner    []Meal `json:"dinner" firestore:"dinner"`
}

// Slot returns the slot sequence for the given type, or nil for an unknown
// type.
func (d *DayPlan) Slot(slotType string) *[]Meal {
	switch slotType {
	case MealTypeBreakfast:
		return &d.Breakfast
	case MealTypeLunch:
		return &d.Lunch
	case MealTypeDinner:
		return &d.Dinner
	}
	return nil
}

// SlotRef names a single day/slot cell of the grid.
type SlotRef struct {
	Day      string `json:"day"`
	SlotType string `json:"slotType"`
}

// WeekPlan is the fixed 7x3 grid. Every day and slot is always present;
// empty slots are empty slices, never missing keys.
type WeekPlan struct {
	Monday    DayPlan `json:"monday" firestore:"monday"`
	Tuesday   DayPlan `json:"tuesday" firestore:"tuesday"`
	Wednesday DayPlan `json:"wednesday" firestore:"wednesday"`
	Thursday  DayPlan `json:"thursday" firestore:"thursday"`
	Friday    DayPlan `json:"friday" firestore:"friday"`
	Saturday  DayPlan `json:"saturday" firestore:"saturday"`
	Sunday    DayPlan `json:"sunday" firestore:"sunday"`
}

// NewWeekPlan returns a fully populated plan with every slot an empty,
// non-nil sequence.
func NewWeekPlan() WeekPlan {
	var p WeekPlan
	for _, day := range Days {
		d := p.Day(day)
		d.Breakfast = []Meal{}
		d.Lunch = []Meal{}
		d.Dinner = []Meal{}
	}
	return p
}

// Day returns the plan for the named day, case-insensitive. Unknown names
// return nil.
func (p *WeekPlan) Day(name string) *DayPlan {
	switch strings.ToLower(name) {
	case "monday":
		return &p.Monday
	case "tuesday":
		return &p.Tuesday
	case "wednesday":
		return &p.Wednesday
	case "thursday":
		return &p.Thursday
	case "friday":
		return &p.Friday
	case "saturday":
		return &p.Saturday
	case "sunday":
		return &p.Sunday
	}
	return nil
}

// Normalize fills in any nil slot sequences. Plans loaded from documents
// written by older clients can be partial; callers always see the full 7x3
// shape.
func (p *WeekPlan) Normalize() {
	for _, day := range Days {
		d := p.Day(day)
		if d.Breakfast == nil {
			d.Breakfast = []Meal{}
		}
		if d.Lunch == nil {
			d.Lunch = []Meal{}
		}
		if d.Dinner == nil {
			d.Dinner = []Meal{}
		}
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// aliasing the slot slices.
func (p WeekPlan) Clone() WeekPlan {
	out := p
	for _, day := range Days {
		src := p.Day(day)
		dst := out.Day(day)
		dst.Breakfast = append([]Meal{}, src.Breakfast...)
		dst.Lunch = append([]Meal{}, src.Lunch...)
		dst.Dinner = append([]Meal{}, src.Dinner...)
	}
	return out
}
