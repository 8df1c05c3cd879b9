package domain

import "time"

// HistoryEntry records one recipe use on one date. History is an
// append-only log: the planner only reads it, and the caller appends
// new entries after a plan is accepted.
type HistoryEntry struct {
	Date     time.Time
	RecipeID string
	Meal     MealType
}

// PrepSlot is the virtual Sunday slot occupied by a meal-prep recipe.
// Its yield feeds later reuse slots of the matching meal type.
type PrepSlot struct {
	RecipeID     string
	RecipeName   string
	TotalTimeMin int
	Yield        Yield
}

// PlanSlot is the outcome of one (day, meal) pair.
type PlanSlot struct {
	Day     time.Weekday
	Date    time.Time
	Meal    MealType
	Outcome SlotOutcome

	// RecipeID names the assigned recipe, or for reuse slots the prep
	// recipe whose yield is consumed. Empty on skipped slots.
	RecipeID   string
	RecipeName string

	// TotalTimeMin is the time charged to the day. Zero for skipped
	// and reuse slots.
	TotalTimeMin int
}

// Assigned reports whether the slot carries its own recipe (not a
// skip, not a reuse of prep yield).
func (s PlanSlot) Assigned() bool {
	return s.Outcome == SlotAssigned
}

// Plan is the finalized weekly assignment. It is immutable once
// returned by the scheduler.
type Plan struct {
	WeekStart   time.Time
	Seed        int64
	GeneratedAt time.Time

	// Prep is non-nil when a Sunday meal-prep recipe was scheduled.
	Prep *PrepSlot

	// Slots covers exactly 7 days times the configured meal types, in
	// Sunday-to-Saturday, breakfast-to-snack order.
	Slots []PlanSlot
}

// SlotsFor returns the slots of one weekday in meal order.
func (p *Plan) SlotsFor(d time.Weekday) []PlanSlot {
	var out []PlanSlot
	for _, s := range p.Slots {
		if s.Day == d {
			out = append(out, s)
		}
	}
	return out
}

// AssignedRecipeIDs returns the recipe IDs of all assigned slots plus
// the prep slot, in plan order. This is the set the caller records to
// history once the plan is accepted.
func (p *Plan) AssignedRecipeIDs() []string {
	var ids []string
	if p.Prep != nil {
		ids = append(ids, p.Prep.RecipeID)
	}
	for _, s := range p.Slots {
		if s.Assigned() {
			ids = append(ids, s.RecipeID)
		}
	}
	return ids
}

// HistoryEntries expands the plan into the append-only history records
// the caller persists on acceptance: one per assigned slot, plus one
// for the prep slot dated on the week start.
func (p *Plan) HistoryEntries() []HistoryEntry {
	var entries []HistoryEntry
	if p.Prep != nil {
		entries = append(entries, HistoryEntry{
			Date:     p.WeekStart,
			RecipeID: p.Prep.RecipeID,
			Meal:     p.Prep.Yield.Meal,
		})
	}
	for _, s := range p.Slots {
		if !s.Assigned() {
			continue
		}
		entries = append(entries, HistoryEntry{Date: s.Date, RecipeID: s.RecipeID, Meal: s.Meal})
	}
	return entries
}

// GroceryItem is one aggregated line of the shopping list.
type GroceryItem struct {
	Item     string
	Quantity float64
	Unit     string
	Category string

	// Sources lists the meals that demanded the item, e.g.
	// "Sunday Dinner".
	Sources []string
}
