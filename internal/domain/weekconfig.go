package domain

import "time"

// MaxPrepMinutes bounds the Sunday meal-prep time budget.
const MaxPrepMinutes = 120

// DefaultPeople is the household size assumed when the config does not
// say otherwise.
const DefaultPeople = 2

// PrepConfig controls the optional Sunday meal-prep slot.
type PrepConfig struct {
	Enabled    bool
	MaxMinutes int
}

// WeekConfig describes the preferences for one planning week.
type WeekConfig struct {
	// WeekStart is the Sunday the plan begins on.
	WeekStart time.Time

	// People scales ingredient quantities during grocery aggregation.
	People int

	// Meals lists the meal types required each day. Empty means all of
	// MealOrder.
	Meals []MealType

	// DailyTimeLimits maps a weekday to its cook-time ceiling in
	// minutes. A day absent from the map has no ceiling.
	DailyTimeLimits map[time.Weekday]int

	// SkipMeals marks (day, meal) pairs that are explicitly not planned.
	SkipMeals map[time.Weekday][]MealType

	// VariabilityWindowDays is the sliding window, in days, within
	// which a recipe must not repeat.
	VariabilityWindowDays int

	SundayPrep PrepConfig

	// Pantry lists ingredient names assumed on hand; they are excluded
	// from grocery lists. Matched case-insensitively.
	Pantry []string

	// Seed drives the deterministic tie-break between equally recent
	// candidates.
	Seed int64
}

// RequiredMeals returns the meal types planned per day, in canonical
// slot order.
func (c WeekConfig) RequiredMeals() []MealType {
	if len(c.Meals) == 0 {
		return MealOrder
	}
	ordered := make([]MealType, 0, len(c.Meals))
	for _, m := range MealOrder {
		for _, want := range c.Meals {
			if m == want {
				ordered = append(ordered, m)
				break
			}
		}
	}
	return ordered
}

// DayDate returns the calendar date of the i-th day of the week,
// where 0 is Sunday.
func (c WeekConfig) DayDate(i int) time.Time {
	return c.WeekStart.AddDate(0, 0, i)
}

// TimeLimit returns the cook-time ceiling for a day and whether one is
// configured.
func (c WeekConfig) TimeLimit(d time.Weekday) (int, bool) {
	limit, ok := c.DailyTimeLimits[d]
	return limit, ok
}

// Skipped reports whether the (day, meal) pair is configured to skip.
func (c WeekConfig) Skipped(d time.Weekday, m MealType) bool {
	for _, skip := range c.SkipMeals[d] {
		if skip == m {
			return true
		}
	}
	return false
}

// HouseholdSize returns People, defaulting when unset.
func (c WeekConfig) HouseholdSize() int {
	if c.People <= 0 {
		return DefaultPeople
	}
	return c.People
}
