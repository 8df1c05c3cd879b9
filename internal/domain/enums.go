package domain

import (
	"fmt"
	"strings"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealOrder is the canonical within-day slot order. Planning walks meals
// in this order, so earlier meals see a fuller cook-time budget.
var MealOrder = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ValidMealTypes is the canonical set of accepted meal type strings.
var ValidMealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true,
}

// ParseMealType normalizes and validates a meal type string.
func ParseMealType(s string) (MealType, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	if !ValidMealTypes[m] {
		return "", fmt.Errorf("unknown meal type %q", s)
	}
	return MealType(m), nil
}

// WeekDays lists the days of a planning week in slot order,
// Sunday through Saturday.
var WeekDays = [7]time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// ParseWeekday accepts an English day name such as "Sunday" or "sunday".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range WeekDays {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown day name %q", s)
}

type SlotOutcome string

const (
	// SlotAssigned means a recipe was chosen for the slot.
	SlotAssigned SlotOutcome = "assigned"
	// SlotSkipped means no recipe could be (or should be) assigned.
	// This is a valid plan state, not an error.
	SlotSkipped SlotOutcome = "skipped"
	// SlotReuse means the slot consumes a portion yielded by the
	// Sunday prep slot at zero additional cook time.
	SlotReuse SlotOutcome = "reuse"
)
