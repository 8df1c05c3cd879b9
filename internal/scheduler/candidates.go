package scheduler

import (
	"sort"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

// slotConstraints captures everything that narrows the candidate pool
// for one slot.
type slotConstraints struct {
	meal         domain.MealType
	date         time.Time
	remainingMin int
	limited      bool
	windowDays   int
}

// eligibleCandidates returns the recipes that may fill the slot:
// eligible for its meal type, within the day's remaining cook-time
// budget, and not used inside the variability window. The result is
// sorted by recipe ID so selection is independent of library order.
func eligibleCandidates(lib *domain.Library, c slotConstraints, ix *recencyIndex) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range lib.All() {
		if !r.EligibleFor(c.meal) {
			continue
		}
		if c.limited && r.TotalTimeMin() > c.remainingMin {
			continue
		}
		if ix.usedWithin(r.ID, c.date, c.windowDays) {
			continue
		}
		out = append(out, r)
	}
	sortByID(out)
	return out
}

// prepCandidates returns the meal-prep recipes that fit the Sunday
// prep budget and do not violate the variability window.
func prepCandidates(lib *domain.Library, budgetMin int, weekStart time.Time, windowDays int, ix *recencyIndex) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range lib.All() {
		if !r.IsPrep() {
			continue
		}
		if r.TotalTimeMin() > budgetMin {
			continue
		}
		if ix.usedWithin(r.ID, weekStart, windowDays) {
			continue
		}
		out = append(out, r)
	}
	sortByID(out)
	return out
}

func sortByID(recipes []domain.Recipe) {
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })
}
