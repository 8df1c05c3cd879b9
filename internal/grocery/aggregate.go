// Package grocery derives a consolidated shopping list from a
// finalized plan. Like the scheduler it is a pure pass over in-memory
// values.
package grocery

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

// UnknownRecipeError reports a plan slot that references a recipe
// missing from the library. It is a data-integrity failure: the plan
// and library do not belong together, so aggregation aborts rather
// than silently dropping the slot.
type UnknownRecipeError struct {
	RecipeID string
	Day      time.Weekday
	Meal     domain.MealType
}

func (e UnknownRecipeError) Error() string {
	return fmt.Sprintf("plan references unknown recipe %q at %s %s", e.RecipeID, e.Day, e.Meal)
}

// Aggregate walks every assigned slot of the plan (plus the prep slot)
// and sums ingredient demand per (normalized item, unit) pair. Reuse
// slots are not revisited: their ingredients were counted at the
// producing prep slot. Pantry items are dropped, quantities scale by
// household size against each recipe's servings, and incompatible
// units stay separate line items. Output order is category then item,
// independent of slot iteration order.
func Aggregate(plan *domain.Plan, lib *domain.Library, cfg domain.WeekConfig) ([]domain.GroceryItem, error) {
	pantry := make(map[string]bool, len(cfg.Pantry))
	for _, item := range cfg.Pantry {
		pantry[strings.ToLower(strings.TrimSpace(item))] = true
	}

	type key struct {
		item string
		unit string
	}
	totals := make(map[key]*domain.GroceryItem)

	add := func(r domain.Recipe, source string) {
		multiplier := 1.0
		if r.ServingsPerRecipe > 0 {
			multiplier = float64(cfg.HouseholdSize()) / r.ServingsPerRecipe
		}
		for _, ing := range r.Ingredients {
			name := ing.NormalizedItem()
			if pantry[name] {
				continue
			}
			k := key{item: name, unit: ing.Unit}
			entry, ok := totals[k]
			if !ok {
				entry = &domain.GroceryItem{
					Item:     name,
					Unit:     ing.Unit,
					Category: ing.Category,
				}
				totals[k] = entry
			}
			entry.Quantity += ing.Qty * multiplier
			entry.Sources = append(entry.Sources, source)
		}
	}

	if plan.Prep != nil {
		r, ok := lib.Get(plan.Prep.RecipeID)
		if !ok {
			return nil, UnknownRecipeError{RecipeID: plan.Prep.RecipeID, Day: time.Sunday, Meal: plan.Prep.Yield.Meal}
		}
		add(r, "Sunday prep")
	}

	for _, slot := range plan.Slots {
		if !slot.Assigned() {
			continue
		}
		r, ok := lib.Get(slot.RecipeID)
		if !ok {
			return nil, UnknownRecipeError{RecipeID: slot.RecipeID, Day: slot.Day, Meal: slot.Meal}
		}
		add(r, fmt.Sprintf("%s %s", slot.Day, titleMeal(slot.Meal)))
	}

	items := make([]domain.GroceryItem, 0, len(totals))
	for _, entry := range totals {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		if items[i].Item != items[j].Item {
			return items[i].Item < items[j].Item
		}
		return items[i].Unit < items[j].Unit
	})
	return items, nil
}

// titleMeal capitalizes a meal type for provenance strings, so sources
// read "Monday Dinner" rather than "Monday dinner".
func titleMeal(m domain.MealType) string {
	s := string(m)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
