// Package scheduler builds the weekly meal plan. It is a pure,
// deterministic function of (library, history, config): the only
// randomness is a generator seeded from the config, consumed in fixed
// slot order.
package scheduler

import (
	"errors"
	"math/rand"

	"github.com/mealweek/mealweek/internal/domain"
)

// BuildPlan assigns recipes to every (day, meal) slot of the week
// described by cfg. Slots it cannot fill are marked skipped; an empty
// candidate pool is a valid outcome, never an error. The returned plan
// is complete and immutable: on any error no partial plan is returned.
func BuildPlan(lib *domain.Library, history []domain.HistoryEntry, cfg domain.WeekConfig) (*domain.Plan, error) {
	if errs := ValidateConfig(cfg); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ix := newRecencyIndex(history)
	plan := &domain.Plan{
		WeekStart: dateOnly(cfg.WeekStart),
		Seed:      cfg.Seed,
	}

	// Yield bookkeeping lives only for the duration of this run.
	portionsLeft := 0
	var yieldMeal domain.MealType

	if cfg.SundayPrep.Enabled {
		if prep := choosePrep(rng, lib, cfg, ix); prep != nil {
			plan.Prep = prep
			portionsLeft = prep.Yield.Count
			yieldMeal = prep.Yield.Meal
		}
	}

	meals := cfg.RequiredMeals()
	for i, day := range domain.WeekDays {
		date := dateOnly(cfg.DayDate(i))
		remaining, limited := cfg.TimeLimit(day)

		for _, meal := range meals {
			slot := domain.PlanSlot{
				Day:     day,
				Date:    date,
				Meal:    meal,
				Outcome: domain.SlotSkipped,
			}

			if cfg.Skipped(day, meal) {
				plan.Slots = append(plan.Slots, slot)
				continue
			}

			// Prep yield feeds matching slots first, one portion each,
			// at zero cook-time cost. Once exhausted, slots fall
			// through to normal selection.
			if portionsLeft > 0 && meal == yieldMeal {
				portionsLeft--
				slot.Outcome = domain.SlotReuse
				slot.RecipeID = plan.Prep.RecipeID
				slot.RecipeName = plan.Prep.RecipeName
				plan.Slots = append(plan.Slots, slot)
				continue
			}

			candidates := eligibleCandidates(lib, slotConstraints{
				meal:         meal,
				date:         date,
				remainingMin: remaining,
				limited:      limited,
				windowDays:   cfg.VariabilityWindowDays,
			}, ix)
			if len(candidates) == 0 {
				plan.Slots = append(plan.Slots, slot)
				continue
			}

			chosen := pickLeastRecentlyUsed(rng, candidates, date, ix)
			slot.Outcome = domain.SlotAssigned
			slot.RecipeID = chosen.ID
			slot.RecipeName = chosen.Name
			slot.TotalTimeMin = chosen.TotalTimeMin()
			plan.Slots = append(plan.Slots, slot)

			if limited {
				remaining -= chosen.TotalTimeMin()
			}
			ix.noteUse(chosen.ID, date)
		}
	}

	return plan, nil
}

// choosePrep fills the virtual Sunday prep slot. The prep budget is
// separate from Sunday's cook-time ceiling: batch cooking happens
// outside regular meal preparation.
func choosePrep(rng *rand.Rand, lib *domain.Library, cfg domain.WeekConfig, ix *recencyIndex) *domain.PrepSlot {
	weekStart := dateOnly(cfg.WeekStart)
	candidates := prepCandidates(lib, cfg.SundayPrep.MaxMinutes, weekStart, cfg.VariabilityWindowDays, ix)
	if len(candidates) == 0 {
		return nil
	}

	chosen := pickLeastRecentlyUsed(rng, candidates, weekStart, ix)
	ix.noteUse(chosen.ID, weekStart)
	return &domain.PrepSlot{
		RecipeID:     chosen.ID,
		RecipeName:   chosen.Name,
		TotalTimeMin: chosen.TotalTimeMin(),
		Yield:        *chosen.Yield,
	}
}
