package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildPlan_Invariants property-tests the scheduling guarantees
// over randomized libraries, histories and configs: slot coverage,
// per-day cook-time bounds, the no-repeat window, and reuse soundness.
func TestBuildPlan_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 150; trial++ {
		var recipes []domain.Recipe
		numRecipes := rng.Intn(12) + 1
		for i := 0; i < numRecipes; i++ {
			meal := domain.MealOrder[rng.Intn(len(domain.MealOrder))]
			r := testRecipe(fmt.Sprintf("r-%02d", i), meal, rng.Intn(60)+5)
			if rng.Intn(4) == 0 {
				r.Yield = &domain.Yield{
					Count: rng.Intn(5) + 1,
					Meal:  domain.MealOrder[rng.Intn(len(domain.MealOrder))],
				}
			}
			recipes = append(recipes, r)
		}
		lib := domain.NewLibrary(recipes)

		var history []domain.HistoryEntry
		for i := 0; i < rng.Intn(10); i++ {
			history = append(history, domain.HistoryEntry{
				// Anywhere from three weeks back to inside the planning
				// week itself, as when an accepted week is regenerated.
				Date:     sunday.AddDate(0, 0, rng.Intn(28)-21),
				RecipeID: fmt.Sprintf("r-%02d", rng.Intn(numRecipes)),
				Meal:     domain.MealOrder[rng.Intn(len(domain.MealOrder))],
			})
		}

		cfg := domain.WeekConfig{
			WeekStart:             sunday,
			VariabilityWindowDays: rng.Intn(15),
			Seed:                  rng.Int63(),
			DailyTimeLimits:       map[time.Weekday]int{},
		}
		for _, day := range domain.WeekDays {
			if rng.Intn(2) == 0 {
				cfg.DailyTimeLimits[day] = rng.Intn(120)
			}
		}
		if rng.Intn(2) == 0 {
			cfg.SundayPrep = domain.PrepConfig{Enabled: true, MaxMinutes: rng.Intn(120) + 1}
		}

		plan, err := BuildPlan(lib, history, cfg)
		require.NoError(t, err, "trial %d", trial)

		// Coverage: exactly one outcome per (day, meal) pair.
		require.Len(t, plan.Slots, 7*len(domain.MealOrder), "trial %d", trial)
		seen := make(map[string]bool)
		for _, s := range plan.Slots {
			key := s.Day.String() + "/" + string(s.Meal)
			assert.False(t, seen[key], "trial %d: duplicate slot %s", trial, key)
			seen[key] = true
		}

		// Cook-time bound per day, reuse slots free.
		for _, day := range domain.WeekDays {
			limit, limited := cfg.DailyTimeLimits[day]
			if !limited {
				continue
			}
			total := 0
			for _, s := range plan.SlotsFor(day) {
				if s.Assigned() {
					total += s.TotalTimeMin
				}
			}
			assert.LessOrEqual(t, total, limit,
				"trial %d: day %s exceeds its ceiling", trial, day)
		}

		// No-repeat window over history plus earlier plan slots. Only
		// uses on or before a slot's date count against it; history
		// dated later in the week must not block earlier days.
		if w := cfg.VariabilityWindowDays; w > 0 {
			uses := make(map[string][]time.Time)
			for _, e := range history {
				uses[e.RecipeID] = append(uses[e.RecipeID], dateOnly(e.Date))
			}
			if plan.Prep != nil {
				uses[plan.Prep.RecipeID] = append(uses[plan.Prep.RecipeID], plan.WeekStart)
			}
			for _, s := range plan.Slots {
				if !s.Assigned() {
					continue
				}
				for _, prev := range uses[s.RecipeID] {
					if !prev.After(s.Date) {
						assert.GreaterOrEqual(t, daysBetween(prev, s.Date), w,
							"trial %d: %s repeated within window", trial, s.RecipeID)
					}
				}
				uses[s.RecipeID] = append(uses[s.RecipeID], s.Date)
			}
		}

		// Reuse soundness: a producing prep slot exists and reuse
		// count never exceeds its declared yield.
		reuses := 0
		for _, s := range plan.Slots {
			if s.Outcome != domain.SlotReuse {
				continue
			}
			reuses++
			require.NotNil(t, plan.Prep, "trial %d: reuse without a prep slot", trial)
			assert.Equal(t, plan.Prep.RecipeID, s.RecipeID, "trial %d", trial)
			assert.Equal(t, plan.Prep.Yield.Meal, s.Meal, "trial %d", trial)
		}
		if plan.Prep != nil {
			assert.LessOrEqual(t, reuses, plan.Prep.Yield.Count, "trial %d", trial)
			assert.LessOrEqual(t, plan.Prep.TotalTimeMin, cfg.SundayPrep.MaxMinutes, "trial %d", trial)
		}

		// Determinism: a second run over the same inputs is identical.
		again, err := BuildPlan(lib, history, cfg)
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, plan, again, "trial %d: rerun diverged", trial)
	}
}
