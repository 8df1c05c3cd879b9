package grocery

import (
	"testing"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sunday = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)

func pastaRecipe() domain.Recipe {
	return domain.Recipe{
		ID:                "pasta",
		Name:              "Pasta",
		Meals:             []domain.MealType{domain.MealDinner},
		PrepTimeMin:       10,
		CookTimeMin:       20,
		ServingsPerRecipe: 2,
		Ingredients: []domain.Ingredient{
			{Item: "Pasta ", Qty: 200, Unit: "g", Category: "grains"},
			{Item: "tomato sauce", Qty: 1, Unit: "jar", Category: "pantry"},
			{Item: "water", Qty: 2, Unit: "cups", Category: "pantry"},
		},
	}
}

func dinnerSlot(day time.Weekday, offset int, recipeID string) domain.PlanSlot {
	return domain.PlanSlot{
		Day:      day,
		Date:     sunday.AddDate(0, 0, offset),
		Meal:     domain.MealDinner,
		Outcome:  domain.SlotAssigned,
		RecipeID: recipeID,
	}
}

func TestAggregate_ScalesAndMerges(t *testing.T) {
	lib := domain.NewLibrary([]domain.Recipe{pastaRecipe()})
	plan := &domain.Plan{
		WeekStart: sunday,
		Slots: []domain.PlanSlot{
			dinnerSlot(time.Sunday, 0, "pasta"),
			dinnerSlot(time.Monday, 1, "pasta"),
		},
	}
	cfg := domain.WeekConfig{WeekStart: sunday, People: 4, Pantry: []string{"Water"}}

	items, err := Aggregate(plan, lib, cfg)
	require.NoError(t, err)
	require.Len(t, items, 2, "pantry item must be excluded")

	// 200g per recipe, 4 people over 2 servings doubles it, used twice.
	pasta := items[0]
	assert.Equal(t, "pasta", pasta.Item)
	assert.InDelta(t, 800, pasta.Quantity, 1e-9)
	assert.Equal(t, "grains", pasta.Category)
	assert.Equal(t, []string{"Sunday Dinner", "Monday Dinner"}, pasta.Sources)

	sauce := items[1]
	assert.Equal(t, "tomato sauce", sauce.Item)
	assert.InDelta(t, 4, sauce.Quantity, 1e-9)
}

func TestAggregate_SkipsReuseAndSkippedSlots(t *testing.T) {
	prep := domain.Recipe{
		ID:                "chili",
		Name:              "Chili",
		Meals:             []domain.MealType{domain.MealDinner},
		CookTimeMin:       90,
		ServingsPerRecipe: 2,
		Yield:             &domain.Yield{Count: 3, Meal: domain.MealLunch},
		Ingredients: []domain.Ingredient{
			{Item: "beans", Qty: 400, Unit: "g", Category: "canned"},
		},
	}
	lib := domain.NewLibrary([]domain.Recipe{prep})

	plan := &domain.Plan{
		WeekStart: sunday,
		Prep: &domain.PrepSlot{
			RecipeID:   "chili",
			RecipeName: "Chili",
			Yield:      domain.Yield{Count: 3, Meal: domain.MealLunch},
		},
		Slots: []domain.PlanSlot{
			{Day: time.Sunday, Date: sunday, Meal: domain.MealLunch, Outcome: domain.SlotReuse, RecipeID: "chili"},
			{Day: time.Monday, Date: sunday.AddDate(0, 0, 1), Meal: domain.MealLunch, Outcome: domain.SlotReuse, RecipeID: "chili"},
			{Day: time.Tuesday, Date: sunday.AddDate(0, 0, 2), Meal: domain.MealLunch, Outcome: domain.SlotSkipped},
		},
	}
	cfg := domain.WeekConfig{WeekStart: sunday, People: 2}

	items, err := Aggregate(plan, lib, cfg)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Counted once at the prep slot; reuse slots add nothing.
	assert.InDelta(t, 400, items[0].Quantity, 1e-9)
	assert.Equal(t, []string{"Sunday prep"}, items[0].Sources)
}

func TestAggregate_IncompatibleUnitsStaySeparate(t *testing.T) {
	a := pastaRecipe()
	a.ID = "a"
	a.Ingredients = []domain.Ingredient{{Item: "milk", Qty: 2, Unit: "cups", Category: "dairy"}}
	b := pastaRecipe()
	b.ID = "b"
	b.Ingredients = []domain.Ingredient{{Item: "milk", Qty: 1, Unit: "pint", Category: "dairy"}}
	lib := domain.NewLibrary([]domain.Recipe{a, b})

	plan := &domain.Plan{
		WeekStart: sunday,
		Slots: []domain.PlanSlot{
			dinnerSlot(time.Sunday, 0, "a"),
			dinnerSlot(time.Monday, 1, "b"),
		},
	}
	cfg := domain.WeekConfig{WeekStart: sunday, People: 2}

	items, err := Aggregate(plan, lib, cfg)
	require.NoError(t, err)
	require.Len(t, items, 2, "cups and pints must not be coerced into one line")
	assert.Equal(t, "cups", items[0].Unit)
	assert.Equal(t, "pint", items[1].Unit)
}

func TestAggregate_UnknownRecipeFails(t *testing.T) {
	lib := domain.NewLibrary([]domain.Recipe{pastaRecipe()})
	plan := &domain.Plan{
		WeekStart: sunday,
		Slots:     []domain.PlanSlot{dinnerSlot(time.Wednesday, 3, "ghost")},
	}

	_, err := Aggregate(plan, lib, domain.WeekConfig{WeekStart: sunday})
	require.Error(t, err)

	var unknown UnknownRecipeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.RecipeID)
	assert.Equal(t, time.Wednesday, unknown.Day)
}

func TestAggregate_Idempotent(t *testing.T) {
	lib := domain.NewLibrary([]domain.Recipe{pastaRecipe()})
	plan := &domain.Plan{
		WeekStart: sunday,
		Slots: []domain.PlanSlot{
			dinnerSlot(time.Sunday, 0, "pasta"),
			dinnerSlot(time.Friday, 5, "pasta"),
		},
	}
	cfg := domain.WeekConfig{WeekStart: sunday}

	first, err := Aggregate(plan, lib, cfg)
	require.NoError(t, err)
	second, err := Aggregate(plan, lib, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
