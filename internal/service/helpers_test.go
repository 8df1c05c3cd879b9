package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/repository"
	"github.com/mealweek/mealweek/internal/testutil"
)

var testSunday = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	db      *sql.DB
	recipes repository.RecipeRepo
	history repository.HistoryRepo
	plans   repository.PlanRepo
	plan    PlanService
	grocery GroceryService
	recipe  RecipeService
	hist    HistoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	recipes := repository.NewSQLiteRecipeRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)
	plans := repository.NewSQLitePlanRepo(database)
	uow := testutil.NewTestUoW(database)

	return &testEnv{
		db:      database,
		recipes: recipes,
		history: history,
		plans:   plans,
		plan:    NewPlanService(recipes, history, plans, uow),
		grocery: NewGroceryService(recipes, plans),
		recipe:  NewRecipeService(recipes),
		hist:    NewHistoryService(history),
	}
}

// seedLibrary stores enough dinner recipes that a dinner-only week can
// always be filled.
func (e *testEnv) seedLibrary(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	names := []string{"Tacos", "Stir Fry", "Chili", "Ramen", "Risotto", "Curry", "Gnocchi", "Paella"}
	for _, name := range names {
		r := testutil.NewTestRecipe(name, testutil.WithIngredients(
			domain.Ingredient{Item: "onion", Qty: 1, Unit: "piece", Category: "produce"},
		))
		require.NoError(t, e.recipes.Upsert(ctx, r))
	}
}
