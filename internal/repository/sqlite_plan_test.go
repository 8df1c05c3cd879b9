package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/testutil"
)

func testPlan(weekStart time.Time, seed int64) *domain.Plan {
	plan := &domain.Plan{
		WeekStart:   weekStart,
		Seed:        seed,
		GeneratedAt: time.Date(2026, 1, 2, 18, 30, 0, 0, time.UTC),
		Prep: &domain.PrepSlot{
			RecipeID:     "r-grain-bowl",
			RecipeName:   "Grain Bowl Base",
			TotalTimeMin: 90,
			Yield:        domain.Yield{Count: 4, Meal: domain.MealLunch},
		},
	}
	for i, d := range domain.WeekDays {
		date := weekStart.AddDate(0, 0, i)
		slot := domain.PlanSlot{Day: d, Date: date, Meal: domain.MealDinner}
		if d == time.Wednesday {
			slot.Outcome = domain.SlotSkipped
		} else {
			slot.Outcome = domain.SlotAssigned
			slot.RecipeID = "r-stir-fry"
			slot.RecipeName = "Stir Fry"
			slot.TotalTimeMin = 25
		}
		plan.Slots = append(plan.Slots, slot)
	}
	return plan
}

func TestPlanRepo_SaveAndGetByWeekStart(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	weekStart := day(2026, 1, 4)
	plan := testPlan(weekStart, 42)
	require.NoError(t, repo.Save(ctx, plan))

	fetched, err := repo.GetByWeekStart(ctx, weekStart)
	require.NoError(t, err)
	assert.Equal(t, weekStart, fetched.WeekStart)
	assert.Equal(t, int64(42), fetched.Seed)
	assert.Equal(t, plan.GeneratedAt, fetched.GeneratedAt)
	require.NotNil(t, fetched.Prep)
	assert.Equal(t, "r-grain-bowl", fetched.Prep.RecipeID)
	assert.Equal(t, 4, fetched.Prep.Yield.Count)
	assert.Len(t, fetched.Slots, 7)
	assert.Equal(t, domain.SlotSkipped, fetched.SlotsFor(time.Wednesday)[0].Outcome)
	assert.Equal(t, "r-stir-fry", fetched.SlotsFor(time.Monday)[0].RecipeID)
}

func TestPlanRepo_SaveReplacesSameWeek(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	weekStart := day(2026, 1, 4)
	require.NoError(t, repo.Save(ctx, testPlan(weekStart, 1)))
	require.NoError(t, repo.Save(ctx, testPlan(weekStart, 2)))

	fetched, err := repo.GetByWeekStart(ctx, weekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetched.Seed)

	weeks, err := repo.ListWeeks(ctx)
	require.NoError(t, err)
	assert.Len(t, weeks, 1)
}

func TestPlanRepo_Latest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testPlan(day(2026, 1, 4), 1)))
	require.NoError(t, repo.Save(ctx, testPlan(day(2026, 1, 18), 3)))
	require.NoError(t, repo.Save(ctx, testPlan(day(2026, 1, 11), 2)))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 1, 18), latest.WeekStart)
	assert.Equal(t, int64(3), latest.Seed)
}

func TestPlanRepo_ListWeeksSorted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testPlan(day(2026, 1, 18), 1)))
	require.NoError(t, repo.Save(ctx, testPlan(day(2026, 1, 4), 1)))

	weeks, err := repo.ListWeeks(ctx)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, day(2026, 1, 4), weeks[0])
	assert.Equal(t, day(2026, 1, 18), weeks[1])
}

func TestPlanRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	_, err := repo.GetByWeekStart(ctx, day(2026, 1, 4))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
