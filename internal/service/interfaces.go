// Package service composes the scheduler, grocery pass and
// repositories into the operations the CLI exposes: generating a
// weekly plan, accepting it, building grocery lists, and managing the
// recipe library and usage history.
package service

import (
	"context"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

type PlanService interface {
	// Generate builds a plan from the stored library and history.
	// The plan is not persisted; call Accept once the user commits.
	Generate(ctx context.Context, cfg domain.WeekConfig) (*domain.Plan, error)

	// Accept persists the plan and its history entries atomically.
	Accept(ctx context.Context, plan *domain.Plan) error

	GetByWeekStart(ctx context.Context, weekStart time.Time) (*domain.Plan, error)
	Latest(ctx context.Context) (*domain.Plan, error)
	ListWeeks(ctx context.Context) ([]time.Time, error)
}

type GroceryService interface {
	// ForPlan aggregates groceries for an in-memory plan.
	ForPlan(ctx context.Context, plan *domain.Plan, cfg domain.WeekConfig) ([]domain.GroceryItem, error)

	// ForWeek aggregates groceries for a previously accepted plan.
	ForWeek(ctx context.Context, weekStart time.Time, cfg domain.WeekConfig) ([]domain.GroceryItem, error)
}

// ImportResult holds the outcome of a recipe library import.
type ImportResult struct {
	Imported int
	Names    []string
}

type RecipeService interface {
	Import(ctx context.Context, path string) (*ImportResult, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Get(ctx context.Context, id string) (domain.Recipe, error)
	Delete(ctx context.Context, id string) error
}

type HistoryService interface {
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}
