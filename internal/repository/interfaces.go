// Package repository persists recipes, usage history and accepted
// plans in SQLite. Repositories take a db.DBTX so the same code runs
// against the shared connection or inside a transaction.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type RecipeRepo interface {
	Upsert(ctx context.Context, r domain.Recipe) error
	GetByID(ctx context.Context, id string) (domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Delete(ctx context.Context, id string) error
}

type HistoryRepo interface {
	Append(ctx context.Context, entries []domain.HistoryEntry) error
	ListAll(ctx context.Context) ([]domain.HistoryEntry, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error)
	DeleteAll(ctx context.Context) error
}

type PlanRepo interface {
	Save(ctx context.Context, plan *domain.Plan) error
	GetByWeekStart(ctx context.Context, weekStart time.Time) (*domain.Plan, error)
	Latest(ctx context.Context) (*domain.Plan, error)
	ListWeeks(ctx context.Context) ([]time.Time, error)
}
