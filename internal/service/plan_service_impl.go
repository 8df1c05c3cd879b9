package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/db"
	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/repository"
	"github.com/mealweek/mealweek/internal/scheduler"
)

type planService struct {
	recipes  repository.RecipeRepo
	history  repository.HistoryRepo
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewPlanService(
	recipes repository.RecipeRepo,
	history repository.HistoryRepo,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		recipes:  recipes,
		history:  history,
		plans:    plans,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *planService) Generate(ctx context.Context, cfg domain.WeekConfig) (plan *domain.Plan, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "plan_generate", start, err, map[string]any{
			"week_start": cfg.WeekStart.Format("2006-01-02"),
			"seed":       cfg.Seed,
		})
	}()

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipe library: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("recipe library is empty: import recipes first")
	}

	history, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	plan, err = scheduler.BuildPlan(domain.NewLibrary(recipes), history, cfg)
	if err != nil {
		return nil, err
	}
	plan.GeneratedAt = s.now().UTC().Truncate(time.Second)
	return plan, nil
}

// Accept writes the plan row and its history entries in one
// transaction, so a failed accept leaves neither behind.
func (s *planService) Accept(ctx context.Context, plan *domain.Plan) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "plan_accept", start, err, map[string]any{
			"week_start": plan.WeekStart.Format("2006-01-02"),
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePlanRepo(tx).Save(ctx, plan); err != nil {
			return err
		}
		return repository.NewSQLiteHistoryRepo(tx).Append(ctx, plan.HistoryEntries())
	})
}

func (s *planService) GetByWeekStart(ctx context.Context, weekStart time.Time) (*domain.Plan, error) {
	return s.plans.GetByWeekStart(ctx, weekStart)
}

func (s *planService) Latest(ctx context.Context) (*domain.Plan, error) {
	return s.plans.Latest(ctx)
}

func (s *planService) ListWeeks(ctx context.Context) ([]time.Time, error) {
	return s.plans.ListWeeks(ctx)
}
