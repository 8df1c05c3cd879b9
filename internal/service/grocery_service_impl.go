package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/grocery"
	"github.com/mealweek/mealweek/internal/repository"
)

type groceryService struct {
	recipes repository.RecipeRepo
	plans   repository.PlanRepo
}

func NewGroceryService(recipes repository.RecipeRepo, plans repository.PlanRepo) GroceryService {
	return &groceryService{recipes: recipes, plans: plans}
}

func (s *groceryService) ForPlan(ctx context.Context, plan *domain.Plan, cfg domain.WeekConfig) ([]domain.GroceryItem, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipe library: %w", err)
	}
	return grocery.Aggregate(plan, domain.NewLibrary(recipes), cfg)
}

func (s *groceryService) ForWeek(ctx context.Context, weekStart time.Time, cfg domain.WeekConfig) ([]domain.GroceryItem, error) {
	plan, err := s.plans.GetByWeekStart(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("loading plan for week %s: %w", weekStart.Format("2006-01-02"), err)
	}
	return s.ForPlan(ctx, plan, cfg)
}
