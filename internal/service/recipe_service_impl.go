package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/importer"
	"github.com/mealweek/mealweek/internal/repository"
)

type recipeService struct {
	recipes  repository.RecipeRepo
	observer UseCaseObserver
}

func NewRecipeService(recipes repository.RecipeRepo, observers ...UseCaseObserver) RecipeService {
	return &recipeService{recipes: recipes, observer: useCaseObserverOrNoop(observers)}
}

func (s *recipeService) Import(ctx context.Context, path string) (result *ImportResult, err error) {
	start := time.Now()
	defer func() {
		fields := map[string]any{"path": path}
		if result != nil {
			fields["imported"] = result.Imported
		}
		observe(ctx, s.observer, "recipe_import", start, err, fields)
	}()

	raw, err := importer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading recipe file: %w", err)
	}

	if errs := importer.Validate(raw); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result = &ImportResult{}
	for _, recipe := range importer.ToDomain(raw) {
		if err := s.recipes.Upsert(ctx, recipe); err != nil {
			return nil, fmt.Errorf("storing recipe %q: %w", recipe.Name, err)
		}
		result.Imported++
		result.Names = append(result.Names, recipe.Name)
	}
	return result, nil
}

func (s *recipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.List(ctx)
}

func (s *recipeService) Get(ctx context.Context, id string) (domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *recipeService) Delete(ctx context.Context, id string) error {
	return s.recipes.Delete(ctx, id)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("recipe validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
