package importer

import (
	"fmt"

	"github.com/mealweek/mealweek/internal/domain"
)

// Validate checks a batch of imported recipes and returns every
// problem found, so a bad library file reports all its mistakes in one
// pass instead of one per run.
func Validate(recipes []RecipeImport) []error {
	var errs []error
	seenIDs := make(map[string]bool)

	for i, r := range recipes {
		ref := r.ID
		if ref == "" {
			ref = fmt.Sprintf("recipe[%d]", i)
		}

		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", ref))
		}
		if r.ID != "" {
			if seenIDs[r.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate recipe id", ref))
			}
			seenIDs[r.ID] = true
		}

		if len(r.Meals) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one meal type is required", ref))
		}
		for _, m := range r.Meals {
			if _, err := domain.ParseMealType(m); err != nil {
				errs = append(errs, fmt.Errorf("%s: meals: %w", ref, err))
			}
		}

		if r.PrepTimeMin < 0 {
			errs = append(errs, fmt.Errorf("%s: prep_time_min must be non-negative", ref))
		}
		if r.CookTimeMin < 0 {
			errs = append(errs, fmt.Errorf("%s: cook_time_min must be non-negative", ref))
		}
		if r.ServingsPerRecipe < 0 {
			errs = append(errs, fmt.Errorf("%s: servings_per_recipe must be non-negative", ref))
		}

		if r.Yield != nil {
			if r.Yield.Count <= 0 {
				errs = append(errs, fmt.Errorf("%s: yield.count must be positive", ref))
			}
			if _, err := domain.ParseMealType(r.Yield.Meal); err != nil {
				errs = append(errs, fmt.Errorf("%s: yield: %w", ref, err))
			}
		}

		for j, ing := range r.Ingredients {
			if ing.Item == "" {
				errs = append(errs, fmt.Errorf("%s: ingredients[%d]: item is required", ref, j))
			}
			if ing.Qty < 0 {
				errs = append(errs, fmt.Errorf("%s: ingredients[%d]: qty must be non-negative", ref, j))
			}
		}
	}

	return errs
}
