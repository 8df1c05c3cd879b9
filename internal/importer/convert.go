package importer

import (
	"github.com/google/uuid"

	"github.com/mealweek/mealweek/internal/domain"
)

// defaultCategory groups ingredients that declare none.
const defaultCategory = "uncategorized"

// ToDomain converts validated imports into domain recipes. Recipes
// without an explicit ID are assigned a generated one. Call Validate
// first; ToDomain assumes meal type strings already parse.
func ToDomain(recipes []RecipeImport) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, convertRecipe(r))
	}
	return out
}

func convertRecipe(r RecipeImport) domain.Recipe {
	rec := domain.Recipe{
		ID:                r.ID,
		Name:              r.Name,
		Tags:              r.Tags,
		PrepTimeMin:       r.PrepTimeMin,
		CookTimeMin:       r.CookTimeMin,
		ServingsPerRecipe: r.ServingsPerRecipe,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ServingsPerRecipe == 0 {
		rec.ServingsPerRecipe = 1
	}

	for _, m := range r.Meals {
		meal, err := domain.ParseMealType(m)
		if err != nil {
			continue
		}
		rec.Meals = append(rec.Meals, meal)
	}

	if r.Yield != nil {
		meal, err := domain.ParseMealType(r.Yield.Meal)
		if err == nil {
			rec.Yield = &domain.Yield{Count: r.Yield.Count, Meal: meal}
		}
	}

	for _, ing := range r.Ingredients {
		category := ing.Category
		if category == "" {
			category = defaultCategory
		}
		rec.Ingredients = append(rec.Ingredients, domain.Ingredient{
			Item:     ing.Item,
			Qty:      ing.Qty,
			Unit:     ing.Unit,
			Category: category,
		})
	}

	return rec
}
