package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pastaJSON = `{
  "id": "pasta",
  "name": "Pasta",
  "meals": ["dinner"],
  "prep_time_min": 10,
  "cook_time_min": 20,
  "servings_per_recipe": 2,
  "ingredients": [
    {"item": "pasta", "qty": 200, "unit": "g", "category": "grains"}
  ]
}`

func writeRecipeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSingleObjectFile(t *testing.T) {
	path := writeRecipeFile(t, t.TempDir(), "pasta.json", pastaJSON)

	recipes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pasta", recipes[0].Name)
}

func TestLoadArrayFile(t *testing.T) {
	content := `[` + pastaJSON + `, {"id": "toast", "name": "Toast", "meals": ["breakfast"], "ingredients": []}]`
	path := writeRecipeFile(t, t.TempDir(), "all.json", content)

	recipes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "toast", recipes[1].ID)
}

func TestLoadDirectorySortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeRecipeFile(t, dir, "b.json", `{"id": "second", "name": "Second", "meals": ["lunch"], "ingredients": []}`)
	writeRecipeFile(t, dir, "a.json", `{"id": "first", "name": "First", "meals": ["lunch"], "ingredients": []}`)
	writeRecipeFile(t, dir, "notes.txt", "not a recipe")

	recipes, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "first", recipes[0].ID)
	assert.Equal(t, "second", recipes[1].ID)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeRecipeFile(t, t.TempDir(), "bad.json", `{"id": "x",`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing recipe file")
}

func TestValidateCollectsAllProblems(t *testing.T) {
	recipes := []RecipeImport{
		{ID: "dup", Name: "One", Meals: []string{"dinner"}},
		{ID: "dup", Name: "Two", Meals: []string{"supper"}},
		{
			Name:        "",
			Meals:       nil,
			PrepTimeMin: -5,
			Yield:       &YieldImport{Count: 0, Meal: "lunch"},
			Ingredients: []IngredientImport{{Item: "", Qty: -1}},
		},
	}

	errs := Validate(recipes)
	require.NotEmpty(t, errs)

	joined := ""
	for _, err := range errs {
		joined += err.Error() + "\n"
	}
	assert.Contains(t, joined, "duplicate recipe id")
	assert.Contains(t, joined, "unknown meal type")
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, "at least one meal type")
	assert.Contains(t, joined, "prep_time_min must be non-negative")
	assert.Contains(t, joined, "yield.count must be positive")
	assert.Contains(t, joined, "item is required")
	assert.Contains(t, joined, "qty must be non-negative")
}

func TestValidateAcceptsGoodBatch(t *testing.T) {
	recipes := []RecipeImport{
		{
			ID:    "stew",
			Name:  "Stew",
			Meals: []string{"dinner"},
			Yield: &YieldImport{Count: 4, Meal: "lunch"},
			Ingredients: []IngredientImport{
				{Item: "beef", Qty: 500, Unit: "g", Category: "meat"},
			},
		},
	}
	assert.Empty(t, Validate(recipes))
}

func TestToDomainDefaults(t *testing.T) {
	recipes := ToDomain([]RecipeImport{
		{
			Name:        "Mystery",
			Meals:       []string{"Snack"},
			Ingredients: []IngredientImport{{Item: "apple", Qty: 1}},
		},
	})

	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.NotEmpty(t, r.ID, "missing id gets generated")
	assert.Equal(t, []domain.MealType{domain.MealSnack}, r.Meals)
	assert.Equal(t, 1.0, r.ServingsPerRecipe)
	assert.Equal(t, "uncategorized", r.Ingredients[0].Category)
	assert.NoError(t, r.Validate())
}

func TestToDomainYield(t *testing.T) {
	recipes := ToDomain([]RecipeImport{
		{
			ID:    "chili",
			Name:  "Chili",
			Meals: []string{"dinner"},
			Yield: &YieldImport{Count: 4, Meal: "lunch"},
		},
	})

	require.Len(t, recipes, 1)
	require.NotNil(t, recipes[0].Yield)
	assert.Equal(t, 4, recipes[0].Yield.Count)
	assert.Equal(t, domain.MealLunch, recipes[0].Yield.Meal)
	assert.True(t, recipes[0].IsPrep())
}
