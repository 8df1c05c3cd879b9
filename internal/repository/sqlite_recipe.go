package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mealweek/mealweek/internal/db"
	"github.com/mealweek/mealweek/internal/domain"
)

// recipeColumns is the canonical SELECT column list for recipes.
const recipeColumns = `id, name, meals, tags, prep_time_min, cook_time_min,
		servings_per_recipe, yield_count, yield_meal, ingredients`

// ingredientRow is the JSON shape one ingredient takes in the
// ingredients column.
type ingredientRow struct {
	Item     string  `json:"item"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
}

// SQLiteRecipeRepo implements RecipeRepo using a SQLite database.
type SQLiteRecipeRepo struct {
	db db.DBTX
}

// NewSQLiteRecipeRepo creates a new SQLiteRecipeRepo.
func NewSQLiteRecipeRepo(db db.DBTX) *SQLiteRecipeRepo {
	return &SQLiteRecipeRepo{db: db}
}

func (r *SQLiteRecipeRepo) Upsert(ctx context.Context, recipe domain.Recipe) error {
	meals, tags, ingredients, err := encodeRecipeColumns(recipe)
	if err != nil {
		return err
	}

	var yieldCount interface{}
	var yieldMeal interface{}
	if recipe.Yield != nil {
		yieldCount = recipe.Yield.Count
		yieldMeal = string(recipe.Yield.Meal)
	}

	now := nowUTC()
	query := `INSERT INTO recipes (id, name, meals, tags, prep_time_min, cook_time_min,
		servings_per_recipe, yield_count, yield_meal, ingredients, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			meals = excluded.meals,
			tags = excluded.tags,
			prep_time_min = excluded.prep_time_min,
			cook_time_min = excluded.cook_time_min,
			servings_per_recipe = excluded.servings_per_recipe,
			yield_count = excluded.yield_count,
			yield_meal = excluded.yield_meal,
			ingredients = excluded.ingredients,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		recipe.ID,
		recipe.Name,
		meals,
		tags,
		recipe.PrepTimeMin,
		recipe.CookTimeMin,
		recipe.ServingsPerRecipe,
		yieldCount,
		yieldMeal,
		ingredients,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) GetByID(ctx context.Context, id string) (domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	recipe, err := scanRecipe(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Recipe{}, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
		}
		return domain.Recipe{}, err
	}
	return recipe, nil
}

func (r *SQLiteRecipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return recipes, nil
}

func (r *SQLiteRecipeRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM recipes WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	return nil
}

// encodeRecipeColumns marshals the slice-valued recipe fields into
// their JSON column forms.
func encodeRecipeColumns(recipe domain.Recipe) (meals, tags, ingredients string, err error) {
	mealStrs := make([]string, len(recipe.Meals))
	for i, m := range recipe.Meals {
		mealStrs[i] = string(m)
	}
	mealsJSON, err := json.Marshal(mealStrs)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling recipe meals: %w", err)
	}

	tagList := recipe.Tags
	if tagList == nil {
		tagList = []string{}
	}
	tagsJSON, err := json.Marshal(tagList)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling recipe tags: %w", err)
	}

	ingRows := make([]ingredientRow, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ingRows[i] = ingredientRow{Item: ing.Item, Qty: ing.Qty, Unit: ing.Unit, Category: ing.Category}
	}
	ingredientsJSON, err := json.Marshal(ingRows)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling recipe ingredients: %w", err)
	}

	return string(mealsJSON), string(tagsJSON), string(ingredientsJSON), nil
}

// scanRecipe decodes one recipes row via the given scan function, so
// *sql.Row and *sql.Rows share a single path.
func scanRecipe(scan func(dest ...any) error) (domain.Recipe, error) {
	var recipe domain.Recipe
	var mealsJSON, tagsJSON, ingredientsJSON string
	var yieldCount sql.NullInt64
	var yieldMeal sql.NullString

	err := scan(
		&recipe.ID, &recipe.Name, &mealsJSON, &tagsJSON,
		&recipe.PrepTimeMin, &recipe.CookTimeMin, &recipe.ServingsPerRecipe,
		&yieldCount, &yieldMeal, &ingredientsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Recipe{}, err
		}
		return domain.Recipe{}, fmt.Errorf("scanning recipe: %w", err)
	}

	var mealStrs []string
	if err := json.Unmarshal([]byte(mealsJSON), &mealStrs); err != nil {
		return domain.Recipe{}, fmt.Errorf("parsing recipe %s meals: %w", recipe.ID, err)
	}
	recipe.Meals = make([]domain.MealType, len(mealStrs))
	for i, m := range mealStrs {
		recipe.Meals[i] = domain.MealType(m)
	}

	if err := json.Unmarshal([]byte(tagsJSON), &recipe.Tags); err != nil {
		return domain.Recipe{}, fmt.Errorf("parsing recipe %s tags: %w", recipe.ID, err)
	}

	var ingRows []ingredientRow
	if err := json.Unmarshal([]byte(ingredientsJSON), &ingRows); err != nil {
		return domain.Recipe{}, fmt.Errorf("parsing recipe %s ingredients: %w", recipe.ID, err)
	}
	recipe.Ingredients = make([]domain.Ingredient, len(ingRows))
	for i, row := range ingRows {
		recipe.Ingredients[i] = domain.Ingredient{Item: row.Item, Qty: row.Qty, Unit: row.Unit, Category: row.Category}
	}

	if yieldCount.Valid {
		recipe.Yield = &domain.Yield{
			Count: int(yieldCount.Int64),
			Meal:  domain.MealType(stringOrEmpty(yieldMeal)),
		}
	}

	return recipe, nil
}
