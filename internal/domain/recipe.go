package domain

import (
	"fmt"
	"strings"
)

// Ingredient is a single grocery requirement of a recipe.
type Ingredient struct {
	Item     string
	Qty      float64
	Unit     string
	Category string
}

// NormalizedItem returns the ingredient name in its canonical
// aggregation form: lowercased and whitespace-trimmed.
func (i Ingredient) NormalizedItem() string {
	return strings.ToLower(strings.TrimSpace(i.Item))
}

// Yield describes the reusable portions a meal-prep recipe produces.
type Yield struct {
	Count int
	Meal  MealType
}

// Recipe is a library entry that can be slotted into a weekly plan.
type Recipe struct {
	ID          string
	Name        string
	Meals       []MealType
	Tags        []string
	PrepTimeMin int
	CookTimeMin int

	// ServingsPerRecipe scales ingredient quantities against the
	// configured household size during grocery aggregation.
	ServingsPerRecipe float64

	// Yield is non-nil for meal-prep recipes whose output feeds
	// later slots of Yield.Meal.
	Yield *Yield

	Ingredients []Ingredient
}

// TotalTimeMin is the time the recipe charges against a day's
// cook-time ceiling.
func (r Recipe) TotalTimeMin() int {
	return r.PrepTimeMin + r.CookTimeMin
}

// EligibleFor reports whether the recipe may be assigned to the given
// meal type.
func (r Recipe) EligibleFor(m MealType) bool {
	for _, meal := range r.Meals {
		if meal == m {
			return true
		}
	}
	return false
}

// IsPrep reports whether the recipe can occupy the Sunday prep slot.
func (r Recipe) IsPrep() bool {
	return r.Yield != nil && r.Yield.Count > 0
}

// Validate checks the recipe invariants: an identifier, at least one
// eligible meal type, and non-negative times.
func (r Recipe) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("recipe %q: missing id", r.Name)
	}
	if len(r.Meals) == 0 {
		return fmt.Errorf("recipe %s: no eligible meal types", r.ID)
	}
	for _, m := range r.Meals {
		if !ValidMealTypes[string(m)] {
			return fmt.Errorf("recipe %s: unknown meal type %q", r.ID, m)
		}
	}
	if r.PrepTimeMin < 0 || r.CookTimeMin < 0 {
		return fmt.Errorf("recipe %s: negative prep or cook time", r.ID)
	}
	if r.Yield != nil {
		if r.Yield.Count < 0 {
			return fmt.Errorf("recipe %s: negative yield count", r.ID)
		}
		if r.Yield.Count > 0 && !ValidMealTypes[string(r.Yield.Meal)] {
			return fmt.Errorf("recipe %s: yield has unknown meal type %q", r.ID, r.Yield.Meal)
		}
	}
	return nil
}

// Library is an indexed, read-only recipe catalogue.
type Library struct {
	recipes []Recipe
	byID    map[string]Recipe
}

// NewLibrary builds a Library from a slice of recipes. Order is
// preserved; duplicate IDs keep the first occurrence.
func NewLibrary(recipes []Recipe) *Library {
	lib := &Library{byID: make(map[string]Recipe, len(recipes))}
	for _, r := range recipes {
		if _, ok := lib.byID[r.ID]; ok {
			continue
		}
		lib.byID[r.ID] = r
		lib.recipes = append(lib.recipes, r)
	}
	return lib
}

// All returns the recipes in library order.
func (l *Library) All() []Recipe {
	return l.recipes
}

// Get looks up a recipe by identifier.
func (l *Library) Get(id string) (Recipe, bool) {
	r, ok := l.byID[id]
	return r, ok
}

// Len returns the number of recipes in the library.
func (l *Library) Len() int {
	return len(l.recipes)
}
