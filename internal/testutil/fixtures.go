package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealweek/mealweek/internal/domain"
)

// Recipe options
type RecipeOption func(*domain.Recipe)

func WithMeals(meals ...domain.MealType) RecipeOption {
	return func(r *domain.Recipe) {
		r.Meals = meals
	}
}

func WithTimes(prepMin, cookMin int) RecipeOption {
	return func(r *domain.Recipe) {
		r.PrepTimeMin = prepMin
		r.CookTimeMin = cookMin
	}
}

func WithTags(tags ...string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Tags = tags
	}
}

func WithServings(s float64) RecipeOption {
	return func(r *domain.Recipe) {
		r.ServingsPerRecipe = s
	}
}

func WithYield(count int, meal domain.MealType) RecipeOption {
	return func(r *domain.Recipe) {
		r.Yield = &domain.Yield{Count: count, Meal: meal}
	}
}

func WithIngredients(ingredients ...domain.Ingredient) RecipeOption {
	return func(r *domain.Recipe) {
		r.Ingredients = ingredients
	}
}

// NewTestRecipe builds a dinner recipe with sane defaults. Pass
// options to override meals, times, yield or ingredients.
func NewTestRecipe(name string, opts ...RecipeOption) domain.Recipe {
	r := domain.Recipe{
		ID:                uuid.New().String(),
		Name:              name,
		Meals:             []domain.MealType{domain.MealDinner},
		PrepTimeMin:       10,
		CookTimeMin:       20,
		ServingsPerRecipe: 2,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WeekConfig options
type ConfigOption func(*domain.WeekConfig)

func WithMealTypes(meals ...domain.MealType) ConfigOption {
	return func(c *domain.WeekConfig) {
		c.Meals = meals
	}
}

func WithWindow(days int) ConfigOption {
	return func(c *domain.WeekConfig) {
		c.VariabilityWindowDays = days
	}
}

func WithSeed(seed int64) ConfigOption {
	return func(c *domain.WeekConfig) {
		c.Seed = seed
	}
}

func WithDailyLimit(day time.Weekday, minutes int) ConfigOption {
	return func(c *domain.WeekConfig) {
		if c.DailyTimeLimits == nil {
			c.DailyTimeLimits = make(map[time.Weekday]int)
		}
		c.DailyTimeLimits[day] = minutes
	}
}

func WithSundayPrep(maxMinutes int) ConfigOption {
	return func(c *domain.WeekConfig) {
		c.SundayPrep = domain.PrepConfig{Enabled: true, MaxMinutes: maxMinutes}
	}
}

// NewTestConfig builds a dinner-only week config starting on the given
// Sunday, window disabled, seed 1.
func NewTestConfig(weekStart time.Time, opts ...ConfigOption) domain.WeekConfig {
	c := domain.WeekConfig{
		WeekStart: weekStart,
		People:    2,
		Meals:     []domain.MealType{domain.MealDinner},
		Seed:      1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
