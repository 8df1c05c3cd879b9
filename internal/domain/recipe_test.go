package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeValidate(t *testing.T) {
	base := Recipe{
		ID:          "oatmeal",
		Name:        "Oatmeal",
		Meals:       []MealType{MealBreakfast},
		PrepTimeMin: 5,
		CookTimeMin: 10,
	}

	tests := []struct {
		name    string
		mutate  func(*Recipe)
		wantErr string
	}{
		{name: "valid", mutate: func(r *Recipe) {}},
		{
			name:    "missing id",
			mutate:  func(r *Recipe) { r.ID = "" },
			wantErr: "missing id",
		},
		{
			name:    "no meal types",
			mutate:  func(r *Recipe) { r.Meals = nil },
			wantErr: "no eligible meal types",
		},
		{
			name:    "unknown meal type",
			mutate:  func(r *Recipe) { r.Meals = []MealType{"brunch"} },
			wantErr: "unknown meal type",
		},
		{
			name:    "negative cook time",
			mutate:  func(r *Recipe) { r.CookTimeMin = -1 },
			wantErr: "negative prep or cook time",
		},
		{
			name:    "negative yield",
			mutate:  func(r *Recipe) { r.Yield = &Yield{Count: -2, Meal: MealLunch} },
			wantErr: "negative yield count",
		},
		{
			name:    "yield with bad meal",
			mutate:  func(r *Recipe) { r.Yield = &Yield{Count: 4, Meal: "tea"} },
			wantErr: "yield has unknown meal type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRecipeEligibleFor(t *testing.T) {
	r := Recipe{ID: "soup", Meals: []MealType{MealLunch, MealDinner}}

	assert.True(t, r.EligibleFor(MealLunch))
	assert.True(t, r.EligibleFor(MealDinner))
	assert.False(t, r.EligibleFor(MealBreakfast))
}

func TestLibraryDedupesKeepingFirst(t *testing.T) {
	lib := NewLibrary([]Recipe{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Other"},
		{ID: "a", Name: "Duplicate"},
	})

	require.Equal(t, 2, lib.Len())
	got, ok := lib.Get("a")
	require.True(t, ok)
	assert.Equal(t, "First", got.Name)
}

func TestParseMealTypeNormalizes(t *testing.T) {
	m, err := ParseMealType(" Dinner ")
	require.NoError(t, err)
	assert.Equal(t, MealDinner, m)

	_, err = ParseMealType("supper")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("wednesday")
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", d.String())

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}
