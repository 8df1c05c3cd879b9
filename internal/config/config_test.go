package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "week.yaml", `
week_start: "2026-01-04"
people: 4
meals: [breakfast, lunch, dinner]
variability_window_days: 10
seed: 99
daily_time_limits:
  Monday: 45
  saturday: 120
skip_meals:
  Tuesday: [lunch]
sunday_prep:
  enabled: true
  max_minutes: 90
pantry: [Salt, pepper, salt]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), cfg.WeekStart)
	assert.Equal(t, 4, cfg.People)
	assert.Equal(t, []domain.MealType{domain.MealBreakfast, domain.MealLunch, domain.MealDinner}, cfg.Meals)
	assert.Equal(t, 10, cfg.VariabilityWindowDays)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 45, cfg.DailyTimeLimits[time.Monday])
	assert.Equal(t, 120, cfg.DailyTimeLimits[time.Saturday])
	assert.Equal(t, []domain.MealType{domain.MealLunch}, cfg.SkipMeals[time.Tuesday])
	assert.True(t, cfg.SundayPrep.Enabled)
	assert.Equal(t, 90, cfg.SundayPrep.MaxMinutes)
	assert.Equal(t, []string{"Salt", "pepper"}, cfg.Pantry, "pantry dedupes case-insensitively")
}

func TestLoadMergesPantryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pantry.txt", "# staples\nolive oil\n\nsalt\nflour\n")
	path := writeFile(t, dir, "week.yaml", `
week_start: "2026-01-04"
pantry: [salt]
pantry_file: pantry.txt
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"salt", "olive oil", "flour"}, cfg.Pantry)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "missing week start", content: "people: 2\n", wantErr: "week_start is required"},
		{name: "bad date", content: "week_start: \"Jan 4\"\n", wantErr: "invalid date"},
		{name: "bad meal", content: "week_start: \"2026-01-04\"\nmeals: [brunch]\n", wantErr: "unknown meal type"},
		{name: "bad day", content: "week_start: \"2026-01-04\"\ndaily_time_limits:\n  Funday: 30\n", wantErr: "unknown day name"},
		{name: "not yaml", content: "week_start: [unclosed\n", wantErr: "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
