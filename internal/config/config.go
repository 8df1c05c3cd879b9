// Package config loads week configuration from YAML files and turns
// it into validated in-memory structures. Schema problems are caught
// here, before anything reaches the scheduler.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mealweek/mealweek/internal/domain"
)

const dateLayout = "2006-01-02"

// fileSchema mirrors the YAML document structure.
type fileSchema struct {
	WeekStart             string              `yaml:"week_start"`
	People                int                 `yaml:"people"`
	Meals                 []string            `yaml:"meals"`
	VariabilityWindowDays int                 `yaml:"variability_window_days"`
	Seed                  int64               `yaml:"seed"`
	DailyTimeLimits       map[string]int      `yaml:"daily_time_limits"`
	SkipMeals             map[string][]string `yaml:"skip_meals"`
	SundayPrep            *prepSchema         `yaml:"sunday_prep"`
	Pantry                []string            `yaml:"pantry"`
	PantryFile            string              `yaml:"pantry_file"`
}

type prepSchema struct {
	Enabled    bool `yaml:"enabled"`
	MaxMinutes int  `yaml:"max_minutes"`
}

// Load reads and parses a week config file. A pantry_file reference is
// resolved relative to the config file's directory and merged into the
// inline pantry list, first occurrence winning.
func Load(path string) (domain.WeekConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.WeekConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.WeekConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg, err := convert(raw)
	if err != nil {
		return domain.WeekConfig{}, fmt.Errorf("config %s: %w", path, err)
	}

	if raw.PantryFile != "" {
		pantryPath := raw.PantryFile
		if !filepath.IsAbs(pantryPath) {
			pantryPath = filepath.Join(filepath.Dir(path), pantryPath)
		}
		extra, err := loadPantryFile(pantryPath)
		if err != nil {
			return domain.WeekConfig{}, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Pantry = dedupe(append(cfg.Pantry, extra...))
	}

	return cfg, nil
}

func convert(raw fileSchema) (domain.WeekConfig, error) {
	cfg := domain.WeekConfig{
		People:                raw.People,
		VariabilityWindowDays: raw.VariabilityWindowDays,
		Seed:                  raw.Seed,
		Pantry:                dedupe(raw.Pantry),
	}

	if raw.WeekStart == "" {
		return cfg, fmt.Errorf("week_start is required")
	}
	weekStart, err := time.Parse(dateLayout, raw.WeekStart)
	if err != nil {
		return cfg, fmt.Errorf("week_start: invalid date %q (expected YYYY-MM-DD)", raw.WeekStart)
	}
	cfg.WeekStart = weekStart

	for _, m := range raw.Meals {
		meal, err := domain.ParseMealType(m)
		if err != nil {
			return cfg, fmt.Errorf("meals: %w", err)
		}
		cfg.Meals = append(cfg.Meals, meal)
	}

	if len(raw.DailyTimeLimits) > 0 {
		cfg.DailyTimeLimits = make(map[time.Weekday]int, len(raw.DailyTimeLimits))
		for dayName, limit := range raw.DailyTimeLimits {
			day, err := domain.ParseWeekday(dayName)
			if err != nil {
				return cfg, fmt.Errorf("daily_time_limits: %w", err)
			}
			cfg.DailyTimeLimits[day] = limit
		}
	}

	if len(raw.SkipMeals) > 0 {
		cfg.SkipMeals = make(map[time.Weekday][]domain.MealType, len(raw.SkipMeals))
		for dayName, meals := range raw.SkipMeals {
			day, err := domain.ParseWeekday(dayName)
			if err != nil {
				return cfg, fmt.Errorf("skip_meals: %w", err)
			}
			for _, m := range meals {
				meal, err := domain.ParseMealType(m)
				if err != nil {
					return cfg, fmt.Errorf("skip_meals.%s: %w", dayName, err)
				}
				cfg.SkipMeals[day] = append(cfg.SkipMeals[day], meal)
			}
		}
	}

	if raw.SundayPrep != nil {
		cfg.SundayPrep = domain.PrepConfig{
			Enabled:    raw.SundayPrep.Enabled,
			MaxMinutes: raw.SundayPrep.MaxMinutes,
		}
	}

	return cfg, nil
}

// loadPantryFile reads a plain-text pantry list: one item per line,
// blank lines and #-comments ignored.
func loadPantryFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pantry file: %w", err)
	}
	var items []string
	for _, line := range strings.Split(string(data), "\n") {
		item := strings.TrimSpace(line)
		if item == "" || strings.HasPrefix(item, "#") {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// dedupe removes duplicates case-insensitively, preserving order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
