package scheduler

import (
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

// ConfigError identifies one invalid field of a WeekConfig. Config
// errors are fatal: scheduling never starts on an invalid week.
type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid week config: %s: %s", e.Field, e.Reason)
}

// ValidateConfig checks a WeekConfig and returns all problems found.
func ValidateConfig(cfg domain.WeekConfig) []error {
	var errs []error

	if cfg.WeekStart.IsZero() {
		errs = append(errs, ConfigError{Field: "week_start", Reason: "not set"})
	} else if cfg.WeekStart.Weekday() != time.Sunday {
		errs = append(errs, ConfigError{
			Field:  "week_start",
			Reason: fmt.Sprintf("must be a Sunday, got %s", cfg.WeekStart.Weekday()),
		})
	}

	for day, limit := range cfg.DailyTimeLimits {
		if limit < 0 {
			errs = append(errs, ConfigError{
				Field:  "daily_time_limits." + day.String(),
				Reason: fmt.Sprintf("cook-time ceiling must be non-negative, got %d", limit),
			})
		}
	}

	if cfg.VariabilityWindowDays < 0 {
		errs = append(errs, ConfigError{
			Field:  "variability_window_days",
			Reason: fmt.Sprintf("must be non-negative, got %d", cfg.VariabilityWindowDays),
		})
	}

	if cfg.People < 0 {
		errs = append(errs, ConfigError{
			Field:  "people",
			Reason: fmt.Sprintf("must be non-negative, got %d", cfg.People),
		})
	}

	if cfg.SundayPrep.Enabled {
		if cfg.SundayPrep.MaxMinutes <= 0 {
			errs = append(errs, ConfigError{
				Field:  "sunday_prep.max_minutes",
				Reason: "must be positive when prep is enabled",
			})
		} else if cfg.SundayPrep.MaxMinutes > domain.MaxPrepMinutes {
			errs = append(errs, ConfigError{
				Field:  "sunday_prep.max_minutes",
				Reason: fmt.Sprintf("must not exceed %d, got %d", domain.MaxPrepMinutes, cfg.SundayPrep.MaxMinutes),
			})
		}
	}

	return errs
}
