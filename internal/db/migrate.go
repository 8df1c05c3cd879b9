package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent statements run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recipes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		meals TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		prep_time_min INTEGER NOT NULL DEFAULT 0,
		cook_time_min INTEGER NOT NULL DEFAULT 0,
		servings_per_recipe REAL NOT NULL DEFAULT 1,
		yield_count INTEGER,
		yield_meal TEXT,
		ingredients TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		recipe_id TEXT NOT NULL,
		meal TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_recipe_date
		ON history (recipe_id, date)`,

	`CREATE TABLE IF NOT EXISTS plans (
		week_start TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		generated_at TEXT NOT NULL,
		payload TEXT NOT NULL
	)`,
}

// Migrate applies the schema. Statements use IF NOT EXISTS so re-runs
// are safe.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
