package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/db"
	"github.com/mealweek/mealweek/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(db db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: db}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, entries []domain.HistoryEntry) error {
	query := `INSERT INTO history (date, recipe_id, meal) VALUES (?, ?, ?)`
	for _, e := range entries {
		_, err := r.db.ExecContext(ctx, query,
			e.Date.Format(dateLayout),
			e.RecipeID,
			string(e.Meal),
		)
		if err != nil {
			return fmt.Errorf("appending history entry: %w", err)
		}
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	query := `SELECT date, recipe_id, meal FROM history ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()
	return scanHistoryEntries(rows)
}

func (r *SQLiteHistoryRepo) ListSince(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error) {
	query := `SELECT date, recipe_id, meal FROM history WHERE date >= ? ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, since.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing history since %s: %w", since.Format(dateLayout), err)
	}
	defer rows.Close()
	return scanHistoryEntries(rows)
}

func (r *SQLiteHistoryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func scanHistoryEntries(rows *sql.Rows) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	for rows.Next() {
		var dateStr, recipeID, meal string
		if err := rows.Scan(&dateStr, &recipeID, &meal); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		date, err := parseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing history date %q: %w", dateStr, err)
		}
		entries = append(entries, domain.HistoryEntry{
			Date:     date,
			RecipeID: recipeID,
			Meal:     domain.MealType(meal),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history entries: %w", err)
	}
	return entries, nil
}
