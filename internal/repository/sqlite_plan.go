package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/db"
	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/export"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Plans
// are stored as their JSON artifact plus indexed metadata columns, so
// a stored plan re-exports byte-identically.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, plan *domain.Plan) error {
	payload, err := export.MarshalPlan(plan, plan.GeneratedAt)
	if err != nil {
		return fmt.Errorf("encoding plan payload: %w", err)
	}

	query := `INSERT INTO plans (week_start, seed, generated_at, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (week_start) DO UPDATE SET
			seed = excluded.seed,
			generated_at = excluded.generated_at,
			payload = excluded.payload`
	_, err = r.db.ExecContext(ctx, query,
		plan.WeekStart.Format(dateLayout),
		plan.Seed,
		plan.GeneratedAt.UTC().Format(time.RFC3339),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByWeekStart(ctx context.Context, weekStart time.Time) (*domain.Plan, error) {
	query := `SELECT generated_at, payload FROM plans WHERE week_start = ?`
	row := r.db.QueryRowContext(ctx, query, weekStart.Format(dateLayout))
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) Latest(ctx context.Context) (*domain.Plan, error) {
	query := `SELECT generated_at, payload FROM plans ORDER BY week_start DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) ListWeeks(ctx context.Context) ([]time.Time, error) {
	query := `SELECT week_start FROM plans ORDER BY week_start`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plan weeks: %w", err)
	}
	defer rows.Close()

	var weeks []time.Time
	for rows.Next() {
		var weekStr string
		if err := rows.Scan(&weekStr); err != nil {
			return nil, fmt.Errorf("scanning plan week: %w", err)
		}
		week, err := parseDate(weekStr)
		if err != nil {
			return nil, fmt.Errorf("parsing plan week %q: %w", weekStr, err)
		}
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan weeks: %w", err)
	}
	return weeks, nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var generatedAtStr, payload string
	if err := row.Scan(&generatedAtStr, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	plan, err := export.UnmarshalPlan([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("decoding plan payload: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, generatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing plan generated_at: %w", err)
	}
	plan.GeneratedAt = generatedAt
	return plan, nil
}
