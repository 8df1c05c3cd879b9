// Package export renders finalized plans and grocery lists to the
// flat artifact formats consumers diff across runs: Markdown, JSON and
// CSV. It never touches the filesystem; callers own paths and writes.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mealweek/mealweek/internal/domain"
)

const dateLayout = "2006-01-02"

// planDocument is the stable JSON schema for a plan artifact.
type planDocument struct {
	WeekStartDate string        `json:"week_start_date"`
	GeneratedAt   string        `json:"generated_at,omitempty"`
	Seed          int64         `json:"seed"`
	MealPrep      *prepDocument `json:"meal_prep,omitempty"`
	Days          []dayDocument `json:"days"`
}

type prepDocument struct {
	RecipeID     string `json:"recipe_id"`
	RecipeName   string `json:"recipe_name"`
	TotalTimeMin int    `json:"total_time_min"`
	YieldCount   int    `json:"yield_count"`
	YieldMeal    string `json:"yield_meal"`
}

type dayDocument struct {
	DayName string         `json:"day_name"`
	Date    string         `json:"date"`
	Meals   []mealDocument `json:"meals"`
}

type mealDocument struct {
	MealType     string `json:"meal_type"`
	Outcome      string `json:"outcome"`
	RecipeID     string `json:"recipe_id,omitempty"`
	RecipeName   string `json:"recipe_name,omitempty"`
	TotalTimeMin int    `json:"total_time_min,omitempty"`
}

// MarshalPlan renders the plan as indented JSON with a trailing
// newline. generatedAt is stamped by the caller so the scheduler
// itself stays deterministic; a zero time omits the field.
func MarshalPlan(plan *domain.Plan, generatedAt time.Time) ([]byte, error) {
	doc := planDocument{
		WeekStartDate: plan.WeekStart.Format(dateLayout),
		Seed:          plan.Seed,
	}
	if !generatedAt.IsZero() {
		doc.GeneratedAt = generatedAt.UTC().Format(time.RFC3339)
	}
	if plan.Prep != nil {
		doc.MealPrep = &prepDocument{
			RecipeID:     plan.Prep.RecipeID,
			RecipeName:   plan.Prep.RecipeName,
			TotalTimeMin: plan.Prep.TotalTimeMin,
			YieldCount:   plan.Prep.Yield.Count,
			YieldMeal:    string(plan.Prep.Yield.Meal),
		}
	}

	for i, day := range domain.WeekDays {
		dayDoc := dayDocument{
			DayName: day.String(),
			Date:    plan.WeekStart.AddDate(0, 0, i).Format(dateLayout),
		}
		for _, slot := range plan.SlotsFor(day) {
			dayDoc.Meals = append(dayDoc.Meals, mealDocument{
				MealType:     string(slot.Meal),
				Outcome:      string(slot.Outcome),
				RecipeID:     slot.RecipeID,
				RecipeName:   slot.RecipeName,
				TotalTimeMin: slot.TotalTimeMin,
			})
		}
		doc.Days = append(doc.Days, dayDoc)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling plan: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalPlan reads a plan artifact previously written by
// MarshalPlan back into a domain Plan.
func UnmarshalPlan(data []byte) (*domain.Plan, error) {
	var doc planDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan JSON: %w", err)
	}

	weekStart, err := time.Parse(dateLayout, doc.WeekStartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing plan week_start_date: %w", err)
	}

	plan := &domain.Plan{WeekStart: weekStart, Seed: doc.Seed}
	if doc.MealPrep != nil {
		plan.Prep = &domain.PrepSlot{
			RecipeID:     doc.MealPrep.RecipeID,
			RecipeName:   doc.MealPrep.RecipeName,
			TotalTimeMin: doc.MealPrep.TotalTimeMin,
			Yield: domain.Yield{
				Count: doc.MealPrep.YieldCount,
				Meal:  domain.MealType(doc.MealPrep.YieldMeal),
			},
		}
	}

	for _, dayDoc := range doc.Days {
		date, err := time.Parse(dateLayout, dayDoc.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing plan date %q: %w", dayDoc.Date, err)
		}
		for _, meal := range dayDoc.Meals {
			plan.Slots = append(plan.Slots, domain.PlanSlot{
				Day:          date.Weekday(),
				Date:         date,
				Meal:         domain.MealType(meal.MealType),
				Outcome:      domain.SlotOutcome(meal.Outcome),
				RecipeID:     meal.RecipeID,
				RecipeName:   meal.RecipeName,
				TotalTimeMin: meal.TotalTimeMin,
			})
		}
	}
	return plan, nil
}
