package formatter

import (
	"fmt"
	"strings"

	"github.com/mealweek/mealweek/internal/domain"
)

// FormatPlan renders a weekly plan for the terminal: a header with the
// week start, the Sunday prep banner when present, and one table row
// per (day, meal) slot.
func FormatPlan(plan *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Week of %s", plan.WeekStart.Format("Mon Jan 2, 2006"))))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("seed %d", plan.Seed)))
	b.WriteString("\n\n")

	if plan.Prep != nil {
		b.WriteString(StylePurple.Render("◆ Sunday meal prep: "))
		b.WriteString(Bold(plan.Prep.RecipeName))
		b.WriteString(Dim(fmt.Sprintf("  %d min, yields %d %s portions",
			plan.Prep.TotalTimeMin, plan.Prep.Yield.Count, plan.Prep.Yield.Meal)))
		b.WriteString("\n\n")
	}

	headers := []string{"Day", "Meal", "Recipe", "Time"}
	var rows [][]string
	for _, day := range domain.WeekDays {
		dayCell := day.String()
		for _, slot := range plan.SlotsFor(day) {
			rows = append(rows, planRow(dayCell, slot))
			dayCell = ""
		}
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	cooked, reused, skipped := countOutcomes(plan)
	b.WriteString(Dim(fmt.Sprintf("%d cooked, %d reused, %d skipped", cooked, reused, skipped)))
	b.WriteString("\n")
	return b.String()
}

func planRow(dayCell string, slot domain.PlanSlot) []string {
	meal := string(slot.Meal)
	style := OutcomeStyle(slot.Outcome)
	switch slot.Outcome {
	case domain.SlotAssigned:
		return []string{dayCell, meal, style.Render(slot.RecipeName), fmt.Sprintf("%d min", slot.TotalTimeMin)}
	case domain.SlotReuse:
		return []string{dayCell, meal, style.Render(slot.RecipeName) + " " + OutcomeNote(slot.Outcome), Dim("—")}
	default:
		return []string{dayCell, meal, OutcomeNote(slot.Outcome), Dim("—")}
	}
}

func countOutcomes(plan *domain.Plan) (cooked, reused, skipped int) {
	for _, s := range plan.Slots {
		switch s.Outcome {
		case domain.SlotAssigned:
			cooked++
		case domain.SlotReuse:
			reused++
		case domain.SlotSkipped:
			skipped++
		}
	}
	return
}
