package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mealweek/mealweek/internal/domain"
)

// PlanMarkdown renders the weekly plan as a Markdown document, one
// section per day in week order.
func PlanMarkdown(plan *domain.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Meal Plan — Week of %s\n\n", plan.WeekStart.Format(dateLayout))

	if plan.Prep != nil {
		b.WriteString("## Sunday Meal Prep\n")
		fmt.Fprintf(&b, "- **%s** (%d min) yields %d %s portions\n\n",
			plan.Prep.RecipeName, plan.Prep.TotalTimeMin, plan.Prep.Yield.Count, plan.Prep.Yield.Meal)
	}

	for i, day := range domain.WeekDays {
		date := plan.WeekStart.AddDate(0, 0, i)
		fmt.Fprintf(&b, "## %s (%s)\n", day, date.Format(dateLayout))
		for _, slot := range plan.SlotsFor(day) {
			label := titleCase(string(slot.Meal))
			switch slot.Outcome {
			case domain.SlotAssigned:
				fmt.Fprintf(&b, "- **%s:** %s (%d min total)\n", label, slot.RecipeName, slot.TotalTimeMin)
			case domain.SlotReuse:
				fmt.Fprintf(&b, "- **%s:** %s (prep reuse)\n", label, slot.RecipeName)
			default:
				fmt.Fprintf(&b, "- **%s:** (skipped)\n", label)
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// GroceryMarkdown renders the aggregated list grouped by category.
func GroceryMarkdown(items []domain.GroceryItem) string {
	byCategory := make(map[string][]domain.GroceryItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("# Grocery List\n\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "## %s\n", titleCase(category))
		group := byCategory[category]
		sort.Slice(group, func(i, j int) bool { return group[i].Item < group[j].Item })
		for _, item := range group {
			line := fmt.Sprintf("- %s — %s", item.Item, formatQuantity(item.Quantity))
			if item.Unit != "" {
				line += " " + item.Unit
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// formatQuantity trims trailing zeros so "2.00" renders as "2" and
// "1.50" as "1.5".
func formatQuantity(q float64) string {
	s := strconv.FormatFloat(q, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
