package formatter

import (
	"fmt"
	"strings"

	"github.com/mealweek/mealweek/internal/domain"
)

// FormatRecipes renders the recipe library as a table.
func FormatRecipes(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return Dim("No recipes imported yet.") + "\n"
	}

	headers := []string{"ID", "Name", "Meals", "Time", "Yield", "Tags"}
	var rows [][]string
	for _, r := range recipes {
		meals := make([]string, len(r.Meals))
		for i, m := range r.Meals {
			meals[i] = string(m)
		}

		yield := Dim("—")
		if r.IsPrep() {
			yield = StylePurple.Render(fmt.Sprintf("%d %s", r.Yield.Count, r.Yield.Meal))
		}

		rows = append(rows, []string{
			Dim(r.ID),
			Bold(r.Name),
			strings.Join(meals, ","),
			fmt.Sprintf("%d min", r.TotalTimeMin()),
			yield,
			Dim(strings.Join(r.Tags, ",")),
		})
	}
	return RenderTable(headers, rows)
}

// FormatHistory renders usage history entries, oldest first.
func FormatHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return Dim("No history recorded.") + "\n"
	}

	headers := []string{"Date", "Meal", "Recipe"}
	var rows [][]string
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			string(e.Meal),
			e.RecipeID,
		})
	}
	return RenderTable(headers, rows)
}
