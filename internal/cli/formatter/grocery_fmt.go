package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mealweek/mealweek/internal/domain"
)

// FormatGroceries renders the aggregated grocery list as a table.
// Items arrive sorted by category, so the category cell is only shown
// on its first row.
func FormatGroceries(items []domain.GroceryItem) string {
	if len(items) == 0 {
		return Dim("Nothing to buy this week.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Grocery list (%d items)", len(items))))
	b.WriteString("\n\n")

	headers := []string{"Category", "Item", "Quantity", "Used by"}
	var rows [][]string
	lastCategory := ""
	for _, item := range items {
		category := ""
		if item.Category != lastCategory {
			category = StyleYellow.Render(item.Category)
			lastCategory = item.Category
		}
		rows = append(rows, []string{
			category,
			item.Item,
			quantityCell(item),
			Dim(strings.Join(item.Sources, ", ")),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func quantityCell(item domain.GroceryItem) string {
	qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	if item.Unit == "" {
		return qty
	}
	return qty + " " + item.Unit
}
