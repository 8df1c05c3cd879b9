package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/mealweek/mealweek/internal/domain"
)

// GroceryCSV renders the aggregated list as CSV with a header row.
// Quantities print with two decimals; the sources column joins the
// demanding meals with "; ".
func GroceryCSV(items []domain.GroceryItem) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"item", "quantity", "unit", "category", "sources"}); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Item,
			fmt.Sprintf("%.2f", item.Quantity),
			item.Unit,
			item.Category,
			strings.Join(item.Sources, "; "),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("writing csv row for %s: %w", item.Item, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return b.String(), nil
}
