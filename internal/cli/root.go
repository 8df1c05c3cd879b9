// Package cli wires the cobra command tree that fronts the planner
// services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mealweek/mealweek/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans     service.PlanService
	Groceries service.GroceryService
	Recipes   service.RecipeService
	History   service.HistoryService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// flows (plan review, destructive confirmations) are skipped when
	// it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "mealweek" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mealweek",
		Short: "Weekly meal planner and grocery list builder",
		Long: `mealweek fills a week of meal slots from your recipe library, honoring
per-day cook-time ceilings, a repeat-avoidance window and Sunday meal
prep, then aggregates the week into one grocery list.`,
	}

	root.AddCommand(
		newPlanCmd(app),
		newGroceriesCmd(app),
		newRecipeCmd(app),
		newHistoryCmd(app),
	)

	return root
}
