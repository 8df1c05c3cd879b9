package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mealweek/mealweek/internal/cli/formatter"
	"github.com/mealweek/mealweek/internal/config"
	"github.com/mealweek/mealweek/internal/domain"
	"github.com/mealweek/mealweek/internal/export"
)

func newGroceriesCmd(app *App) *cobra.Command {
	var configPath string
	var week time.Time
	var weekSet bool
	var planPath string
	var outCSV, outMD string

	cmd := &cobra.Command{
		Use:   "groceries",
		Short: "Build the grocery list for a week's plan",
		Long: `Groceries aggregates every assigned slot of a plan into one shopping
list: quantities scaled to the household, merged per (item, unit),
pantry staples excluded. Reads the latest accepted plan unless --week
or --plan points elsewhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			var items []domain.GroceryItem
			if planPath != "" {
				data, err := os.ReadFile(planPath)
				if err != nil {
					return fmt.Errorf("reading plan file: %w", err)
				}
				plan, err := export.UnmarshalPlan(data)
				if err != nil {
					return err
				}
				items, err = app.Groceries.ForPlan(ctx, plan, cfg)
				if err != nil {
					return err
				}
			} else {
				plan, err := lookupPlan(ctx, app, week, weekSet)
				if err != nil {
					return err
				}
				items, err = app.Groceries.ForPlan(ctx, plan, cfg)
				if err != nil {
					return err
				}
			}

			fmt.Print(formatter.FormatGroceries(items))

			if outCSV != "" {
				csv, err := export.GroceryCSV(items)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outCSV, []byte(csv), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outCSV, err)
				}
				fmt.Println(formatter.Dim("wrote " + outCSV))
			}
			if outMD != "" {
				if err := os.WriteFile(outMD, []byte(export.GroceryMarkdown(items)), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outMD, err)
				}
				fmt.Println(formatter.Dim("wrote " + outMD))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Week config file (YAML)")
	cmd.Flags().Var(newDateValue(&week, &weekSet), "week", "Week start date of an accepted plan (YYYY-MM-DD)")
	cmd.Flags().StringVar(&planPath, "plan", "", "Read the plan from a JSON artifact instead of the database")
	cmd.Flags().StringVar(&outCSV, "out-csv", "", "Write the list as CSV to this path")
	cmd.Flags().StringVar(&outMD, "out-md", "", "Write the list as Markdown to this path")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
