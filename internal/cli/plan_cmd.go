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

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and manage weekly plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanListCmd(app),
	)
	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var configPath string
	var seed int64
	var outMD, outJSON string
	var accept bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan for the configured week",
		Long: `Generate builds a deterministic plan from the stored recipe library:
the same config, library, history and seed always produce the same
week. Re-run with --seed to explore alternatives, then --accept (or
the interactive review) to persist one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			plan, err := app.Plans.Generate(ctx, cfg)
			if err != nil {
				return err
			}

			if !accept && app.interactive() {
				plan, err = runPlanReview(ctx, app, cfg, plan)
				if err != nil {
					return err
				}
				if plan == nil {
					fmt.Println(formatter.Dim("Plan discarded."))
					return nil
				}
				accept = true
			} else {
				fmt.Print(formatter.FormatPlan(plan))
			}

			if err := writePlanArtifacts(plan, outMD, outJSON); err != nil {
				return err
			}

			if accept {
				if err := app.Plans.Accept(ctx, plan); err != nil {
					return fmt.Errorf("accepting plan: %w", err)
				}
				fmt.Println(formatter.StyleGreen.Render("✓ Plan accepted and recorded to history."))
			} else {
				fmt.Println(formatter.Dim("Not accepted. Re-run with --accept to persist."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Week config file (YAML)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Override the configured seed")
	cmd.Flags().StringVar(&outMD, "out-md", "", "Write the plan as Markdown to this path")
	cmd.Flags().StringVar(&outJSON, "out-json", "", "Write the plan as JSON to this path")
	cmd.Flags().BoolVar(&accept, "accept", false, "Persist the plan and its history entries")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var week time.Time
	var weekSet bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an accepted plan (latest by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := lookupPlan(ctx, app, week, weekSet)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&week, &weekSet), "week", "Week start date (YYYY-MM-DD)")
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accepted plan weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := app.Plans.ListWeeks(context.Background())
			if err != nil {
				return err
			}
			if len(weeks) == 0 {
				fmt.Println(formatter.Dim("No plans accepted yet."))
				return nil
			}
			for _, w := range weeks {
				fmt.Println(w.Format("2006-01-02"))
			}
			return nil
		},
	}
}

// lookupPlan resolves --week to a stored plan, falling back to the
// most recently accepted one.
func lookupPlan(ctx context.Context, app *App, week time.Time, weekSet bool) (*domain.Plan, error) {
	if !weekSet {
		return app.Plans.Latest(ctx)
	}
	return app.Plans.GetByWeekStart(ctx, week)
}

func writePlanArtifacts(plan *domain.Plan, outMD, outJSON string) error {
	if outMD != "" {
		if err := os.WriteFile(outMD, []byte(export.PlanMarkdown(plan)), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outMD, err)
		}
		fmt.Println(formatter.Dim("wrote " + outMD))
	}
	if outJSON != "" {
		data, err := export.MarshalPlan(plan, plan.GeneratedAt)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outJSON, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outJSON, err)
		}
		fmt.Println(formatter.Dim("wrote " + outJSON))
	}
	return nil
}
