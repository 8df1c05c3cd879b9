package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mealweek/mealweek/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and reset recipe usage history",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryClearCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded recipe uses, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.History.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(entries))
			return nil
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all usage history",
		Long: `Clear wipes the usage history, so the next plan treats every recipe
as never used. The variability window has nothing to avoid until new
plans are accepted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to clear history without --force in non-interactive mode")
				}
				var confirmed bool
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Delete all usage history?").
							Description("Repeat avoidance starts from scratch.").
							Value(&confirmed),
					),
				).WithTheme(mealweekHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(formatter.Dim("Aborted."))
					return nil
				}
			}

			if err := app.History.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✓ History cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}
