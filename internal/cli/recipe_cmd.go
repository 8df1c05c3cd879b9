package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealweek/mealweek/internal/cli/formatter"
)

func newRecipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage the recipe library",
	}

	cmd.AddCommand(
		newRecipeImportCmd(app),
		newRecipeListCmd(app),
		newRecipeDeleteCmd(app),
	)
	return cmd
}

func newRecipeImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file-or-dir>",
		Short: "Import recipes from a JSON file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Recipes.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render(
				fmt.Sprintf("✓ Imported %d recipes.", result.Imported)))
			for _, name := range result.Names {
				fmt.Println("  " + name)
			}
			return nil
		},
	}
}

func newRecipeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Recipes.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRecipes(recipes))
			return nil
		},
	}
}

func newRecipeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a recipe from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Recipes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Deleted " + args[0]))
			return nil
		},
	}
}
