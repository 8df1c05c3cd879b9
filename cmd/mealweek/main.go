package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mealweek/mealweek/internal/cli"
	"github.com/mealweek/mealweek/internal/db"
	"github.com/mealweek/mealweek/internal/repository"
	"github.com/mealweek/mealweek/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.mealweek/mealweek.db
	dbPath := os.Getenv("MEALWEEK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mealweek", "mealweek.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	recipeRepo := repository.NewSQLiteRecipeRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("MEALWEEK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Plans:     service.NewPlanService(recipeRepo, historyRepo, planRepo, uow, observers...),
		Groceries: service.NewGroceryService(recipeRepo, planRepo),
		Recipes:   service.NewRecipeService(recipeRepo, observers...),
		History:   service.NewHistoryService(historyRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
