// Package importer reads recipe library files into validated domain
// recipes. Loaders own all schema validation: the scheduler only ever
// sees well-formed structures.
package importer

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RecipeImport is the JSON schema for one recipe file entry.
type RecipeImport struct {
	ID                string             `json:"id,omitempty"`
	Name              string             `json:"name"`
	Meals             []string           `json:"meals"`
	Tags              []string           `json:"tags,omitempty"`
	PrepTimeMin       int                `json:"prep_time_min"`
	CookTimeMin       int                `json:"cook_time_min"`
	ServingsPerRecipe float64            `json:"servings_per_recipe,omitempty"`
	Yield             *YieldImport       `json:"yield,omitempty"`
	Ingredients       []IngredientImport `json:"ingredients"`
}

// YieldImport marks a meal-prep recipe and what its portions replace.
type YieldImport struct {
	Count int    `json:"count"`
	Meal  string `json:"meal"`
}

// IngredientImport is one grocery requirement in the import file.
type IngredientImport struct {
	Item     string  `json:"item"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Load reads recipes from a JSON file or from every *.json file under
// a directory, in sorted path order. A file may hold a single recipe
// object or an array of them.
func Load(path string) ([]RecipeImport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipes %s: %w", path, err)
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".json") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning recipe directory %s: %w", path, err)
	}
	sort.Strings(files)

	var recipes []RecipeImport
	for _, file := range files {
		batch, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, batch...)
	}
	return recipes, nil
}

func loadFile(path string) ([]RecipeImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var recipes []RecipeImport
		if err := json.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("parsing recipe file %s: %w", path, err)
		}
		return recipes, nil
	}

	var recipe RecipeImport
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("parsing recipe file %s: %w", path, err)
	}
	return []RecipeImport{recipe}, nil
}
