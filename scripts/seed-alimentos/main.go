package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alimenta/alimenta/internal/model"
	"github.com/alimenta/alimenta/internal/repository"
)

// defaultCatalog is a starter set of common foods with macronutrient
// values per 100g, used when no catalog file is given.
var defaultCatalog = []model.FoodItem{
	{Name: "Arroz branco cozido", Calories: 128, Protein: 2.5, Carbs: 28.1, Fat: 0.2},
	{Name: "Feijão carioca cozido", Calories: 76, Protein: 4.8, Carbs: 13.6, Fat: 0.5},
	{Name: "Peito de frango grelhado", Calories: 159, Protein: 32.0, Carbs: 0, Fat: 2.5},
	{Name: "Carne bovina grelhada", Calories: 219, Protein: 35.9, Carbs: 0, Fat: 7.3},
	{Name: "Ovo cozido", Calories: 146, Protein: 13.3, Carbs: 0.6, Fat: 9.5},
	{Name: "Banana prata", Calories: 98, Protein: 1.3, Carbs: 26.0, Fat: 0.1},
	{Name: "Maçã fuji", Calories: 56, Protein: 0.3, Carbs: 15.2, Fat: 0},
	{Name: "Batata doce cozida", Calories: 77, Protein: 0.6, Carbs: 18.4, Fat: 0.1},
	{Name: "Pão francês", Calories: 300, Protein: 8.0, Carbs: 58.6, Fat: 3.1},
	{Name: "Leite integral", Calories: 61, Protein: 2.9, Carbs: 4.3, Fat: 3.2},
	{Name: "Aveia em flocos", Calories: 394, Protein: 13.9, Carbs: 66.6, Fat: 8.5},
	{Name: "Tilápia grelhada", Calories: 128, Protein: 26.2, Carbs: 0, Fat: 2.6},
}

type output struct {
	Seeded  int `json:"seeded"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		catalogFile = flag.String("file", "", "JSON catalog file; empty uses the built-in catalog")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	catalog, err := loadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	out, err := seed(ctx, repo, catalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Printf("seeded %d food items, skipped %d already present\n", out.Seeded, out.Skipped)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

func loadCatalog(path string) ([]model.FoodItem, error) {
	if path == "" {
		return defaultCatalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog []model.FoodItem
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog %s contains no items", path)
	}
	return catalog, nil
}

// seed inserts catalog entries that are not already in the table. The
// table has no unique constraint on nome, so skipping by name here is
// what keeps reruns from piling up duplicates.
func seed(ctx context.Context, repo *repository.Repository, catalog []model.FoodItem) (output, error) {
	existing, err := repo.ListFoodItems(ctx, "")
	if err != nil {
		return output{}, fmt.Errorf("list existing food items: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, item := range existing {
		present[item.Name] = true
	}

	out := output{Total: len(catalog)}
	for i := range catalog {
		item := catalog[i]
		if present[item.Name] {
			out.Skipped++
			continue
		}
		if err := repo.CreateFoodItem(ctx, &item); err != nil {
			return out, fmt.Errorf("create food item %q: %w", item.Name, err)
		}
		out.Seeded++
	}

	return out, nil
}
