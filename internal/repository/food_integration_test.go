//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/alimenta/alimenta/internal/model"
	"github.com/alimenta/alimenta/internal/testutil"
)

// ============================================================================
// Food Repository Integration Tests
// ============================================================================

func TestIntegrationFoodRepository_CreateFoodItem(t *testing.T) {
	ctx, repo := newFoodTestEnv(t)

	item := testutil.NewTestFoodItem(t, "Banana")

	err := repo.CreateFoodItem(ctx, item)
	if err != nil {
		t.Fatalf("CreateFoodItem failed: %v", err)
	}
	if item.ID == 0 {
		t.Error("CreateFoodItem should assign an ID")
	}
}

func TestIntegrationFoodRepository_ListFoodItems_All(t *testing.T) {
	ctx, repo := newFoodTestEnv(t)

	seedFoodItems(t, ctx, repo, "Banana", "Maçã", "Arroz integral")

	items, err := repo.ListFoodItems(ctx, "")
	if err != nil {
		t.Fatalf("ListFoodItems failed: %v", err)
	}

	if len(items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(items))
	}
}

func TestIntegrationFoodRepository_ListFoodItems_Substring(t *testing.T) {
	ctx, repo := newFoodTestEnv(t)

	seedFoodItems(t, ctx, repo, "Banana", "Manga", "Arroz integral")

	items, err := repo.ListFoodItems(ctx, "an")
	if err != nil {
		t.Fatalf("ListFoodItems failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items matching %q, got %d", "an", len(items))
	}
	names := map[string]bool{}
	for _, item := range items {
		names[item.Name] = true
	}
	if !names["Banana"] || !names["Manga"] {
		t.Errorf("Expected Banana and Manga, got %v", names)
	}
}

func TestIntegrationFoodRepository_ListFoodItems_CaseSensitive(t *testing.T) {
	ctx, repo := newFoodTestEnv(t)

	seedFoodItems(t, ctx, repo, "Banana")

	// LIKE is case sensitive, so a lowercase filter must not match.
	items, err := repo.ListFoodItems(ctx, "ban")
	if err != nil {
		t.Fatalf("ListFoodItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items for lowercase filter, got %d", len(items))
	}

	items, err = repo.ListFoodItems(ctx, "Ban")
	if err != nil {
		t.Fatalf("ListFoodItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item for %q, got %d", "Ban", len(items))
	}
}

func TestIntegrationFoodRepository_ListFoodItems_NoMatch(t *testing.T) {
	ctx, repo := newFoodTestEnv(t)

	seedFoodItems(t, ctx, repo, "Banana")

	items, err := repo.ListFoodItems(ctx, "Quinoa")
	if err != nil {
		t.Fatalf("ListFoodItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got %d", len(items))
	}
}

func TestIntegrationFoodRepository_ListFoodItems_RoundTrip(t *testing.T) {
	ctx, repo := newFoodTestEnv(t)

	item := &model.FoodItem{
		Name:     "Ovo cozido",
		Calories: 155,
		Protein:  13,
		Carbs:    1.1,
		Fat:      11,
	}
	if err := repo.CreateFoodItem(ctx, item); err != nil {
		t.Fatalf("CreateFoodItem failed: %v", err)
	}

	items, err := repo.ListFoodItems(ctx, "Ovo")
	if err != nil {
		t.Fatalf("ListFoodItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	got := items[0]
	if got.ID != item.ID {
		t.Errorf("ID mismatch: got %d, want %d", got.ID, item.ID)
	}
	if got.Name != item.Name {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, item.Name)
	}
	if got.Calories != item.Calories {
		t.Errorf("Calories mismatch: got %v, want %v", got.Calories, item.Calories)
	}
	if got.Protein != item.Protein {
		t.Errorf("Protein mismatch: got %v, want %v", got.Protein, item.Protein)
	}
	if got.Carbs != item.Carbs {
		t.Errorf("Carbs mismatch: got %v, want %v", got.Carbs, item.Carbs)
	}
	if got.Fat != item.Fat {
		t.Errorf("Fat mismatch: got %v, want %v", got.Fat, item.Fat)
	}
}

// ============================================================================
// Test Environment
// ============================================================================

func seedFoodItems(t *testing.T, ctx context.Context, repo *Repository, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := repo.CreateFoodItem(ctx, testutil.NewTestFoodItem(t, name)); err != nil {
			t.Fatalf("seed food item %q: %v", name, err)
		}
	}
}

func newFoodTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetFoodSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset food schema: %v", err)
	}

	return ctx, repo
}
