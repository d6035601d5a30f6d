package repository

import (
	"context"
	"fmt"

	"github.com/alimenta/alimenta/internal/model"
)

// ListFoodItems retrieves food items whose name contains nameFilter as
// a case-sensitive substring. An empty filter returns the whole table.
// Rows come back in storage order; callers get no ordering guarantee.
func (r *Repository) ListFoodItems(ctx context.Context, nameFilter string) ([]*model.FoodItem, error) {
	query := `
		SELECT id, nome, calorias, proteina, carboidrato, gordura
		FROM alimentos
		WHERE nome LIKE '%' || $1 || '%'
	`

	rows, err := r.pool.Query(ctx, query, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	defer rows.Close()

	var items []*model.FoodItem
	for rows.Next() {
		var item model.FoodItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Calories,
			&item.Protein,
			&item.Carbs,
			&item.Fat,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating food items: %w", err)
	}

	return items, nil
}

// CreateFoodItem inserts a food item and fills in the generated ID.
// The API surface is read-only for foods; this exists for seeding.
func (r *Repository) CreateFoodItem(ctx context.Context, item *model.FoodItem) error {
	query := `
		INSERT INTO alimentos (nome, calorias, proteina, carboidrato, gordura)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		item.Name,
		item.Calories,
		item.Protein,
		item.Carbs,
		item.Fat,
	).Scan(&item.ID)

	if err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}

	return nil
}
