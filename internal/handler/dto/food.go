package dto

import (
	"github.com/alimenta/alimenta/internal/model"
)

// FoodItemResponse represents a food item in API responses.
type FoodItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Calories float64 `json:"calorias"`
	Protein  float64 `json:"proteina"`
	Carbs    float64 `json:"carboidrato"`
	Fat      float64 `json:"gordura"`
}

// ToFoodItemResponse converts a FoodItem model to FoodItemResponse DTO.
func ToFoodItemResponse(item *model.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Calories: item.Calories,
		Protein:  item.Protein,
		Carbs:    item.Carbs,
		Fat:      item.Fat,
	}
}

// ToFoodItemsResponse converts a slice of FoodItem models.
// The result is never nil, so an empty catalog encodes as [].
func ToFoodItemsResponse(items []*model.FoodItem) []FoodItemResponse {
	responses := make([]FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToFoodItemResponse(item))
	}
	return responses
}
