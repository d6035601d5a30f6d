// Package model defines domain entities for the application.
package model

// FoodItem represents one row of the alimentos reference table with
// macronutrient values per 100g serving. JSON field names follow the
// legacy Portuguese wire contract consumed by existing clients.
type FoodItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Calories float64 `json:"calorias"`
	Protein  float64 `json:"proteina"`
	Carbs    float64 `json:"carboidrato"`
	Fat      float64 `json:"gordura"`
}
