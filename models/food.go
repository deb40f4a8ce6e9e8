package models

// A catalog entry from the food composition workbook. Nutrient values are per
// the serving reported by the source table. Immutable once loaded.
type FoodItem struct {
	Name       string  `json:"food_name"`
	EnergyKcal float64 `json:"energy_kcal"`
	ProteinG   float64 `json:"protein_g"`
	CarbG      float64 `json:"carb_g"`
	FatG       float64 `json:"fat_g"`
}
