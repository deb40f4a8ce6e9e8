package models

import "gorm.io/gorm"

// DayRecord is one submitted day in the ledger. The date is the unique key;
// a re-submission for the same date replaces the whole record. Totals are the
// aggregate computed at submission time, never recomputed from raw items,
// which are not retained. The slot fields hold the comma-joined food
// names recorded by the submission path.
type DayRecord struct {
	gorm.Model
	Date      string `gorm:"uniqueIndex;size:10;not null" json:"date"` // YYYY-MM-DD
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snacks    string `json:"snacks"`
	Dinner    string `json:"dinner"`

	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Water    float64 `json:"water"` // milliliters
}

// Totals returns the stored aggregate.
func (r *DayRecord) Totals() DayTotals {
	return DayTotals{Calories: r.Calories, Proteins: r.Proteins, Carbs: r.Carbs, Fats: r.Fats}
}
