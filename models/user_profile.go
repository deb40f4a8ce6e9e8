package models

import "gorm.io/gorm"

// UserProfile is the single per-device profile. Created with defaults on
// first run; mutated only through explicit profile-edit or goal-edit
// submissions.
type UserProfile struct {
	gorm.Model
	Name      string  `json:"name"`
	DOB       string  `gorm:"size:10" json:"dob"` // YYYY-MM-DD
	Gender    string  `gorm:"size:16" json:"gender"`
	AvatarRef string  `json:"image"`
	HeightCm  float64 `json:"height"`
	WeightKg  float64 `json:"weight"`

	CaloriesGoal float64 `json:"caloriesGoal"`
	ProteinsGoal float64 `json:"proteinsGoal"`
	CarbsGoal    float64 `json:"carbsGoal"`
	FatsGoal     float64 `json:"fatsGoal"`
}
