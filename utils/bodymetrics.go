package utils

import (
	"strings"
	"time"
)

// isMale: any gender value other than "male" takes the female branch of the
// formulas below, matching the app's observed behavior for "Other".
func isMale(gender string) bool {
	return strings.EqualFold(gender, "male")
}

// BMI expects height in centimeters and weight in kilograms.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return weightKg / (h * h)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// BMR computes basal metabolic rate via Mifflin-St Jeor.
func BMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if isMale(gender) {
		return bmr + 5
	}
	return bmr - 161
}

// BodyFatPercent estimates body fat from BMI and age. The male branch carries
// the extra -10.8 from the source formula as shipped; do not fold the
// constants together.
func BodyFatPercent(bmi float64, ageYears int, gender string) float64 {
	if isMale(gender) {
		return 1.2*bmi + 0.23*float64(ageYears) - 10.8 - 5.4
	}
	return 1.2*bmi + 0.23*float64(ageYears) - 5.4
}

// TotalBodyWater in liters.
func TotalBodyWater(weightKg float64) float64 {
	return 0.6 * weightKg
}

// BoneMineralContent in kilograms.
func BoneMineralContent(weightKg float64) float64 {
	return 0.04 * weightKg
}

// ProteinMass in kilograms, given body fat as a percentage.
func ProteinMass(weightKg, bodyFatPercent float64) float64 {
	return 0.2 * weightKg * (1 - bodyFatPercent/100)
}

// activityFactors maps the five activity levels to their TDEE multiplier.
var activityFactors = map[string]float64{
	"Sedentary":         1.2,
	"Lightly active":    1.375,
	"Moderately active": 1.55,
	"Very active":       1.725,
	"Extra active":      1.9,
}

// adjustmentDeltas maps the goal adjustment levels to a daily kcal offset.
var adjustmentDeltas = map[string]float64{
	"Extreme weight loss": -1000,
	"Weight loss":         -500,
	"Mild weight loss":    -250,
	"Mild weight gain":    250,
	"Extreme weight gain": 500,
}

// ActivityFactor returns the multiplier for an activity level, defaulting to
// the sedentary 1.2 for unrecognized input.
func ActivityFactor(level string) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return 1.2
}

// AdjustmentDelta returns the kcal offset for a goal adjustment, defaulting
// to mild weight loss (-250) for unrecognized input.
func AdjustmentDelta(adjustment string) float64 {
	if d, ok := adjustmentDeltas[adjustment]; ok {
		return d
	}
	return -250
}

// DailyCalorieTarget is BMR scaled by the activity factor plus the goal
// adjustment delta.
func DailyCalorieTarget(weightKg, heightCm float64, ageYears int, gender, activity, adjustment string) float64 {
	return BMR(weightKg, heightCm, ageYears, gender)*ActivityFactor(activity) + AdjustmentDelta(adjustment)
}

// CalculateAge returns whole years between dob and today, decremented when
// today's month/day precede the birth month/day.
func CalculateAge(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	monthDiff := int(today.Month()) - int(dob.Month())
	if monthDiff < 0 || (monthDiff == 0 && today.Day() < dob.Day()) {
		age--
	}
	return age
}
