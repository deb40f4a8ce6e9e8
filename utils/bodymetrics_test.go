package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBMI(t *testing.T) {
	require.InDelta(t, 23.66, BMI(70, 172), 0.01)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(23.66))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class III", BMICategory(41.0))
}

func TestBMR(t *testing.T) {
	// 10*70 + 6.25*172 - 5*25 + 5 = 1655
	assert.InDelta(t, 1655, BMR(70, 172, 25, "Male"), 1e-9)
	// female constant is -161 instead of +5
	assert.InDelta(t, 1489, BMR(70, 172, 25, "Female"), 1e-9)
	// anything that is not "male" takes the female branch
	assert.Equal(t, BMR(70, 172, 25, "Female"), BMR(70, 172, 25, "Other"))
	// case-insensitive male match
	assert.Equal(t, BMR(70, 172, 25, "Male"), BMR(70, 172, 25, "male"))
}

func TestBodyFatPercent(t *testing.T) {
	bmi := 23.66
	// male branch keeps the shipped -10.8 - 5.4 pair
	assert.InDelta(t, 1.2*bmi+0.23*25-10.8-5.4, BodyFatPercent(bmi, 25, "Male"), 1e-9)
	assert.InDelta(t, 1.2*bmi+0.23*25-5.4, BodyFatPercent(bmi, 25, "Female"), 1e-9)
	assert.Equal(t, BodyFatPercent(bmi, 25, "Female"), BodyFatPercent(bmi, 25, "Other"))
}

func TestBodyComposition(t *testing.T) {
	assert.InDelta(t, 42.0, TotalBodyWater(70), 1e-9)
	assert.InDelta(t, 2.8, BoneMineralContent(70), 1e-9)
	// 0.2 * 70 * (1 - 20/100) = 11.2
	assert.InDelta(t, 11.2, ProteinMass(70, 20), 1e-9)
}

func TestActivityFactorTable(t *testing.T) {
	cases := map[string]float64{
		"Sedentary":         1.2,
		"Lightly active":    1.375,
		"Moderately active": 1.55,
		"Very active":       1.725,
		"Extra active":      1.9,
	}
	for level, want := range cases {
		assert.Equal(t, want, ActivityFactor(level), level)
	}
	assert.Equal(t, 1.2, ActivityFactor("couch potato"), "unrecognized defaults to sedentary")
}

func TestAdjustmentDeltaTable(t *testing.T) {
	cases := map[string]float64{
		"Extreme weight loss": -1000,
		"Weight loss":         -500,
		"Mild weight loss":    -250,
		"Mild weight gain":    250,
		"Extreme weight gain": 500,
	}
	for adj, want := range cases {
		assert.Equal(t, want, AdjustmentDelta(adj), adj)
	}
	assert.Equal(t, -250.0, AdjustmentDelta(""), "unrecognized defaults to mild weight loss")
}

func TestDailyCalorieTarget(t *testing.T) {
	// moderately active male on "Weight loss": bmr*1.55 - 500
	bmr := BMR(70, 172, 25, "Male")
	got := DailyCalorieTarget(70, 172, 25, "Male", "Moderately active", "Weight loss")
	require.InDelta(t, bmr*1.55-500, got, 1e-9)
}

func TestCalculateAge(t *testing.T) {
	assert.Equal(t, 24, CalculateAge(date(2000, time.January, 1), date(2024, time.June, 15)))
	// birthday not yet reached this year
	assert.Equal(t, 23, CalculateAge(date(2000, time.July, 1), date(2024, time.June, 15)))
	// birthday exactly today counts
	assert.Equal(t, 24, CalculateAge(date(2000, time.June, 15), date(2024, time.June, 15)))
}
