package controllers

import (
	"net/http"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/services"
	"github.com/Satya2834/PubFitnessStudio-web/utils"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Profile *services.ProfileService
}

func NewMetricsController(profile *services.ProfileService) *MetricsController {
	return &MetricsController{Profile: profile}
}

// GetReport renders the body-metrics report table from the stored profile.
func (mc *MetricsController) GetReport(c *gin.Context) {
	p, err := mc.Profile.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	age := mc.Profile.Age(p, time.Now())
	bmi := utils.BMI(p.WeightKg, p.HeightCm)
	fat := utils.BodyFatPercent(bmi, age, p.Gender)

	c.JSON(http.StatusOK, gin.H{
		"bmi":                  bmi,
		"bmi_category":         utils.BMICategory(bmi),
		"bmr":                  utils.BMR(p.WeightKg, p.HeightCm, age, p.Gender),
		"body_fat_percent":     fat,
		"total_body_water":     utils.TotalBodyWater(p.WeightKg),
		"protein_mass":         utils.ProteinMass(p.WeightKg, fat),
		"bone_mineral_content": utils.BoneMineralContent(p.WeightKg),
	})
}

type CalorieTargetInput struct {
	Gender     string  `json:"gender" binding:"required"`
	WeightKg   float64 `json:"weight" binding:"required"`
	HeightCm   float64 `json:"height" binding:"required"`
	Age        int     `json:"age" binding:"required"`
	Activity   string  `json:"activity" binding:"required"`
	Adjustment string  `json:"adjustment" binding:"required"`
}

// CalorieTarget is the standalone BMR calorie calculator: all fields are
// required, unrecognized activity/adjustment labels fall back to their
// defaults.
func (mc *MetricsController) CalorieTarget(c *gin.Context) {
	var input CalorieTargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all fields correctly"})
		return
	}

	bmr := utils.BMR(input.WeightKg, input.HeightCm, input.Age, input.Gender)
	maintenance := bmr * utils.ActivityFactor(input.Activity)
	adjustment := utils.AdjustmentDelta(input.Adjustment)

	c.JSON(http.StatusOK, gin.H{
		"bmr":                  bmr,
		"maintenance_calories": maintenance,
		"adjustment":           adjustment,
		"daily_calorie_target": maintenance + adjustment,
	})
}
