package controllers

import (
	"net/http"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profile *services.ProfileService
}

func NewProfileController(profile *services.ProfileService) *ProfileController {
	return &ProfileController{Profile: profile}
}

// GetProfile returns the device profile with the derived age.
func (pc *ProfileController) GetProfile(c *gin.Context) {
	p, err := pc.Profile.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p, "age": pc.Profile.Age(p, time.Now())})
}

// UpdateProfile applies an explicit profile-edit submission.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := pc.Profile.Update(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// UpdateGoals applies an explicit goal-edit submission.
func (pc *ProfileController) UpdateGoals(c *gin.Context) {
	var input services.GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := pc.Profile.UpdateGoals(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}
