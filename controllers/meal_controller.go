package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/models"
	"github.com/Satya2834/PubFitnessStudio-web/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals   *services.MealService
	Ledger  *services.LedgerService
	Remote  *services.RemoteClient
	Session *services.SessionService
}

func NewMealController(meals *services.MealService, ledger *services.LedgerService, remote *services.RemoteClient, session *services.SessionService) *MealController {
	return &MealController{Meals: meals, Ledger: ledger, Remote: remote, Session: session}
}

type AddItemInput struct {
	Slot     models.MealSlot `json:"slot" binding:"required"`
	FoodName string          `json:"food_name" binding:"required"`
}

// AddItem appends a catalog food to the working selection. A food name that
// does not resolve to a catalog entry is not an error: the screen simply
// shows nothing was added.
func (mc *MealController) AddItem(c *gin.Context) {
	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidSlot(input.Slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be one of breakfast, lunch, snacks, dinner"})
		return
	}

	item, added := mc.Meals.AddSelection(input.Slot, input.FoodName)
	if !added {
		c.JSON(http.StatusOK, gin.H{"added": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": true, "item": item})
}

// RemoveItem drops one line item from the working selection.
func (mc *MealController) RemoveItem(c *gin.Context) {
	mc.Meals.RemoveSelection(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ListItems returns the working selection, optionally filtered by slot.
func (mc *MealController) ListItems(c *gin.Context) {
	slot := models.MealSlot(c.Query("slot"))
	if slot == "" {
		c.JSON(http.StatusOK, gin.H{"items": mc.Meals.Items(), "water": mc.Meals.Water()})
		return
	}
	if !models.ValidSlot(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown slot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": mc.Meals.ItemsForSlot(slot)})
}

type WaterInput struct {
	Water float64 `json:"water"`
}

// SetWater records the in-progress day's water intake in milliliters.
func (mc *MealController) SetWater(c *gin.Context) {
	var input WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Water < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "water must not be negative"})
		return
	}
	mc.Meals.SetWater(input.Water)
	c.Status(http.StatusNoContent)
}

type SubmitInput struct {
	Date string `json:"date"`
}

// Submit turns the working selection into the day's ledger record. The local
// upsert happens regardless of the remote push outcome; a remote failure is
// reported as an alert on an otherwise successful response.
func (mc *MealController) Submit(c *gin.Context) {
	// An empty body is fine: the date defaults to today.
	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	deviceID, _ := mc.Session.DeviceID()
	username, _ := mc.Session.Username()

	rec, remoteErr, err := mc.Meals.Submit(mc.Ledger, mc.Remote, deviceID, username, date)
	if err != nil {
		if errors.Is(err, services.ErrEmptySelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"record": rec}
	if remoteErr != nil {
		resp["alert"] = "Error uploading meal data"
		resp["remote_error"] = remoteErr.Error()
	} else {
		resp["message"] = "Meal data uploaded successfully"
	}
	c.JSON(http.StatusOK, resp)
}
