package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/models"
	"github.com/Satya2834/PubFitnessStudio-web/services"
	"github.com/Satya2834/PubFitnessStudio-web/utils"

	"github.com/gin-gonic/gin"
)

type DayController struct {
	Ledger  *services.LedgerService
	Remote  *services.RemoteClient
	Profile *services.ProfileService
	Session *services.SessionService
}

func NewDayController(ledger *services.LedgerService, remote *services.RemoteClient, profile *services.ProfileService, session *services.SessionService) *DayController {
	return &DayController{Ledger: ledger, Remote: remote, Profile: profile, Session: session}
}

// pct is the goal-progress percentage shown next to each nutrient. Values
// over 100 are shown as-is; a zero goal reads as no progress.
func pct(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed * 100 / goal
}

// GetDay renders one day of the ledger: totals, water, BMI and goal
// progress. GET /api/day?date=YYYY-MM-DD (defaults to today). Asking for a
// date older than the oldest synced record triggers a backward fetch first.
func (dc *DayController) GetDay(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	resp := gin.H{"date": date, "sync_state": string(dc.Ledger.State())}

	// Backward paging; a fetch failure still renders whatever is local.
	if username, ok := dc.Session.Username(); ok {
		if err := dc.Ledger.EnsureCoverage(dc.Remote, username, date); err != nil {
			log.Printf("ledger coverage for %s: %v", date, err)
			resp["alert"] = "Unable to get User's Data!!"
		}
		resp["sync_state"] = string(dc.Ledger.State())
	}

	totals := models.DayTotals{}
	water := 0.0
	rec, found, err := dc.Ledger.Get(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if found {
		totals = rec.Totals()
		water = rec.Water
		resp["record"] = rec
	}
	resp["totals"] = totals
	resp["water"] = water

	p, err := dc.Profile.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp["bmi"] = utils.BMI(p.WeightKg, p.HeightCm)
	resp["goals"] = gin.H{
		"calories": gin.H{"goal": p.CaloriesGoal, "percent": pct(totals.Calories, p.CaloriesGoal)},
		"proteins": gin.H{"goal": p.ProteinsGoal, "percent": pct(totals.Proteins, p.ProteinsGoal)},
		"carbs":    gin.H{"goal": p.CarbsGoal, "percent": pct(totals.Carbs, p.CarbsGoal)},
		"fats":     gin.H{"goal": p.FatsGoal, "percent": pct(totals.Fats, p.FatsGoal)},
	}

	c.JSON(http.StatusOK, resp)
}
