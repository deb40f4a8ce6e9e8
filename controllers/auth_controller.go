package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/services"
	"github.com/Satya2834/PubFitnessStudio-web/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Remote  *services.RemoteClient
	Session *services.SessionService
	Ledger  *services.LedgerService
}

func NewAuthController(remote *services.RemoteClient, session *services.SessionService, ledger *services.LedgerService) *AuthController {
	return &AuthController{Remote: remote, Session: session, Ledger: ledger}
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the remote record store, records the session
// locally and eagerly pulls the ledger for the current date.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deviceID, err := ac.Remote.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := ac.Session.RecordLogin(input.Username, deviceID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record session"})
		return
	}

	token, err := utils.GenerateJWT(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	// Eager ledger pull; the login response never waits on it.
	go func(username string) {
		today := time.Now().Format("2006-01-02")
		if err := ac.Ledger.Sync(ac.Remote, username, today); err != nil {
			log.Printf("post-login ledger sync: %v", err)
		}
	}(input.Username)

	c.JSON(http.StatusOK, gin.H{"token": token, "deviceid": deviceID})
}
