package middlewares

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/config"
	"github.com/Satya2834/PubFitnessStudio-web/services"
	"github.com/Satya2834/PubFitnessStudio-web/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGatedRouter(t *testing.T) (*gin.Engine, *services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	session := services.NewSessionService(db)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(session), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return r, session
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, session := newGatedRouter(t)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-jwt").Code)
	})

	t.Run("valid token but no recorded login", func(t *testing.T) {
		token, err := utils.GenerateJWT("pubfit")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(r, token).Code)
	})

	t.Run("valid token inside the session window", func(t *testing.T) {
		require.NoError(t, session.RecordLogin("pubfit", "device-42", time.Now()))
		token, err := utils.GenerateJWT("pubfit")
		require.NoError(t, err)

		w := get(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pubfit")
	})

	t.Run("stale login expires the session", func(t *testing.T) {
		require.NoError(t, session.RecordLogin("pubfit", "device-42", time.Now().AddDate(0, 0, -8)))
		token, err := utils.GenerateJWT("pubfit")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(r, token).Code)
	})
}
