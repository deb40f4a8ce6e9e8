package routes

import (
	"github.com/Satya2834/PubFitnessStudio-web/controllers"
	"github.com/Satya2834/PubFitnessStudio-web/middlewares"
	"github.com/Satya2834/PubFitnessStudio-web/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired services into the router.
type Deps struct {
	Catalog *services.CatalogService
	Meals   *services.MealService
	Ledger  *services.LedgerService
	Remote  *services.RemoteClient
	Session *services.SessionService
	Profile *services.ProfileService
	Hub     *services.LedgerHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtrl := controllers.NewAuthController(d.Remote, d.Session, d.Ledger)
	foodCtrl := controllers.NewFoodController(d.Catalog)
	mealCtrl := controllers.NewMealController(d.Meals, d.Ledger, d.Remote, d.Session)
	dayCtrl := controllers.NewDayController(d.Ledger, d.Remote, d.Profile, d.Session)
	profileCtrl := controllers.NewProfileController(d.Profile)
	metricsCtrl := controllers.NewMetricsController(d.Profile)
	rtCtrl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
	}

	// Everything else sits behind the session gate
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(d.Session))
	{
		api.GET("/foods", foodCtrl.ListFoods)
		api.GET("/foods/search", foodCtrl.SearchFoods)

		api.GET("/day", dayCtrl.GetDay)

		api.POST("/meals/items", mealCtrl.AddItem)
		api.DELETE("/meals/items/:id", mealCtrl.RemoveItem)
		api.GET("/meals/items", mealCtrl.ListItems)
		api.PUT("/meals/water", mealCtrl.SetWater)
		api.POST("/meals/submit", mealCtrl.Submit)

		api.GET("/profile", profileCtrl.GetProfile)
		api.PUT("/profile", profileCtrl.UpdateProfile)
		api.PUT("/profile/goals", profileCtrl.UpdateGoals)

		api.GET("/report", metricsCtrl.GetReport)
		api.POST("/calculator/calorie-target", metricsCtrl.CalorieTarget)

		api.GET("/ws/ledger", rtCtrl.LedgerWS)
	}

	return r
}
