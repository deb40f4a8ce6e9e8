package main

import (
	"os"

	"github.com/Satya2834/PubFitnessStudio-web/config"
	"github.com/Satya2834/PubFitnessStudio-web/routes"
	"github.com/Satya2834/PubFitnessStudio-web/services"
)

func main() {
	config.InitDB()

	catalog := services.NewCatalogService()
	foodPath := os.Getenv("FOOD_DATA_PATH")
	if foodPath == "" {
		foodPath = "data.xlsx"
	}
	catalog.LoadAsync(foodPath)

	hub := services.NewLedgerHub()
	remote := services.NewRemoteClient()
	session := services.NewSessionService(config.DB)
	ledger := services.NewLedgerService(config.DB, hub)
	profile := services.NewProfileService(config.DB)
	meals := services.NewMealService(catalog)

	r := routes.SetupRouter(routes.Deps{
		Catalog: catalog,
		Meals:   meals,
		Ledger:  ledger,
		Remote:  remote,
		Session: session,
		Profile: profile,
		Hub:     hub,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
