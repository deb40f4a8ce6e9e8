package controllers

import (
	"net/http"

	"github.com/Satya2834/PubFitnessStudio-web/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{Catalog: catalog}
}

// ListFoods returns the whole catalog, in table order.
func (fc *FoodController) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": fc.Catalog.Items()})
}

// SearchFoods backs the type-to-search inputs: GET /api/foods/search?q=.
func (fc *FoodController) SearchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": fc.Catalog.Search(c.Query("q"))})
}
