package controllers

import (
	"net/http"

	"github.com/MohammadaminAlbooyeh/diet-diary/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(f *services.FoodService) *FoodController {
	return &FoodController{Foods: f}
}

// GET /food-suggestions/  → {"apple": {"calories": 95, "unit": "1 medium"}, ...}
func (fc *FoodController) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, fc.Foods.All())
}
