package controllers

import (
	"net/http"
	"strconv"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

// GET /foods
func ListFoods(c *gin.Context) {
	foods, err := services.ListFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/search?q=oat
func SearchFoods(c *gin.Context) {
	foods, err := services.SearchFoods(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/:id
func GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	food, err := services.FoodByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}
