package controllers

import (
	"net/http"
	"strconv"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

// CompositionController drives the meal-entry modal: build up a set of
// foods, tweak quantities, watch the running totals, then save into the
// ledger.
type CompositionController struct {
	Store    *services.CompositionStore
	Meals    *services.MealService
	Sessions *services.SessionHub
}

func NewCompositionController(store *services.CompositionStore, meals *services.MealService, sessions *services.SessionHub) *CompositionController {
	return &CompositionController{Store: store, Meals: meals, Sessions: sessions}
}

func pathFoodID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("foodID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return 0, false
	}
	return uint(id), true
}

// GET /composition
func (cc *CompositionController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	comp := cc.Store.Get(userID)
	c.JSON(http.StatusOK, gin.H{
		"composition": comp,
		"totals":      cc.Store.Totals(userID),
	})
}

// PUT /composition/type {"type": "Lunch"}
func (cc *CompositionController) SetMealType(c *gin.Context) {
	var body struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cc.Store.SetMealType(c.GetUint("userID"), body.Type))
}

// POST /composition/foods {"food_id": 3}
func (cc *CompositionController) AddFood(c *gin.Context) {
	var body struct {
		FoodID uint `json:"food_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.FoodByID(body.FoodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, cc.Store.AddFood(c.GetUint("userID"), *food))
}

// DELETE /composition/foods/:foodID
func (cc *CompositionController) RemoveFood(c *gin.Context) {
	id, ok := pathFoodID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cc.Store.RemoveFood(c.GetUint("userID"), id))
}

// POST /composition/foods/:foodID/increment
func (cc *CompositionController) Increment(c *gin.Context) {
	id, ok := pathFoodID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cc.Store.IncrementQuantity(c.GetUint("userID"), id))
}

// POST /composition/foods/:foodID/decrement
func (cc *CompositionController) Decrement(c *gin.Context) {
	id, ok := pathFoodID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cc.Store.DecrementQuantity(c.GetUint("userID"), id))
}

// PUT /composition/foods/:foodID/quantity {"quantity": 2}
func (cc *CompositionController) SetQuantity(c *gin.Context) {
	id, ok := pathFoodID(c)
	if !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cc.Store.SetQuantity(c.GetUint("userID"), id, body.Quantity))
}

// DELETE /composition
func (cc *CompositionController) Clear(c *gin.Context) {
	cc.Store.Clear(c.GetUint("userID"))
	c.Status(http.StatusNoContent)
}

// POST /composition/save {"date": "2024-03-15"}. Date is optional and
// defaults to the session's active day. The composition is kept when the
// save fails so nothing the user built is lost.
func (cc *CompositionController) Save(c *gin.Context) {
	var body struct {
		Date string `json:"date"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&body)

	userID := c.GetUint("userID")
	comp := cc.Store.Get(userID)

	date := body.Date
	if date == "" {
		date = cc.Sessions.Get(userID).ActiveDate
	}

	meal, err := cc.Meals.AddMeal(userID, date, comp.MealType, comp.Foods)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cc.Store.Clear(userID)
	c.JSON(http.StatusCreated, meal)
}
