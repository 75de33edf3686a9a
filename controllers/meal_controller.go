package controllers

import (
	"errors"
	"net/http"

	"github.com/matheuarenivas/Hygieia/models"
	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals    *services.MealService
	Sessions *services.SessionHub
}

func NewMealController(meals *services.MealService, sessions *services.SessionHub) *MealController {
	return &MealController{Meals: meals, Sessions: sessions}
}

type MealItemInput struct {
	FoodID   uint `json:"food_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type MealInput struct {
	Type  string          `json:"type" binding:"required"`
	Date  string          `json:"date"`
	Items []MealItemInput `json:"items" binding:"required"`
}

// resolveFoods joins the request items against the catalog, snapshotting
// per-unit macros. Unknown food ids fail the whole request.
func resolveFoods(items []MealItemInput) ([]models.SelectedFood, error) {
	foods := make([]models.SelectedFood, 0, len(items))
	for _, it := range items {
		food, err := services.FoodByID(it.FoodID)
		if err != nil {
			return nil, errors.New("unknown food id")
		}
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		foods = append(foods, models.SelectedFood{Food: *food, Quantity: q})
	}
	return foods, nil
}

// activeDate falls back to the session's selected day when the request
// carries no date.
func (mc *MealController) activeDate(c *gin.Context, date string) string {
	if date != "" {
		return date
	}
	return mc.Sessions.Get(c.GetUint("userID")).ActiveDate
}

// POST /meals
func (mc *MealController) LogMeal(c *gin.Context) {
	var body MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foods, err := resolveFoods(body.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	meal, err := mc.Meals.AddMeal(userID, mc.activeDate(c, body.Date), body.Type, foods)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals?date=YYYY-MM-DD
func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	meals, err := mc.Meals.MealsForDate(userID, mc.activeDate(c, c.Query("date")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/recent
func (mc *MealController) ListRecentMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	meals, err := mc.Meals.ListRecentMeals(userID, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/:id
func (mc *MealController) GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	meal, err := mc.Meals.GetMeal(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// PUT /meals/:id
func (mc *MealController) UpdateMeal(c *gin.Context) {
	var body MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foods, err := resolveFoods(body.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	meal, err := mc.Meals.UpdateMeal(userID, c.Param("id"), body.Type, foods)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (mc *MealController) RemoveMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	if err := mc.Meals.RemoveMeal(userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /meals/:id/retry
func (mc *MealController) RetryMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	meal, err := mc.Meals.RetryMeal(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}
