// controllers/daily_goal_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

type GoalProgressController struct {
	Sessions *services.SessionHub
}

func NewGoalProgressController(sessions *services.SessionHub) *GoalProgressController {
	return &GoalProgressController{Sessions: sessions}
}

// GET /goals?date=YYYY-MM-DD (date defaults to the session's active day).
func (gc *GoalProgressController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		date = gc.Sessions.Get(userID).ActiveDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	goal, progress, err := services.GetGoalsAndProgress(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "goals": goal, "progress": progress})
}

// PUT /goals
func (gc *GoalProgressController) UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Calories  float64  `json:"calories"`
		Protein   float64  `json:"protein"`
		Carbs     float64  `json:"carbs"`
		Fat       *float64 `json:"fat"`
		Hydration *float64 `json:"hydration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// default missing to 0
	fat, hydration := 0.0, 0.0
	if req.Fat != nil {
		fat = *req.Fat
	}
	if req.Hydration != nil {
		hydration = *req.Hydration
	}

	if err := services.UpsertGoals(userID, req.Calories, req.Protein, req.Carbs, fat, hydration); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /goals/history
func (gc *GoalProgressController) GetDailyProgressHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.GetDailyProgressHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GET /goals/tags returns the onboarding goal-tag selection.
func GetGoalTags(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"catalog":  services.GoalCatalog,
		"selected": services.ParseGoals(user.FitnessGoals),
	})
}

// POST /goals/tags/toggle {"tag": "weight_gain"}
func ToggleGoalTag(c *gin.Context) {
	var body struct {
		Tag string `json:"tag" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	selected, err := services.ToggleUserGoal(userID, body.Tag)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": selected})
}
