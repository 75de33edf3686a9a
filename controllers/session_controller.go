package controllers

import (
	"net/http"
	"time"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Sessions *services.SessionHub
}

func NewSessionController(sessions *services.SessionHub) *SessionController {
	return &SessionController{Sessions: sessions}
}

// GET /session
func (sc *SessionController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Sessions.Get(c.GetUint("userID")))
}

// PUT /session/date {"date": "2024-03-15"}
func (sc *SessionController) SelectDate(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, sc.Sessions.SelectDate(c.GetUint("userID"), body.Date))
}

// PUT /session/menu {"visible": true}
func (sc *SessionController) SetMenuVisible(c *gin.Context) {
	var body struct {
		Visible *bool `json:"visible" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sc.Sessions.SetMenuVisible(c.GetUint("userID"), *body.Visible))
}
