// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

// GET /analytics/weekly?end=YYYY-MM-DD (end defaults to today).
func GetWeeklySummary(c *gin.Context) {
	userID := c.GetUint("userID")

	end := c.Query("end")
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}

	summary, err := services.GetWeeklySummary(userID, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
