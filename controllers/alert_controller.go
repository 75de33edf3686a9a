package controllers

import (
	"net/http"
	"strconv"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

// GET /alerts
func ListAlerts(c *gin.Context) {
	alerts, err := services.ListAlerts(c.GetUint("userID"), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// POST /alerts/:id/read
func MarkAlertRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}
	if err := services.MarkAlertRead(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
