package controllers

import (
	"net/http"
	"time"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

// GET /assistant returns the opening message of a chat session.
func AssistantGreeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sender":    "ai",
		"text":      services.AssistantGreeting,
		"timestamp": time.Now(),
	})
}

// POST /assistant/chat {"message": "how is my sleep?"}
func AssistantChat(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sender":    "ai",
		"text":      services.AssistantReply(body.Message),
		"timestamp": time.Now(),
	})
}
