package controllers

import (
	"net/http"

	"github.com/matheuarenivas/Hygieia/utils"

	"github.com/gin-gonic/gin"
)

type AvatarUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadAvatar stores a base64 data-URI image and returns its public URL.
func UploadAvatar(c *gin.Context) {
	var req AvatarUploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
