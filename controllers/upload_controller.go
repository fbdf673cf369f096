package controllers

import (
	"local-market/libs"

	"github.com/gin-gonic/gin"
)

type UploadController struct{}

// UploadImage godoc
// @Summary Upload an image
// @Description Saves the file locally, pushes it to Cloudinary and returns the hosted URL
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/upload [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"error": "Image file is required"})
		return
	}

	localPath, err := libs.SaveUploadedFile(c, header, "uploads")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	url, err := libs.UploadToCloudinary(localPath)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	c.JSON(201, gin.H{"url": url})
}
