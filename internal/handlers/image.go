package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/services"
)

// POST /api/admin/upload — image uploads for hero, gallery, committee
// and product photos.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}

	url, err := services.UploadImage(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
