package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/services"
)

// POST /api/admin/generate — the dashboard's AI content assistant.
//
// Generation failures come back as text in the result, never as an
// HTTP error, so the dashboard always has something to show.
func GenerateContent(c *gin.Context) {
	var req services.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	text := services.GenerateMarketingContent(c.Request.Context(), req)
	c.JSON(http.StatusOK, gin.H{"text": text})
}
