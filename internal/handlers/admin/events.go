package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/events"
	"msvosa_back_end/internal/models"
)

// POST /api/admin/events
func AddEvent(c *gin.Context) {
	var input models.NewEvent
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := eventsMgr.Add(c.Request.Context(), input); err != nil {
		if errors.Is(err, events.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add event"})
		return
	}
	c.JSON(http.StatusCreated, eventsMgr.Events())
}

// DELETE /api/admin/events/:id
func DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := eventsMgr.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete event"})
		return
	}
	c.JSON(http.StatusOK, eventsMgr.Events())
}
