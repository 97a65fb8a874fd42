package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/models"
)

// GET /api/admin/members
func GetMembers(c *gin.Context) {
	if err := directorySvc.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load members"})
		return
	}
	c.JSON(http.StatusOK, directorySvc.Members())
}

// POST /api/admin/members
func AddMember(c *gin.Context) {
	var input models.NewAlumni
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := directorySvc.Add(c.Request.Context(), input); err != nil {
		if errors.Is(err, directory.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add member"})
		return
	}
	c.JSON(http.StatusCreated, directorySvc.Members())
}

// DELETE /api/admin/members/:id
//
// The confirmation dialog happens in the dashboard before this call.
func DeleteMember(c *gin.Context) {
	if err := directorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete member"})
		return
	}
	c.JSON(http.StatusOK, directorySvc.Members())
}
