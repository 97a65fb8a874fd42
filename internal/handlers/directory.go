package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/models"
)

// GET /api/members?search=&year=&profession=
//
// Filtering runs over the in-memory list, never against the store.
func GetMembers(c *gin.Context) {
	if err := directorySvc.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load directory"})
		return
	}

	members := directory.Filter(directorySvc.Members(),
		c.Query("search"), c.Query("year"), c.Query("profession"))
	c.JSON(http.StatusOK, members)
}

// POST /api/members — self-registration into the directory.
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add member, please try again"})
		return
	}

	c.JSON(http.StatusCreated, directorySvc.Members())
}
