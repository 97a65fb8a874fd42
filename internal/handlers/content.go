// Package handlers holds the public HTTP surface: site content, shop
// carts, checkout, the alumni directory and donations.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/cache"
	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/events"
	"msvosa_back_end/internal/store"
)

var (
	contentStore store.ContentStore
	directorySvc *directory.Service
	eventsMgr    *events.Manager
)

// Init wires the shared services the public handlers use.
func Init(s store.ContentStore, d *directory.Service, e *events.Manager) {
	contentStore = s
	directorySvc = d
	eventsMgr = e
}

// GET /api/content
func GetSiteContent(c *gin.Context) {
	content, err := cache.GetSiteContent(c.Request.Context(), contentStore)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site content"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// GET /api/events
func GetEvents(c *gin.Context) {
	if err := eventsMgr.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}
	c.JSON(http.StatusOK, eventsMgr.Events())
}
