// Package admin holds the authenticated dashboard API: login, the
// draft/publish content editor, member/event/order management and the
// AI content assistant.
package admin

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/content"
	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/events"
	"msvosa_back_end/internal/orders"
	"msvosa_back_end/internal/store"
	"msvosa_back_end/internal/utils"
)

var (
	contentStore store.ContentStore
	sessions     *content.Sessions
	ordersMgr    *orders.Manager
	eventsMgr    *events.Manager
	directorySvc *directory.Service
)

// Init wires the shared services the admin handlers use.
func Init(s store.ContentStore, cs *content.Sessions, o *orders.Manager, e *events.Manager, d *directory.Service) {
	contentStore = s
	sessions = cs
	ordersMgr = o
	eventsMgr = e
	directorySvc = d
}

// POST /api/admin/login
//
// A single shared credential guards the dashboard. ADMIN_PASSWORD may
// hold either an Argon2id hash or, for small deployments, the plain
// value.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	}

	ok := input.Email == adminEmail
	if ok {
		if utils.IsArgon2Hash(adminPassword) {
			match, err := utils.VerifyPassword(input.Password, adminPassword)
			ok = err == nil && match
		} else {
			ok = input.Password == adminPassword
		}
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminJWT(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// POST /api/admin/logout — drops the session's unsaved drafts.
func Logout(c *gin.Context) {
	sessions.Drop(c.GetString("session_id"))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
