package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/cache"
	"msvosa_back_end/internal/content"
	"msvosa_back_end/internal/models"
)

// editorFor returns the content editor bound to this admin session,
// seeding its drafts from the store on first use.
func editorFor(c *gin.Context) (*content.Editor, bool) {
	editor, err := sessions.Editor(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site content"})
		return nil, false
	}
	return editor, true
}

// GET /api/admin/content/draft
func GetDraft(c *gin.Context) {
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, editor.Draft())
}

// --- Domain draft updates. Each touches only its own domain. ---

// PUT /api/admin/content/branding
func UpdateBranding(c *gin.Context) {
	var input models.Branding
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.SetBranding(input)
	c.JSON(http.StatusOK, editor.Draft())
}

// PUT /api/admin/content/hero
func UpdateHero(c *gin.Context) {
	var input models.HeroContent
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.SetHero(input)
	c.JSON(http.StatusOK, editor.Draft())
}

// PUT /api/admin/content/mission
func UpdateMission(c *gin.Context) {
	var input models.MissionContent
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.SetMission(input)
	c.JSON(http.StatusOK, editor.Draft())
}

// PUT /api/admin/content/gallery
func UpdateGallery(c *gin.Context) {
	var input models.GalleryContent
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.SetGallery(input)
	c.JSON(http.StatusOK, editor.Draft())
}

// PUT /api/admin/content/contact
func UpdateContact(c *gin.Context) {
	var input models.ContactInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.SetContact(input)
	c.JSON(http.StatusOK, editor.Draft())
}

// --- Committee leadership ---

// POST /api/admin/content/leadership
func AddLeader(c *gin.Context) {
	var input models.CommitteeMember
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and role are required"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.AddLeader(input)
	c.JSON(http.StatusOK, editor.Draft())
}

// PUT /api/admin/content/leadership/:index/image
func UpdateLeaderImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	var input struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.UpdateLeaderImage(index, input.Image)
	c.JSON(http.StatusOK, editor.Draft())
}

// DELETE /api/admin/content/leadership/:index
func RemoveLeader(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.RemoveLeader(index)
	c.JSON(http.StatusOK, editor.Draft())
}

// --- General committee members list ---

// POST /api/admin/content/committee-names
func AddCommitteeName(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.AddCommitteeName(input.Name)
	c.JSON(http.StatusOK, editor.Draft())
}

// DELETE /api/admin/content/committee-names/:index
func RemoveCommitteeName(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.RemoveCommitteeName(index)
	c.JSON(http.StatusOK, editor.Draft())
}

// --- Shop catalog ---

// POST /api/admin/content/products
func AddProduct(c *gin.Context) {
	var input models.MerchandiseItem
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name is required"})
		return
	}
	if input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	id := editor.AddProduct(input)
	c.JSON(http.StatusOK, gin.H{"id": id, "draft": editor.Draft()})
}

// PUT /api/admin/content/products/:id
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var input models.MerchandiseItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.UpdateProduct(id, input)
	c.JSON(http.StatusOK, editor.Draft())
}

// PUT /api/admin/content/products/:id/image
func UpdateProductImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var input struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.UpdateProductImage(id, input.Image)
	c.JSON(http.StatusOK, editor.Draft())
}

// DELETE /api/admin/content/products/:id
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	editor, ok := editorFor(c)
	if !ok {
		return
	}
	editor.DeleteProduct(id)
	c.JSON(http.StatusOK, editor.Draft())
}

// POST /api/admin/content/publish — Save Changes.
//
// Writes every domain draft as one atomic document. On failure the
// store keeps its prior value and the drafts stay in memory, so the
// admin can retry.
func Publish(c *gin.Context) {
	editor, ok := editorFor(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := editor.Publish(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save, please check the database connection"})
		return
	}

	cache.InvalidateSiteContent(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "all changes saved"})
}
