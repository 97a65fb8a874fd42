package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"msvosa_back_end/internal/cache"
	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/shop"
)

const (
	cartSessionHeader = "X-Cart-Session"
	cartTTL           = 30 * 24 * time.Hour
)

// cartSession returns the caller's cart session id, minting one when
// the client does not have one yet. The id is echoed back in the
// response header so the browser can keep it.
func cartSession(c *gin.Context) string {
	sid := c.GetHeader(cartSessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header(cartSessionHeader, sid)
	return sid
}

// loadCart reads the session's cart from Redis. A missing key is an
// empty cart; a read failure or a corrupt payload is an error, so a
// cart that could not be read is never overwritten by a later save.
func loadCart(ctx context.Context, sid string) (*shop.Cart, error) {
	cart := &shop.Cart{}
	data, err := database.Redis.Get(ctx, "cart:"+sid).Result()
	if err == redis.Nil {
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &cart.Items); err != nil {
		return nil, fmt.Errorf("decoding cart %s: %v", sid, err)
	}
	return cart, nil
}

func saveCart(ctx context.Context, sid string, cart *shop.Cart) error {
	raw, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, "cart:"+sid, raw, cartTTL).Err()
}

func cartResponse(c *gin.Context, sid string, cart *shop.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sid,
		"items":     cart.Items,
		"total":     cart.Total(),
		"count":     cart.Count(),
	})
}

// GET /api/cart
func GetCart(c *gin.Context) {
	sid := cartSession(c)
	cart, err := loadCart(c.Request.Context(), sid)
	if err != nil {
		log.Println("⚠️ Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	cartResponse(c, sid, cart)
}

// POST /api/cart/add
func AddToCart(c *gin.Context) {
	sid := cartSession(c)

	var input struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()

	// The catalog lives in the site-content document.
	content, err := cache.GetSiteContent(ctx, contentStore)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	cart, err := loadCart(ctx, sid)
	if err != nil {
		log.Println("⚠️ Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	found := false
	for _, product := range content.ShopItems {
		if product.ID == input.ProductID {
			cart.Add(product)
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	if err := saveCart(ctx, sid, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	cartResponse(c, sid, cart)
}

// PATCH /api/cart/:productId  {"delta": -1}
func UpdateCartQuantity(c *gin.Context) {
	sid := cartSession(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	cart, err := loadCart(ctx, sid)
	if err != nil {
		log.Println("⚠️ Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	cart.UpdateQuantity(productID, input.Delta)

	if err := saveCart(ctx, sid, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	cartResponse(c, sid, cart)
}

// DELETE /api/cart/:productId
func RemoveFromCart(c *gin.Context) {
	sid := cartSession(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	ctx := c.Request.Context()
	cart, err := loadCart(ctx, sid)
	if err != nil {
		log.Println("⚠️ Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	cart.Remove(productID)

	if err := saveCart(ctx, sid, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	cartResponse(c, sid, cart)
}

// DELETE /api/cart
func ClearCart(c *gin.Context) {
	sid := cartSession(c)
	if err := database.Redis.Del(c.Request.Context(), "cart:"+sid).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
