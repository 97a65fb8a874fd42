package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/shop"
	"msvosa_back_end/internal/utils"
)

// ordersChannel is the Redis pub/sub channel the admin dashboard
// listens on for live order notifications.
const ordersChannel = "orders"

// POST /api/orders — submit a checkout.
//
// The whole flow either fully succeeds (order recorded, cart cleared)
// or fully fails (nothing recorded, cart intact). A Redis guard key
// per cart session blocks duplicate in-flight submissions.
func SubmitCheckout(c *gin.Context) {
	sid := cartSession(c)

	var customer shop.CustomerInfo
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()

	// Re-submission guard: released when this attempt resolves.
	guardKey := "checkout:" + sid
	locked, err := database.Redis.SetNX(ctx, guardKey, "1", time.Minute).Result()
	if err != nil {
		log.Println("⚠️ Checkout guard unavailable:", err)
	} else if !locked {
		c.JSON(http.StatusConflict, gin.H{"error": "a submission is already in progress"})
		return
	}
	// The release must still run when the client disconnects before the
	// request finishes; otherwise the guard strands for its full TTL.
	defer database.Redis.Del(context.WithoutCancel(ctx), guardKey)

	cart, err := loadCart(ctx, sid)
	if err != nil {
		log.Println("⚠️ Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	checkout := shop.NewCheckout(cart, contentStore)
	if err := checkout.Begin(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	if err := checkout.Submit(ctx, customer); err != nil {
		if errors.Is(err, shop.ErrMissingCustomer) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Store failure: the Redis cart is untouched, so the user can
		// simply retry.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order, please try again"})
		return
	}

	order := checkout.Order()

	// The live cart cleared in memory; drop the persisted session copy
	// to match.
	if err := database.Redis.Del(ctx, "cart:"+sid).Err(); err != nil {
		log.Println("⚠️ Failed to clear cart after checkout:", err)
	}

	database.Redis.Publish(ctx, ordersChannel, "created")

	// Emails are a courtesy, never a reason to fail the order.
	go sendOrderEmails(*order)

	c.JSON(http.StatusCreated, gin.H{
		"message": "order received",
		"order":   order,
	})
}

func sendOrderEmails(order models.Order) {
	if err := utils.SendEmail(order.CustomerEmail, "Your MSVOSA order",
		utils.OrderConfirmationHTML(order), nil); err != nil {
		log.Println("⚠️ Customer confirmation email failed:", err)
	}

	adminEmail := os.Getenv("ORDERS_NOTIFY_EMAIL")
	if adminEmail == "" {
		return
	}
	if err := utils.SendEmail(adminEmail, "New shop order",
		utils.OrderNotificationHTML(order), nil); err != nil {
		log.Println("⚠️ Order notification email failed:", err)
	}
}
