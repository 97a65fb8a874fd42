package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"msvosa_back_end/internal/database"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow every origin (tighten in production)
		return true
	},
}

// OrdersFeed pushes the order list to the dashboard whenever a new
// order arrives, driven by the Redis "orders" pub/sub channel.
func OrdersFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Read pump: its only job is to notice the client going away, so
	// the feed stops without waiting for the next write to fail.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pubsub := database.Redis.Subscribe(ctx, "orders")
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "order feed active",
	})

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "created" {
				continue
			}

			if err := ordersMgr.Refresh(ctx); err != nil {
				log.Println("⚠️ Order feed refresh failed:", err)
				continue
			}
			if err := conn.WriteJSON(map[string]interface{}{
				"type":   "orders_updated",
				"orders": ordersMgr.Orders(),
			}); err != nil {
				log.Printf("❌ WebSocket write failed: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping to keep the connection alive
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
