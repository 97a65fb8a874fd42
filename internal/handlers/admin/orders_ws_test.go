package admin

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msvosa_back_end/internal/content"
	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/events"
	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/orders"
	"msvosa_back_end/internal/store"
)

func TestOrdersFeedPushesOnPublishAndStopsOnClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	memStore := store.NewMemoryStore()
	created, err := memStore.AddOrder(context.Background(), models.NewOrder{
		CustomerName:  "John Kamau",
		CustomerEmail: "john@example.com",
		CustomerPhone: "+254 700 000000",
		Items: []models.CartItem{{
			MerchandiseItem: models.MerchandiseItem{ID: 1, Name: "Classic MSVOSA Hoodie", Price: decimal.NewFromFloat(45.00)},
			Quantity:        1,
		}},
		TotalAmount: decimal.NewFromFloat(45.00),
		Status:      models.OrderStatusPending,
	})
	require.NoError(t, err)

	Init(memStore, content.NewSessions(memStore), orders.NewManager(memStore),
		events.NewManager(memStore), directory.NewService(memStore))

	handlerDone := make(chan struct{})
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		OrdersFeed(c)
		close(handlerDone)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var hello map[string]any
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "connected", hello["type"])

	require.NoError(t, database.Redis.Publish(context.Background(), "orders", "created").Err())

	var update struct {
		Type   string         `json:"type"`
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "orders_updated", update.Type)
	require.Len(t, update.Orders, 1)
	assert.Equal(t, created.ID, update.Orders[0].ID)

	// Closing the client must stop the feed promptly, not leave it
	// parked until the next write fails.
	conn.Close()
	select {
	case <-handlerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("order feed kept running after the client closed")
	}
}
