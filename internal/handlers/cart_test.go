package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/events"
	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

// setupShopTest wires the public shop routes against an in-memory
// store and a miniredis instance standing in for the real Redis.
func setupShopTest(t *testing.T) (*miniredis.Miniredis, *store.MemoryStore, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	memStore := store.NewMemoryStore()
	Init(memStore, directory.NewService(memStore), events.NewManager(memStore))

	r := gin.New()
	r.GET("/api/cart", GetCart)
	r.POST("/api/cart/add", AddToCart)
	r.PATCH("/api/cart/:productId", UpdateCartQuantity)
	r.DELETE("/api/cart/:productId", RemoveFromCart)
	r.DELETE("/api/cart", ClearCart)
	r.POST("/api/orders", SubmitCheckout)
	return mr, memStore, r
}

func seedCart(t *testing.T, mr *miniredis.Miniredis, sid string, items []models.CartItem) string {
	t.Helper()
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, mr.Set("cart:"+sid, string(raw)))
	return string(raw)
}

func shopRequest(t *testing.T, r *gin.Engine, method, path, sid, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if sid != "" {
		req.Header.Set("X-Cart-Session", sid)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func hoodieLine(qty int) []models.CartItem {
	return []models.CartItem{{
		MerchandiseItem: models.MerchandiseItem{
			ID: 1, Name: "Classic MSVOSA Hoodie", Price: decimal.NewFromFloat(45.00), Category: "Apparel",
		},
		Quantity: qty,
	}}
}

func TestGetCartMintsSessionId(t *testing.T) {
	_, _, r := setupShopTest(t)

	w := shopRequest(t, r, http.MethodGet, "/api/cart", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Cart-Session"))
}

func TestAddToCartAccumulatesAcrossRequests(t *testing.T) {
	_, _, r := setupShopTest(t)

	// Product 1 comes from the default catalog.
	w := shopRequest(t, r, http.MethodPost, "/api/cart/add", "s1", `{"productId":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = shopRequest(t, r, http.MethodPost, "/api/cart/add", "s1", `{"productId":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.CartItem `json:"items"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 2, resp.Count)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	_, _, r := setupShopTest(t)

	w := shopRequest(t, r, http.MethodPost, "/api/cart/add", "s1", `{"productId":999}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartReadFailureDoesNotWipeStoredCart(t *testing.T) {
	mr, _, r := setupShopTest(t)
	original := seedCart(t, mr, "s1", hoodieLine(2))

	// A transient read failure must fail the request, not quietly
	// treat the cart as empty and save that over the real one.
	mr.SetError("read timeout")
	w := shopRequest(t, r, http.MethodPatch, "/api/cart/1", "s1", `{"delta":-1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mr.SetError("")

	stored, err := mr.Get("cart:s1")
	require.NoError(t, err)
	assert.JSONEq(t, original, stored)
}

func TestCartRemoveUnderReadFailureLeavesCartIntact(t *testing.T) {
	mr, _, r := setupShopTest(t)
	original := seedCart(t, mr, "s1", hoodieLine(3))

	mr.SetError("connection reset")
	w := shopRequest(t, r, http.MethodDelete, "/api/cart/1", "s1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mr.SetError("")

	stored, err := mr.Get("cart:s1")
	require.NoError(t, err)
	assert.JSONEq(t, original, stored)
}

func TestCorruptCartPayloadSurfacesError(t *testing.T) {
	mr, _, r := setupShopTest(t)
	require.NoError(t, mr.Set("cart:s1", "{not json"))

	w := shopRequest(t, r, http.MethodGet, "/api/cart", "s1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The broken payload stays put for inspection instead of being
	// replaced by an empty cart.
	stored, err := mr.Get("cart:s1")
	require.NoError(t, err)
	assert.Equal(t, "{not json", stored)
}

func TestUpdateQuantityPersistsFloorSemantics(t *testing.T) {
	mr, _, r := setupShopTest(t)
	seedCart(t, mr, "s1", hoodieLine(1))

	w := shopRequest(t, r, http.MethodPatch, "/api/cart/1", "s1", `{"delta":-5}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}
