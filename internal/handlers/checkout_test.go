package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msvosa_back_end/internal/models"
)

const validCustomer = `{"name":"John Kamau","email":"john@example.com","phone":"+254 700 000000"}`

func TestSubmitCheckoutPersistsOrderAndClearsCartAndGuard(t *testing.T) {
	mr, memStore, r := setupShopTest(t)
	seedCart(t, mr, "s1", hoodieLine(2))

	w := shopRequest(t, r, http.MethodPost, "/api/orders", "s1", validCustomer)
	require.Equal(t, http.StatusCreated, w.Code)

	orders, err := memStore.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(90)))
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)

	assert.False(t, mr.Exists("cart:s1"), "cart key removed after checkout")
	assert.False(t, mr.Exists("checkout:s1"), "guard released after checkout")
}

func TestSubmitCheckoutRejectedWhileGuardHeld(t *testing.T) {
	mr, memStore, r := setupShopTest(t)
	seedCart(t, mr, "s1", hoodieLine(1))
	require.NoError(t, mr.Set("checkout:s1", "1"))

	w := shopRequest(t, r, http.MethodPost, "/api/orders", "s1", validCustomer)
	assert.Equal(t, http.StatusConflict, w.Code)

	orders, err := memStore.GetOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.True(t, mr.Exists("cart:s1"), "cart untouched by the rejected attempt")
}

func TestSubmitCheckoutEmptyCartReleasesGuard(t *testing.T) {
	mr, memStore, r := setupShopTest(t)

	w := shopRequest(t, r, http.MethodPost, "/api/orders", "s1", validCustomer)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	orders, err := memStore.GetOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.False(t, mr.Exists("checkout:s1"), "guard released after a failed attempt")
}

func TestSubmitCheckoutMissingCustomerKeepsCart(t *testing.T) {
	mr, memStore, r := setupShopTest(t)
	original := seedCart(t, mr, "s1", hoodieLine(2))

	w := shopRequest(t, r, http.MethodPost, "/api/orders", "s1", `{"name":"","email":"","phone":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	orders, err := memStore.GetOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)

	stored, err := mr.Get("cart:s1")
	require.NoError(t, err)
	assert.JSONEq(t, original, stored)
	assert.False(t, mr.Exists("checkout:s1"))
}
