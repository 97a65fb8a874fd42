package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"msvosa_back_end/internal/orders"
	"msvosa_back_end/internal/utils"
)

// GET /api/admin/orders
func GetOrders(c *gin.Context) {
	if err := ordersMgr.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, ordersMgr.Orders())
}

// PUT /api/admin/orders/:id/status — marks a Pending order Completed.
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := ordersMgr.SetStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, orders.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update order"})
		return
	}
	c.JSON(http.StatusOK, ordersMgr.Orders())
}

// DELETE /api/admin/orders/:id — permanent, no undo.
func DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := ordersMgr.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete order"})
		return
	}
	c.JSON(http.StatusOK, ordersMgr.Orders())
}

// GET /api/admin/orders/:id/receipt — printable PDF of an order.
func OrderReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := ordersMgr.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	if _, ok := ordersMgr.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	pdf, err := utils.RenderOrderReceiptPDF(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render receipt"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=msvosa_order.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
