// Package shop holds the merchandise cart engine and the checkout
// workflow. A cart is confined to one browsing session; nothing in it
// reaches durable storage until a checkout succeeds.
package shop

import (
	"github.com/shopspring/decimal"

	"msvosa_back_end/internal/models"
)

// Cart is an in-memory list of line items keyed by product id.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// Add increments the quantity of an existing line item by one, or
// appends a new line item with quantity 1. Each call adds one unit.
func (c *Cart) Add(product models.MerchandiseItem) {
	for i := range c.Items {
		if c.Items[i].ID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, models.CartItem{MerchandiseItem: product, Quantity: 1})
}

// Remove deletes the line item with the given id. Removing an id that
// is not in the cart is a no-op.
func (c *Cart) Remove(id int64) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts a line item's quantity by delta. An update
// that would drop the quantity to zero or below is ignored and the
// item keeps its prior quantity; it never auto-removes.
func (c *Cart) UpdateQuantity(id int64, delta int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			if newQty := c.Items[i].Quantity + delta; newQty > 0 {
				c.Items[i].Quantity = newQty
			}
			return
		}
	}
}

// Total is the sum of price × quantity over all line items, recomputed
// on every call so it always matches the current contents.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count is the sum of quantities over all line items.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear drops every line item.
func (c *Cart) Clear() {
	c.Items = nil
}

// Snapshot returns a deep copy of the current line items, safe to hand
// to an order after the live cart is cleared.
func (c *Cart) Snapshot() []models.CartItem {
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}
