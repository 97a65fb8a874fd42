package models

import "github.com/shopspring/decimal"

type MerchandiseItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}

// CartItem is a merchandise item plus the quantity held in a checkout
// session. Cart items live in session memory only and are never written
// to the store until checkout succeeds, where they are snapshotted into
// an order.
type CartItem struct {
	MerchandiseItem
	Quantity int `json:"quantity"`
}

// Subtotal is price × quantity for this line item.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []CartItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
}

// NewOrder is an order before the store assigns its id and date.
// TotalAmount is a snapshot computed from the cart at submission time
// and is never recomputed afterwards.
type NewOrder struct {
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []CartItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
}

func DefaultShopItems() []MerchandiseItem {
	return []MerchandiseItem{
		{ID: 1, Name: "Classic MSVOSA Hoodie", Price: decimal.NewFromFloat(45.00), Category: "Apparel", Image: "https://picsum.photos/300/300?random=10"},
		{ID: 2, Name: "Embroidered Cap", Price: decimal.NewFromFloat(25.00), Category: "Accessories", Image: "https://picsum.photos/300/300?random=11"},
		{ID: 3, Name: "Coffee Mug - Gold Edition", Price: decimal.NewFromFloat(15.00), Category: "Home", Image: "https://picsum.photos/300/300?random=12"},
		{ID: 4, Name: "Varsity Jacket", Price: decimal.NewFromFloat(85.00), Category: "Apparel", Image: "https://picsum.photos/300/300?random=13"},
	}
}
