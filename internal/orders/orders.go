// Package orders is the admin side of order handling: listing,
// marking Pending orders Completed, and deleting records.
package orders

import (
	"context"
	"errors"
	"sync"

	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

// ErrInvalidTransition rejects any status change other than marking an
// order Completed. Cancelled exists in the data model but has no
// transition path exposed here.
var ErrInvalidTransition = errors.New("orders can only be marked Completed")

// Manager lists and mutates the orders collection. Every mutation is
// followed by a full re-read from the store, never an optimistic local
// patch.
type Manager struct {
	mu     sync.Mutex
	store  store.ContentStore
	orders []models.Order
}

func NewManager(contentStore store.ContentStore) *Manager {
	return &Manager{store: contentStore}
}

// Refresh reloads the order list from the store.
func (m *Manager) Refresh(ctx context.Context) error {
	orders, err := m.store.GetOrders(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.orders = orders
	m.mu.Unlock()
	return nil
}

// Orders returns a copy of the last loaded list.
func (m *Manager) Orders() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// Find returns the order with the given id from the last loaded list.
func (m *Manager) Find(id int64) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// SetStatus applies the one transition the dashboard exposes, Pending
// to Completed, then refreshes from the store.
func (m *Manager) SetStatus(ctx context.Context, id int64, status string) error {
	if status != models.OrderStatusCompleted {
		return ErrInvalidTransition
	}
	if err := m.store.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Delete permanently removes an order record, then refreshes. There is
// no undo.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	if err := m.store.DeleteOrder(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
