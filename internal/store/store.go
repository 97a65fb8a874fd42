package store

import (
	"context"
	"errors"

	"msvosa_back_end/internal/models"
)

var ErrNotFound = errors.New("record not found")

// ContentStore is the persistence contract the rest of the backend is
// written against: plain collections for events, members and orders,
// plus the site-content document which is always read and written as
// one atomic unit.
type ContentStore interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	AddEvent(ctx context.Context, event models.NewEvent) error
	DeleteEvent(ctx context.Context, id int64) error

	GetSiteContent(ctx context.Context) (models.SiteContent, error)
	SaveSiteContent(ctx context.Context, content models.SiteContent) error

	GetMembers(ctx context.Context) ([]models.Alumni, error)
	AddMember(ctx context.Context, member models.NewAlumni) error
	DeleteMember(ctx context.Context, id string) error

	GetOrders(ctx context.Context) ([]models.Order, error)
	AddOrder(ctx context.Context, order models.NewOrder) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	DeleteOrder(ctx context.Context, id int64) error
}
