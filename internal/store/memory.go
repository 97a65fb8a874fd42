package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"msvosa_back_end/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection in memory behind a mutex. It backs
// the test suites and local development without a ScyllaDB at hand.
type MemoryStore struct {
	mu sync.Mutex

	events  []models.Event
	content *models.SiteContent
	members []models.Alumni
	orders  []models.Order

	nextID int64

	// FailWith, when set, makes every operation return that error
	// without touching state. Used to exercise failure paths.
	FailWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) takeID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemoryStore) GetEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *MemoryStore) AddEvent(ctx context.Context, event models.NewEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.events = append(s.events, models.Event{
		ID:          s.takeID(),
		Title:       event.Title,
		Date:        event.Date,
		Location:    event.Location,
		Description: event.Description,
		Image:       event.Image,
	})
	return nil
}

func (s *MemoryStore) DeleteEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) GetSiteContent(ctx context.Context) (models.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return models.SiteContent{}, s.FailWith
	}
	if s.content == nil {
		return models.DefaultSiteContent(), nil
	}
	return *s.content, nil
}

func (s *MemoryStore) SaveSiteContent(ctx context.Context, content models.SiteContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.content = &content
	return nil
}

func (s *MemoryStore) GetMembers(ctx context.Context) ([]models.Alumni, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	out := make([]models.Alumni, len(s.members))
	copy(out, s.members)
	return out, nil
}

func (s *MemoryStore) AddMember(ctx context.Context, member models.NewAlumni) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.members = append(s.members, models.Alumni{
		ID:             uuid.NewString(),
		Name:           member.Name,
		GraduationYear: member.GraduationYear,
		Profession:     member.Profession,
		Location:       member.Location,
		Email:          member.Email,
	})
	return nil
}

func (s *MemoryStore) DeleteMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	for i, m := range s.members {
		if m.ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) AddOrder(ctx context.Context, order models.NewOrder) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return models.Order{}, s.FailWith
	}
	items := make([]models.CartItem, len(order.Items))
	copy(items, order.Items)
	created := models.Order{
		ID:            s.takeID(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		Date:          time.Now().Format("02/01/2006"),
	}
	s.orders = append(s.orders, created)
	return created, nil
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: order %d", ErrNotFound, id)
}

func (s *MemoryStore) DeleteOrder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return nil
}
