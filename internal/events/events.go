// Package events manages the association's event records. Events are
// only ever added or deleted; an edit is a delete plus recreate.
package events

import (
	"context"
	"errors"
	"strings"
	"sync"

	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

var ErrMissingFields = errors.New("title and date are required")

type Manager struct {
	mu     sync.Mutex
	store  store.ContentStore
	events []models.Event
}

func NewManager(contentStore store.ContentStore) *Manager {
	return &Manager{store: contentStore}
}

func (m *Manager) Refresh(ctx context.Context) error {
	events, err := m.store.GetEvents(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.events = events
	m.mu.Unlock()
	return nil
}

func (m *Manager) Events() []models.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *Manager) Add(ctx context.Context, event models.NewEvent) error {
	if strings.TrimSpace(event.Title) == "" || strings.TrimSpace(event.Date) == "" {
		return ErrMissingFields
	}
	if err := m.store.AddEvent(ctx, event); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *Manager) Delete(ctx context.Context, id int64) error {
	if err := m.store.DeleteEvent(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
