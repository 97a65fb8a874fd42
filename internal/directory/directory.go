// Package directory manages the alumni directory: fetch-all listing
// with read-after-write refresh, and pure in-memory filtering.
package directory

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

var ErrMissingFields = errors.New("name and profession are required")

// Service keeps the member list in memory and refreshes it from the
// store after every mutation rather than patching locally, so the list
// can never drift from what was actually persisted.
type Service struct {
	mu      sync.Mutex
	store   store.ContentStore
	members []models.Alumni
}

func NewService(contentStore store.ContentStore) *Service {
	return &Service{store: contentStore}
}

// Refresh reloads the member list from the store.
func (s *Service) Refresh(ctx context.Context) error {
	members, err := s.store.GetMembers(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	return nil
}

// Members returns a copy of the last loaded list.
func (s *Service) Members() []models.Alumni {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Alumni, len(s.members))
	copy(out, s.members)
	return out
}

// Add validates the required fields, fills in the defaults, persists
// the member and refreshes the list from the store.
func (s *Service) Add(ctx context.Context, member models.NewAlumni) error {
	if strings.TrimSpace(member.Name) == "" || strings.TrimSpace(member.Profession) == "" {
		return ErrMissingFields
	}
	if member.GraduationYear == 0 {
		member.GraduationYear = time.Now().Year()
	}
	if strings.TrimSpace(member.Location) == "" {
		member.Location = "Unknown"
	}

	if err := s.store.AddMember(ctx, member); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Delete removes a member and refreshes the list from the store. The
// interactive confirmation happens client-side before this is called.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteMember(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Filter applies the directory search over a member list: substring
// match on name or location, exact graduation year, substring match on
// profession. Empty criteria match everything. It never touches the
// store.
func Filter(members []models.Alumni, search, year, profession string) []models.Alumni {
	search = strings.ToLower(strings.TrimSpace(search))
	profession = strings.ToLower(strings.TrimSpace(profession))
	year = strings.TrimSpace(year)

	filtered := []models.Alumni{}
	for _, m := range members {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Location), search) {
			continue
		}
		if year != "" && strconv.Itoa(m.GraduationYear) != year {
			continue
		}
		if profession != "" && !strings.Contains(strings.ToLower(m.Profession), profession) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}
