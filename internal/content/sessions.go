package content

import (
	"context"
	"sync"

	"msvosa_back_end/internal/store"
)

// Sessions hands each admin session its own Editor, so unsaved drafts
// never leak between concurrently logged-in admins.
type Sessions struct {
	mu      sync.Mutex
	store   store.ContentStore
	editors map[string]*Editor
}

func NewSessions(contentStore store.ContentStore) *Sessions {
	return &Sessions{store: contentStore, editors: make(map[string]*Editor)}
}

// Editor returns the session's editor, creating and seeding it from
// the store on first use.
func (s *Sessions) Editor(ctx context.Context, sessionID string) (*Editor, error) {
	s.mu.Lock()
	editor, ok := s.editors[sessionID]
	if !ok {
		editor = NewEditor(s.store)
		s.editors[sessionID] = editor
	}
	s.mu.Unlock()

	if err := editor.Load(ctx); err != nil {
		return nil, err
	}
	return editor, nil
}

// Drop discards a session's drafts, typically on logout.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.editors, sessionID)
}
