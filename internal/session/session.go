// Package session holds the UI collaborator's per-user state, such as the
// problem currently selected for solution editing. The problem store itself
// never reads it.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/revise/internal/store"
)

// Key is the KV key the session is stored under.
const Key = "session"

// Session is the state carried between UI actions.
type Session struct {
	ID       string `json:"id"`
	Selected *int64 `json:"selected,omitempty"`
}

// New returns a fresh session with nothing selected.
func New() *Session {
	return &Session{ID: uuid.New().String()}
}

// Select marks problem id as current.
func (s *Session) Select(id int64) {
	s.Selected = &id
}

// Clear drops the current selection.
func (s *Session) Clear() {
	s.Selected = nil
}

// SelectedID returns the current problem, if any.
func (s *Session) SelectedID() (int64, bool) {
	if s.Selected == nil {
		return 0, false
	}
	return *s.Selected, true
}

// Load reads the session from kv. A missing or unreadable session yields a
// new one.
func Load(ctx context.Context, kv store.KV) (*Session, error) {
	raw, ok, err := kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return New(), nil
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || s.ID == "" {
		return New(), nil
	}
	return &s, nil
}

// Save writes the session to kv.
func (s *Session) Save(ctx context.Context, kv store.KV) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := kv.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
