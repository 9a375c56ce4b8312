package store

import (
	"strings"
	"time"

	"github.com/Makepad-fr/tada/internal/model"
)

// In-memory storage. Items live for one session, kept in insertion order.
// Not safe for concurrent use; the TUI drives it from a single goroutine.

// Store is an ordered list of todo items.
type Store struct {
	items []model.Item
	ids   IDSource
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the default monotonic counter.
func WithIDSource(src IDSource) Option {
	return func(s *Store) { s.ids = src }
}

// WithClock sets the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		ids: &Counter{},
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Add appends a new item. Blank text (after trimming) is rejected and the
// store is left untouched. The text itself is stored as given.
func (s *Store) Add(text string) (model.Item, bool) {
	if strings.TrimSpace(text) == "" {
		return model.Item{}, false
	}
	it := model.Item{
		ID:           s.ids.Next(),
		Text:         text,
		OriginalText: text,
		CreatedAt:    s.now(),
	}
	s.items = append(s.items, it)
	return it, true
}

// Delete removes the item with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id int64) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// ApplyEdit replaces the display text of an item. OriginalText is kept.
func (s *Store) ApplyEdit(id int64, text string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.items[i].Text = text
	return true
}

func (s *Store) Get(id int64) (model.Item, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// IndexOf returns the position of id, or -1.
func (s *Store) IndexOf(id int64) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }
