package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/editor"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// Session owns everything a running todo list needs: the items, the pending
// text of the add input and the edit in progress. Every user action maps to
// one method. Nothing here returns an error; invalid ids and blank input are
// silently ignored and reported as false.
type Session struct {
	store  *store.Store
	editor editor.Machine
	input  string
	log    *log.Logger
}

// New returns a session over st. A nil store gets a fresh one and a nil
// logger discards everything.
func New(st *store.Store, logger *log.Logger) *Session {
	if st == nil {
		st = store.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{store: st, log: logger}
}

// SetInput records the current contents of the add input.
func (s *Session) SetInput(text string) { s.input = text }

func (s *Session) Input() string { return s.input }

// Submit adds the pending input as a new item and clears the input. Blank
// input is left in place and nothing is added.
func (s *Session) Submit() (model.Item, bool) {
	it, ok := s.store.Add(s.input)
	if !ok {
		s.log.Debug("add rejected", "reason", "blank")
		return model.Item{}, false
	}
	s.input = ""
	s.log.Debug("added", "id", it.ID, "len", s.store.Len())
	return it, true
}

// Delete removes an item. Deleting the item being edited also ends the edit.
func (s *Session) Delete(id int64) bool {
	if !s.store.Delete(id) {
		return false
	}
	if s.editor.Discard(id) {
		s.log.Debug("edit discarded", "id", id, "reason", "deleted")
	}
	s.log.Debug("deleted", "id", id, "len", s.store.Len())
	return true
}

// StartEdit opens id for editing with its current text as the draft. Undo
// will restore the text the item was created with. An edit already open on
// another item is dropped.
func (s *Session) StartEdit(id int64) bool {
	it, ok := s.store.Get(id)
	if !ok {
		return false
	}
	if prev, editing := s.editor.Editing(); editing && prev.ID != id {
		s.log.Debug("edit discarded", "id", prev.ID, "reason", "switched")
	}
	original := it.OriginalText
	if original == "" {
		original = it.Text
	}
	s.editor.Start(id, it.Text, original)
	s.log.Debug("edit started", "id", id)
	return true
}

// Type replaces the draft of the open edit.
func (s *Session) Type(draft string) bool { return s.editor.Type(draft) }

// Undo restores the draft to the item's original text and keeps editing.
func (s *Session) Undo() bool {
	if !s.editor.Undo() {
		return false
	}
	s.log.Debug("edit undone")
	return true
}

// Save writes the draft into the item and closes the edit.
func (s *Session) Save() bool {
	e, ok := s.editor.Save()
	if !ok {
		return false
	}
	s.store.ApplyEdit(e.ID, e.Draft)
	s.log.Debug("edit saved", "id", e.ID)
	return true
}

// Cancel closes the edit and leaves the item as it was.
func (s *Session) Cancel() bool {
	if !s.editor.Cancel() {
		return false
	}
	s.log.Debug("edit cancelled")
	return true
}

func (s *Session) Items() []model.Item { return s.store.Items() }

func (s *Session) Len() int { return s.store.Len() }

func (s *Session) Editor() editor.State { return s.editor.State() }

func (s *Session) Editing() (editor.Editing, bool) { return s.editor.Editing() }
