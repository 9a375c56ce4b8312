// Package editor tracks the single in-progress edit of a todo item.
//
// The state is either Idle or Editing. A draft only exists together with the
// id it belongs to, so "draft text with no item" cannot be represented.
package editor

// State is Idle or Editing.
type State interface {
	isState()
}

// Idle means no item is being edited.
type Idle struct{}

// Editing holds the item being edited, the working draft and the text that
// undo restores.
type Editing struct {
	ID       int64
	Draft    string
	Original string
}

func (Idle) isState()    {}
func (Editing) isState() {}

// Machine is the edit state machine. The zero value is Idle.
type Machine struct {
	state State
}

func (m *Machine) State() State {
	if m.state == nil {
		return Idle{}
	}
	return m.state
}

// Editing returns the current edit, if any.
func (m *Machine) Editing() (Editing, bool) {
	e, ok := m.state.(Editing)
	return e, ok
}

// Start begins editing id with draft text. Any edit already in progress is
// dropped without being saved.
func (m *Machine) Start(id int64, text, original string) {
	m.state = Editing{ID: id, Draft: text, Original: original}
}

// Type replaces the draft.
func (m *Machine) Type(draft string) bool {
	e, ok := m.Editing()
	if !ok {
		return false
	}
	e.Draft = draft
	m.state = e
	return true
}

// Undo puts the original text back into the draft. Editing continues.
func (m *Machine) Undo() bool {
	e, ok := m.Editing()
	if !ok {
		return false
	}
	e.Draft = e.Original
	m.state = e
	return true
}

// Save ends the edit and returns it so the caller can commit the draft.
func (m *Machine) Save() (Editing, bool) {
	e, ok := m.Editing()
	if !ok {
		return Editing{}, false
	}
	m.state = Idle{}
	return e, true
}

// Cancel ends the edit without committing anything.
func (m *Machine) Cancel() bool {
	if _, ok := m.Editing(); !ok {
		return false
	}
	m.state = Idle{}
	return true
}

// Discard cancels the edit only if it targets id.
func (m *Machine) Discard(id int64) bool {
	e, ok := m.Editing()
	if !ok || e.ID != id {
		return false
	}
	m.state = Idle{}
	return true
}
