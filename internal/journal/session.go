package journal

import (
	"context"
	"fmt"
)

// View is the screen the journal is presented on.
type View uint8

const (
	// ViewEmpty means nothing has been captured yet.
	ViewEmpty View = iota
	// ViewCurrent shows a single entry, the latest unless one was selected.
	ViewCurrent
	// ViewHistory lists every entry.
	ViewHistory
)

func (v View) String() string {
	switch v {
	case ViewEmpty:
		return "empty"
	case ViewCurrent:
		return "current"
	case ViewHistory:
		return "history"
	default:
		return fmt.Sprintf("view(%d)", uint8(v))
	}
}

// Session tracks which entry is on display on top of a Store.
type Session struct {
	store    *Store
	view     View
	selected string
}

// NewSession starts on the current entry, or on the empty view when the store has none.
func NewSession(store *Store) *Session {
	s := &Session{store: store}
	s.settle()
	return s
}

// Store exposes the underlying journal.
func (s *Session) Store() *Store {
	return s.store
}

// View reports the active view.
func (s *Session) View() View {
	return s.view
}

// Capture records a new entry and shows it.
func (s *Session) Capture(ctx context.Context, d Draft) (Entry, error) {
	entry, err := s.store.Add(ctx, d)
	if err != nil {
		return Entry{}, err
	}
	s.selected = ""
	s.view = ViewCurrent
	return entry, nil
}

// Browse switches to the history list.
func (s *Session) Browse() {
	s.view = ViewHistory
}

// Back leaves the history list.
func (s *Session) Back() {
	s.view = ViewCurrent
	s.settle()
}

// Select shows the entry with id. It only changes what is displayed; the
// store's current entry is unaffected.
func (s *Session) Select(id string) error {
	if _, ok := s.store.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.selected = id
	s.view = ViewCurrent
	return nil
}

// Delete removes the entry and re-derives what is displayed.
func (s *Session) Delete(ctx context.Context, id string) bool {
	removed := s.store.Delete(ctx, id)
	if s.selected == id {
		s.selected = ""
	}
	s.settle()
	return removed
}

// Displayed returns the entry the current view is about.
func (s *Session) Displayed() (Entry, bool) {
	if s.selected != "" {
		if e, ok := s.store.Get(s.selected); ok {
			return e, true
		}
	}
	return s.store.Current()
}

// Selected reports whether a history entry, rather than the latest, is on display.
func (s *Session) Selected() bool {
	return s.selected != ""
}

func (s *Session) settle() {
	switch {
	case s.store.Len() == 0 && s.view != ViewHistory:
		s.view = ViewEmpty
	case s.store.Len() > 0 && s.view == ViewEmpty:
		s.view = ViewCurrent
	}
}
