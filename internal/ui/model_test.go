package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/kv"
	"github.com/faizmokh/vibe/internal/mood"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, categories ...mood.Category) (Model, *journal.Store, *fakeClock) {
	t.Helper()
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)}
	store := journal.New(kv.NewMemorySlot(), journal.WithClock(clock.Now))
	for _, c := range categories {
		if _, err := store.Add(ctx, journal.Draft{Category: c}); err != nil {
			t.Fatalf("Add: %v", err)
		}
		clock.now = clock.now.Add(time.Hour)
	}
	return NewModel(ctx, journal.NewSession(store), mood.NewRand(3)), store, clock
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		next, _ := m.Update(keyMsg(key))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestNewModelStartsOnCaptureWhenEmpty(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.tab != tabCapture {
		t.Fatalf("tab = %v, want capture", m.tab)
	}
	view := m.View()
	if !strings.Contains(view, "How are you feeling?") {
		t.Fatalf("view missing grid prompt:\n%s", view)
	}
	if !strings.Contains(view, "😊 happy") {
		t.Fatalf("view missing happy cell:\n%s", view)
	}
}

func TestNewModelStartsOnCurrentWithEntries(t *testing.T) {
	m, _, _ := newTestModel(t, mood.Happy, mood.Calm)

	if m.tab != tabCurrent {
		t.Fatalf("tab = %v, want current", m.tab)
	}
	view := m.View()
	if !strings.Contains(view, "😌 serene") {
		t.Fatalf("view missing current entry:\n%s", view)
	}
	if !strings.Contains(view, "Listen: ") {
		t.Fatalf("view missing track suggestion:\n%s", view)
	}
}

func TestCaptureFlowAddsEntry(t *testing.T) {
	m, store, _ := newTestModel(t)

	// Move to calm, pick it, type a label and a note.
	m = press(t, m, "l", "enter", "after tea", "enter", "quiet morning", "enter")

	if store.Len() != 1 {
		t.Fatalf("store.Len() = %d, want 1", store.Len())
	}
	entry, _ := store.Current()
	if entry.Category != mood.Calm || entry.Label != "after tea" || entry.Note != "quiet morning" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if m.tab != tabCurrent || m.stage != stageCategory {
		t.Fatalf("tab=%v stage=%v after capture", m.tab, m.stage)
	}
	if !strings.Contains(m.statusLine, "Captured 😌 after tea") {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestCaptureBlankLabelUsesDefault(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(t, m, "j", "enter", "enter", "enter")

	entry, ok := store.Current()
	if !ok {
		t.Fatalf("expected an entry")
	}
	if entry.Category != mood.Peaceful || entry.Label != "harmonious" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestCaptureCustomRequiresLabel(t *testing.T) {
	m, store, _ := newTestModel(t)

	// Custom sits at the end of the second row.
	m = press(t, m, "j", "l", "l", "l", "l", "enter", "enter")

	if m.stage != stageLabel {
		t.Fatalf("stage = %v, want label", m.stage)
	}
	if m.errorLine == "" {
		t.Fatalf("expected an error for empty custom label")
	}

	m = press(t, m, "Focused", "enter", "enter")
	entry, ok := store.Current()
	if !ok || entry.Category != mood.Custom || entry.Emoji != mood.CustomEmoji {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestCaptureEscapeCancels(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, "enter", "typing q does not quit", "esc")

	if m.stage != stageCategory {
		t.Fatalf("stage = %v, want category", m.stage)
	}
	if store.Len() != 0 {
		t.Fatalf("store.Len() = %d, want 0", store.Len())
	}
}

func TestGridCursorStaysInBounds(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "h", "k")
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	m = press(t, m, "j", "j", "l", "l", "l", "l", "l")
	if m.cursor != len(m.categories)-1 {
		t.Fatalf("cursor = %d, want %d", m.cursor, len(m.categories)-1)
	}
}

func TestHistorySelectShowsEntry(t *testing.T) {
	m, store, _ := newTestModel(t, mood.Happy, mood.Calm, mood.Tired)

	m = press(t, m, "3")
	if m.session.View() != journal.ViewHistory {
		t.Fatalf("session view = %v, want history", m.session.View())
	}

	m = press(t, m, "j", "j", "enter")

	if m.tab != tabCurrent {
		t.Fatalf("tab = %v, want current", m.tab)
	}
	displayed, _ := m.session.Displayed()
	if displayed.Category != mood.Happy {
		t.Fatalf("displayed = %v, want happy", displayed.Category)
	}
	current, _ := store.Current()
	if current.Category != mood.Tired {
		t.Fatalf("store current = %v, want tired", current.Category)
	}
	if !strings.Contains(m.View(), "(from history)") {
		t.Fatalf("view should mark the selected entry")
	}
}

func TestHistoryDeleteConfirmation(t *testing.T) {
	m, store, _ := newTestModel(t, mood.Happy, mood.Calm)

	m = press(t, m, "3", "d")
	if !m.confirmDelete {
		t.Fatalf("expected delete confirmation")
	}
	if !strings.Contains(m.View(), "Delete 😌 serene?") {
		t.Fatalf("view missing confirmation:\n%s", m.View())
	}

	m = press(t, m, "n")
	if store.Len() != 2 {
		t.Fatalf("store.Len() = %d after cancel, want 2", store.Len())
	}

	m = press(t, m, "d", "y")
	if store.Len() != 1 {
		t.Fatalf("store.Len() = %d after delete, want 1", store.Len())
	}
	current, _ := store.Current()
	if current.Category != mood.Happy {
		t.Fatalf("current = %v, want happy", current.Category)
	}

	m = press(t, m, "d", "y")
	if store.Len() != 0 {
		t.Fatalf("store.Len() = %d, want 0", store.Len())
	}
	if m.session.View() != journal.ViewHistory {
		t.Fatalf("session view = %v, want history", m.session.View())
	}
	if !strings.Contains(m.View(), "(no entries)") {
		t.Fatalf("view should show empty history:\n%s", m.View())
	}

	m = press(t, m, "2")
	if m.session.View() != journal.ViewEmpty {
		t.Fatalf("session view = %v, want empty", m.session.View())
	}
}

func TestPersistFailureIsShown(t *testing.T) {
	ctx := context.Background()
	slot := kv.NewMemorySlot()
	slot.Limit = 1
	store := journal.New(slot)
	m := NewModel(ctx, journal.NewSession(store), mood.NewRand(1))

	m = press(t, m, "enter", "enter", "enter")

	if store.Len() != 1 {
		t.Fatalf("store.Len() = %d, want 1", store.Len())
	}
	if !strings.HasPrefix(m.errorLine, "Not saved: ") {
		t.Fatalf("errorLine = %q", m.errorLine)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
