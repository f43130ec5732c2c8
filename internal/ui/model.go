package ui

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/mood"
)

const (
	gridColumns     = 5
	noteLimit       = 280
	timestampLayout = "2006-01-02 15:04"
)

// Model owns Bubble Tea state for the journal TUI.
type Model struct {
	ctx     context.Context
	session *journal.Session
	rng     *rand.Rand

	tab        tab
	stage      stage
	categories []mood.Category
	cursor     int
	label      textinput.Model
	note       textinput.Model

	historyCursor int
	confirmDelete bool

	suggestion   mood.Suggestion
	suggestionID string

	width      int
	statusLine string
	errorLine  string
}

type tab uint8

const (
	tabCapture tab = iota
	tabCurrent
	tabHistory
	tabCount
)

var tabNames = [tabCount]string{"Capture", "Current", "History"}

type stage uint8

const (
	stageCategory stage = iota
	stageLabel
	stageNote
)

// NewModel builds the TUI over session. rng drives quote and track suggestions.
func NewModel(ctx context.Context, session *journal.Session, rng *rand.Rand) Model {
	label := textinput.New()
	label.Prompt = "Label: "
	label.CharLimit = journal.MaxLabelLength

	note := textinput.New()
	note.Prompt = "Note: "
	note.Placeholder = "optional"
	note.CharLimit = noteLimit

	m := Model{
		ctx:        ctx,
		session:    session,
		rng:        rng,
		categories: mood.Categories(),
		label:      label,
		note:       note,
	}

	if session.View() == journal.ViewEmpty {
		m.tab = tabCapture
		m.statusLine = "Pick a mood to get started."
	} else {
		m.tab = tabCurrent
		m.refreshSuggestion(false)
	}
	return m
}

// Init has nothing to load; the journal is read before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m.updateInputs(msg)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.typing() {
		return m.handleFormKey(msg)
	}
	if m.confirmDelete {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.switchTab((m.tab + 1) % tabCount)
	case "shift+tab":
		return m.switchTab((m.tab + tabCount - 1) % tabCount)
	case "1":
		return m.switchTab(tabCapture)
	case "2":
		return m.switchTab(tabCurrent)
	case "3":
		return m.switchTab(tabHistory)
	}

	switch m.tab {
	case tabCapture:
		return m.handleGridKey(msg)
	case tabCurrent:
		if msg.String() == "r" {
			m.refreshSuggestion(true)
			m.statusLine = "New suggestion."
			m.errorLine = ""
		}
		return m, nil
	case tabHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) typing() bool {
	return m.tab == tabCapture && m.stage != stageCategory
}

func (m Model) switchTab(next tab) (tea.Model, tea.Cmd) {
	if next == m.tab {
		return m, nil
	}
	if m.tab == tabHistory {
		m.session.Back()
	}
	m.tab = next
	m.errorLine = ""
	m.statusLine = ""

	switch next {
	case tabHistory:
		m.session.Browse()
		m.clampHistory()
	case tabCurrent:
		m.refreshSuggestion(false)
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.categories)
	switch msg.String() {
	case "left", "h":
		if m.cursor%gridColumns > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < n {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-gridColumns >= 0 {
			m.cursor -= gridColumns
		}
	case "down", "j":
		if m.cursor+gridColumns < n {
			m.cursor += gridColumns
		}
	case "enter":
		return m.beginLabel()
	}
	return m, nil
}

func (m Model) beginLabel() (tea.Model, tea.Cmd) {
	category := m.categories[m.cursor]
	m.stage = stageLabel
	m.errorLine = ""
	m.statusLine = ""
	if category == mood.Custom {
		m.label.Placeholder = "required"
	} else {
		m.label.Placeholder = mood.Lookup(category).DefaultLabel()
	}
	m.note.Blur()
	cmd := m.label.Focus()
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.formBack()
	case tea.KeyEnter:
		if m.stage == stageLabel {
			return m.beginNote()
		}
		return m.submitCapture()
	}
	return m.updateInputs(msg)
}

func (m Model) formBack() (tea.Model, tea.Cmd) {
	m.errorLine = ""
	switch m.stage {
	case stageNote:
		m.stage = stageLabel
		m.note.Blur()
		cmd := m.label.Focus()
		return m, cmd
	default:
		m.stage = stageCategory
		m.label.Blur()
		m.statusLine = "Capture cancelled."
		return m, nil
	}
}

func (m Model) beginNote() (tea.Model, tea.Cmd) {
	if m.categories[m.cursor] == mood.Custom && strings.TrimSpace(m.label.Value()) == "" {
		m.errorLine = "A custom mood needs a label."
		return m, nil
	}
	m.stage = stageNote
	m.errorLine = ""
	m.label.Blur()
	cmd := m.note.Focus()
	return m, cmd
}

func (m Model) submitCapture() (tea.Model, tea.Cmd) {
	entry, err := m.session.Capture(m.ctx, journal.Draft{
		Category: m.categories[m.cursor],
		Label:    m.label.Value(),
		Note:     m.note.Value(),
	})
	if err != nil {
		m.errorLine = err.Error()
		if errors.Is(err, journal.ErrLabelRequired) || errors.Is(err, journal.ErrLabelTooLong) {
			m.stage = stageLabel
			m.note.Blur()
			cmd := m.label.Focus()
			return m, cmd
		}
		return m, nil
	}

	m.resetForm()
	m.tab = tabCurrent
	m.refreshSuggestion(false)
	m.statusLine = fmt.Sprintf("Captured %s %s.", entry.Emoji, entry.Label)
	m.errorLine = persistWarning(m.session.Store())
	return m, nil
}

func (m *Model) resetForm() {
	m.stage = stageCategory
	m.label.Reset()
	m.label.Blur()
	m.note.Reset()
	m.note.Blur()
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stage {
	case stageLabel:
		m.label, cmd = m.label.Update(msg)
	case stageNote:
		m.note, cmd = m.note.Update(msg)
	}
	return m, cmd
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.session.Store().Entries()
	if len(entries) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "down", "j":
		if m.historyCursor < len(entries)-1 {
			m.historyCursor++
		}
	case "up", "k":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case "enter":
		entry := entries[m.historyCursor]
		if err := m.session.Select(entry.ID); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		m.tab = tabCurrent
		m.refreshSuggestion(false)
		m.statusLine = fmt.Sprintf("Showing %s from %s.", entry.Label, entry.Timestamp.Local().Format(timestampLayout))
		m.errorLine = ""
	case "d":
		m.confirmDelete = true
		m.statusLine = ""
		m.errorLine = ""
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		entries := m.session.Store().Entries()
		if m.historyCursor >= len(entries) {
			return m, nil
		}
		entry := entries[m.historyCursor]
		m.session.Delete(m.ctx, entry.ID)
		m.clampHistory()
		m.statusLine = fmt.Sprintf("Deleted %s %s.", entry.Emoji, entry.Label)
		m.errorLine = persistWarning(m.session.Store())
	case "n", "N", "esc":
		m.confirmDelete = false
		m.statusLine = "Delete cancelled."
	}
	return m, nil
}

func (m *Model) clampHistory() {
	n := m.session.Store().Len()
	if m.historyCursor >= n {
		m.historyCursor = n - 1
	}
	if m.historyCursor < 0 {
		m.historyCursor = 0
	}
}

// refreshSuggestion draws a new quote and track when the displayed entry
// changed, or always when force is set.
func (m *Model) refreshSuggestion(force bool) {
	entry, ok := m.session.Displayed()
	if !ok {
		m.suggestion = mood.Suggestion{}
		m.suggestionID = ""
		return
	}
	if !force && entry.ID == m.suggestionID {
		return
	}
	m.suggestion = mood.Suggest(entry.Category, m.rng)
	m.suggestionID = entry.ID
}

func persistWarning(store *journal.Store) string {
	if err := store.PersistError(); err != nil {
		return "Not saved: " + err.Error()
	}
	return ""
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("vibe"))
	b.WriteString("  ")
	for t := tab(0); t < tabCount; t++ {
		if t == m.tab {
			b.WriteString(activeTabStyle.Render(tabNames[t]))
		} else {
			b.WriteString(tabStyle.Render(tabNames[t]))
		}
	}
	b.WriteByte('\n')
	width := m.width
	if width <= 0 || width > 60 {
		width = 40
	}
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n\n")

	switch m.tab {
	case tabCapture:
		m.viewCapture(&b)
	case tabCurrent:
		m.viewCurrent(&b)
	case tabHistory:
		m.viewHistory(&b)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	}
	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) viewCapture(b *strings.Builder) {
	if m.stage == stageCategory {
		b.WriteString("How are you feeling?\n\n")
		for i, c := range m.categories {
			cell := fmt.Sprintf("%s %-10s", mood.Lookup(c).Emoji, c)
			if i == m.cursor {
				b.WriteString("> ")
				b.WriteString(moodStyle(c).Render(cell))
			} else {
				b.WriteString("  ")
				b.WriteString(cell)
			}
			if i%gridColumns == gridColumns-1 || i == len(m.categories)-1 {
				b.WriteByte('\n')
			}
		}
		return
	}

	c := m.categories[m.cursor]
	b.WriteString("Mood: ")
	b.WriteString(moodStyle(c).Render(mood.Lookup(c).Emoji + " " + c.String()))
	b.WriteString("\n\n")
	b.WriteString(m.label.View())
	b.WriteByte('\n')
	if m.stage == stageNote {
		b.WriteString(m.note.View())
		b.WriteByte('\n')
	}
}

func (m Model) viewCurrent(b *strings.Builder) {
	entry, ok := m.session.Displayed()
	if !ok {
		b.WriteString("No mood captured yet. Press 1 to capture one.\n")
		return
	}

	b.WriteString(moodStyle(entry.Category).Render(entry.Emoji + " " + entry.Label))
	if m.session.Selected() {
		b.WriteString("  (from history)")
	}
	b.WriteByte('\n')
	fmt.Fprintf(b, "%s · %s\n", entry.Category, entry.Timestamp.Local().Format(timestampLayout))
	if entry.Note != "" {
		fmt.Fprintf(b, "\n%s\n", entry.Note)
	}
	if keywords := entry.Keywords(); len(keywords) > 0 {
		fmt.Fprintf(b, "\nKeywords: %s\n", strings.Join(keywords, ", "))
	}

	if m.suggestionID != entry.ID {
		return
	}
	if q := m.suggestion.Quote; q.Text != "" {
		b.WriteString("\n")
		b.WriteString(quoteStyle.Render(fmt.Sprintf("%q", q.Text)))
		if q.Author != "" {
			fmt.Fprintf(b, " (%s)", q.Author)
		}
		b.WriteByte('\n')
	}
	if t := m.suggestion.Track; t.Title != "" {
		fmt.Fprintf(b, "\nListen: %s by %s (%s)\n", t.Title, t.Artist, t.Genre)
		if t.Description != "" {
			fmt.Fprintf(b, "%s\n", t.Description)
		}
	}
}

func (m Model) viewHistory(b *strings.Builder) {
	entries := m.session.Store().Entries()
	if len(entries) == 0 {
		b.WriteString("(no entries)\n")
		return
	}

	for i, entry := range entries {
		cursor := " "
		if i == m.historyCursor {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s %s", entry.Timestamp.Local().Format(timestampLayout), entry.Emoji, entry.Label)
		b.WriteString(cursor)
		b.WriteByte(' ')
		if i == m.historyCursor {
			b.WriteString(moodStyle(entry.Category).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}

	if m.confirmDelete && m.historyCursor < len(entries) {
		entry := entries[m.historyCursor]
		fmt.Fprintf(b, "\nDelete %s %s? (y/n, Esc to cancel)\n", entry.Emoji, entry.Label)
	}
}

func (m Model) help() string {
	switch {
	case m.typing() && m.stage == stageLabel:
		return "Enter next  Esc back  ctrl+c quit"
	case m.typing():
		return "Enter save  Esc back  ctrl+c quit"
	case m.tab == tabCapture:
		return "arrows/hjkl pick  Enter choose  tab switch  q quit"
	case m.tab == tabCurrent:
		return "r new suggestion  tab switch  q quit"
	default:
		return "j/k move  Enter show  d delete  tab switch  q quit"
	}
}
