package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/mood"
)

const (
	timestampLayout = "2006-01-02 15:04"
	shortIDLength   = 8
)

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func formatEntry(entry journal.Entry) string {
	var builder strings.Builder
	builder.Grow(48 + len(entry.Label) + len(entry.Note))

	builder.WriteString(entry.Timestamp.Local().Format(timestampLayout))
	builder.WriteByte(' ')
	builder.WriteString(entry.Emoji)
	builder.WriteByte(' ')
	builder.WriteString(entry.Label)
	fmt.Fprintf(&builder, " [%s]", entry.Category)

	if entry.Note != "" {
		fmt.Fprintf(&builder, " %q", entry.Note)
	}

	return builder.String()
}

func printEntries(cmd *cobra.Command, entries []journal.Entry) {
	out := cmd.OutOrStdout()
	for i, entry := range entries {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, formatEntry(entry), shortID(entry.ID))
	}
}

func printEntryDetail(w io.Writer, entry journal.Entry, suggestion mood.Suggestion) {
	fmt.Fprintf(w, "%s %s\n", entry.Emoji, entry.Label)
	fmt.Fprintf(w, "Category: %s\n", entry.Category)
	fmt.Fprintf(w, "Captured: %s\n", entry.Timestamp.Local().Format(timestampLayout))
	if entry.Note != "" {
		fmt.Fprintf(w, "Note: %s\n", entry.Note)
	}
	if keywords := entry.Keywords(); len(keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n", strings.Join(keywords, ", "))
	}
	if quote := suggestion.Quote; quote.Text != "" {
		fmt.Fprintf(w, "Quote: %s\n", formatQuote(quote))
	}
	if track := suggestion.Track; track.Title != "" {
		fmt.Fprintf(w, "Music: %s\n", formatTrack(track))
	}
	fmt.Fprintf(w, "ID: %s\n", entry.ID)
}

func formatQuote(q mood.Quote) string {
	if q.Author == "" {
		return fmt.Sprintf("%q", q.Text)
	}
	return fmt.Sprintf("%q (%s)", q.Text, q.Author)
}

func formatTrack(t mood.Track) string {
	s := fmt.Sprintf("%s by %s (%s)", t.Title, t.Artist, t.Genre)
	if t.Description != "" {
		s += ": " + t.Description
	}
	return s
}

// warnIfUnsaved reports a failed write; the command still succeeds.
func warnIfUnsaved(cmd *cobra.Command, store *journal.Store) {
	if err := store.PersistError(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: journal was not saved: %v\n", err)
	}
}

// resolveID accepts a full id or an unambiguous prefix of one.
func resolveID(store *journal.Store, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("id is required")
	}
	if _, ok := store.Get(input); ok {
		return input, nil
	}

	var matches []string
	for _, entry := range store.Entries() {
		if strings.HasPrefix(entry.ID, input) {
			matches = append(matches, entry.ID)
		}
	}
	switch len(matches) {
	case 0:
		return input, journal.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func emptyJournalHint(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "No mood captured yet. Try `vibe capture happy`.")
}
