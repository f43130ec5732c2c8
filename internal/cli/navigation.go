package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/mood"
)

func newHistoryCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every captured mood, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limitFlag < 0 {
				return fmt.Errorf("limit must be zero or a positive integer")
			}

			entries := store.Entries()
			if len(entries) == 0 {
				emptyJournalHint(cmd)
				return nil
			}
			if limitFlag > 0 && len(entries) > limitFlag {
				entries = entries[:limitFlag]
			}
			printEntries(cmd, entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Show at most N entries (0 = all)")

	return cmd
}

func newRecentCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	var daysFlag int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List moods captured within the last few days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if daysFlag <= 0 {
				return fmt.Errorf("days must be a positive integer")
			}

			entries := store.Recent(daysFlag)
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No moods in the last %d day%s\n", daysFlag, plural(daysFlag))
				return nil
			}
			printEntries(cmd, entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&daysFlag, "days", journal.DefaultWindowDays, "Number of days to look back")

	return cmd
}

func newShowCommand(ctx context.Context, store *journal.Store, rng *rand.Rand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry by id or id prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(store, args[0])
			if err != nil {
				if errors.Is(err, journal.ErrNotFound) {
					return fmt.Errorf("%w: %s", journal.ErrNotFound, id)
				}
				return err
			}

			entry, _ := store.Get(id)
			printEntryDetail(cmd.OutOrStdout(), entry, mood.Suggest(entry.Category, rng))
			return nil
		},
	}

	return cmd
}

func newStatsCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	var daysFlag int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count moods per category over the last few days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if daysFlag <= 0 {
				return fmt.Errorf("days must be a positive integer")
			}

			summary := store.Summary(daysFlag)
			out := cmd.OutOrStdout()
			total := 0
			for _, row := range summary {
				total += row.Count
			}
			fmt.Fprintf(out, "Last %d day%s: %d entr%s\n", daysFlag, plural(daysFlag), total, pluralEntry(total))
			for _, row := range summary {
				p := mood.Lookup(row.Category)
				fmt.Fprintf(out, "%s %-10s %3d %s\n", p.Emoji, row.Category, row.Count, strings.Repeat("#", row.Count))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&daysFlag, "days", journal.DefaultWindowDays, "Number of days to look back")

	return cmd
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func pluralEntry(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
