package cli

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/mood"
)

func newCurrentCommand(ctx context.Context, store *journal.Store, rng *rand.Rand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the latest mood with a quote and a music suggestion.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := store.Current()
			if !ok {
				emptyJournalHint(cmd)
				return nil
			}
			printEntryDetail(cmd.OutOrStdout(), entry, mood.Suggest(entry.Category, rng))
			return nil
		},
	}

	return cmd
}

func newTodayCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the most recent mood captured today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := store.Today()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No mood captured today")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatEntry(entry))
			return nil
		},
	}

	return cmd
}
