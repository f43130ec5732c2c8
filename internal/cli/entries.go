package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/mood"
)

func newCaptureCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	var (
		noteFlag  string
		emojiFlag string
	)

	cmd := &cobra.Command{
		Use:   "capture <category> [label ...]",
		Short: "Record how you feel right now.",
		Long: "capture adds a new mood entry. The label defaults to the category's first keyword; " +
			"the custom category requires one.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := mood.ParseCategory(args[0])
			if err != nil {
				return err
			}

			entry, err := store.Add(ctx, journal.Draft{
				Category: category,
				Label:    strings.Join(args[1:], " "),
				Emoji:    emojiFlag,
				Note:     noteFlag,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Captured %s (%s)\n", formatEntry(entry), shortID(entry.ID))
			warnIfUnsaved(cmd, store)
			return nil
		},
	}

	cmd.Flags().StringVar(&noteFlag, "note", "", "Optional note to keep with the entry")
	cmd.Flags().StringVar(&emojiFlag, "emoji", "", "Override the category's emoji")

	return cmd
}

func newDeleteCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an entry by id or id prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(store, args[0])
			if errors.Is(err, journal.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			entry, _ := store.Get(id)
			if !store.Delete(ctx, id) {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s\n", id)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", formatEntry(entry))
			if current, ok := store.Current(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Current: %s\n", formatEntry(current))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Journal is now empty.")
			}
			warnIfUnsaved(cmd, store)
			return nil
		},
	}

	return cmd
}
