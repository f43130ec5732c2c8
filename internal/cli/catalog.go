package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/mood"
	"github.com/faizmokh/vibe/internal/version"
)

func newMoodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the mood categories you can capture.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range mood.Categories() {
				p := mood.Lookup(c)
				fmt.Fprintf(out, "%s %-10s %s\n", p.Emoji, c, strings.Join(p.Keywords, ", "))
			}
			return nil
		},
	}

	return cmd
}

func newExportCommand(ctx context.Context, store *journal.Store) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole journal to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := journal.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			return journal.Export(cmd.OutOrStdout(), store.Entries(), format)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", string(journal.FormatJSON), "json, yaml or markdown")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
