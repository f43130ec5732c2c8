package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/vibe/internal/config"
	"github.com/faizmokh/vibe/internal/files"
	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/ui"
)

// journalAnnotation marks commands that read or write the journal. Only these
// open the config, base directory and storage backend.
const journalAnnotation = "vibe/journal"

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, store *journal.Store, rng *rand.Rand) *cobra.Command {
	cmd := withJournal(&cobra.Command{
		Use:   "vibe",
		Short: "Capture your mood and get a matching quote and soundtrack.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, journal.NewSession(store), rng)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	})

	cmd.AddCommand(
		withJournal(newCaptureCommand(ctx, store)),
		withJournal(newDeleteCommand(ctx, store)),
		withJournal(newCurrentCommand(ctx, store, rng)),
		withJournal(newTodayCommand(ctx, store)),
		withJournal(newHistoryCommand(ctx, store)),
		withJournal(newRecentCommand(ctx, store)),
		withJournal(newShowCommand(ctx, store, rng)),
		withJournal(newStatsCommand(ctx, store)),
		withJournal(newExportCommand(ctx, store)),
		newMoodsCommand(),
		newVersionCommand(),
	)

	return cmd
}

func withJournal(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string)
	}
	cmd.Annotations[journalAnnotation] = "true"
	return cmd
}

func needsJournal(cmd *cobra.Command) bool {
	return cmd.Annotations[journalAnnotation] == "true"
}

// ExecuteCommand runs the Cobra root command against the process arguments.
func ExecuteCommand(ctx context.Context) error {
	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// execute builds the command tree over placeholder collaborators. They are
// filled in from configuration once cobra has picked a journal command.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		store = new(journal.Store)
		rng   = new(rand.Rand)
		a     *app
	)

	cmd := NewRootCommand(ctx, store, rng)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !needsJournal(cmd) {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		manager, err := files.NewManager("")
		if err != nil {
			return err
		}
		a, err = openApp(ctx, cfg, manager)
		if err != nil {
			return err
		}
		*store = *a.store
		*rng = *a.rng
		return nil
	}

	err := cmd.Execute()
	if a != nil {
		err = errors.Join(err, a.Close())
	}
	return err
}

// Main is a helper used by cmd/vibe/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
