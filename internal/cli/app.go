package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"

	"github.com/faizmokh/vibe/internal/config"
	"github.com/faizmokh/vibe/internal/files"
	"github.com/faizmokh/vibe/internal/journal"
	"github.com/faizmokh/vibe/internal/kv"
	"github.com/faizmokh/vibe/internal/logger"
	"github.com/faizmokh/vibe/internal/mood"
)

// slotKey addresses the journal inside the sqlite slots table.
const slotKey = "journal"

// stderrLog is the VIBE_LOG_FILE value that sends log lines to stderr.
const stderrLog = "-"

// app bundles the long-lived collaborators built once per process.
type app struct {
	store   *journal.Store
	rng     *rand.Rand
	log     zerolog.Logger
	closers []io.Closer
}

func openApp(ctx context.Context, cfg *config.Config, manager *files.Manager) (*app, error) {
	if err := manager.EnsureBase(); err != nil {
		return nil, err
	}

	a := &app{rng: mood.NewRand(cfg.Seed)}

	out, err := logOutput(cfg, manager)
	if err != nil {
		return nil, err
	}
	if c, ok := out.(io.Closer); ok && out != os.Stderr {
		a.closers = append(a.closers, c)
	}
	a.log, err = logger.New(out, cfg.LogLevel)
	if err != nil {
		a.Close()
		return nil, err
	}

	slot, err := openSlot(ctx, cfg, manager)
	if err != nil {
		a.Close()
		return nil, err
	}
	if c, ok := slot.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}

	a.store = journal.New(slot, journal.WithLogger(a.log))
	a.store.Load(ctx)
	a.log.Debug().
		Str("backend", string(cfg.Backend)).
		Str("base", manager.BasePath()).
		Int("entries", a.store.Len()).
		Msg("journal opened")
	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	return errors.Join(errs...)
}

func logOutput(cfg *config.Config, manager *files.Manager) (io.Writer, error) {
	switch cfg.LogFile {
	case stderrLog:
		return os.Stderr, nil
	case "":
		return logger.OpenFile(manager.LogPath())
	default:
		return logger.OpenFile(cfg.LogFile)
	}
}

func openSlot(ctx context.Context, cfg *config.Config, manager *files.Manager) (kv.Slot, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := kv.OpenSQLite(manager.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		slot, err := kv.NewSQLiteSlot(ctx, db, slotKey, cfg.QuotaBytes)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return slot, nil
	default:
		return kv.NewFileSlot(manager.JournalPath(), cfg.QuotaBytes), nil
	}
}
