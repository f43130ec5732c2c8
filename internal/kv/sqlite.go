package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

const busyRetries = 3

// SQLiteSlot stores the blob as one row of the slots table.
type SQLiteSlot struct {
	db    *sql.DB
	key   string
	limit int64
}

// OpenSQLite opens (or creates) a SQLite database at path with WAL journaling.
func OpenSQLite(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(250)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewSQLiteSlot ensures the schema exists and returns a slot addressed by key.
func NewSQLiteSlot(ctx context.Context, db *sql.DB, key string, limit int64) (*SQLiteSlot, error) {
	if db == nil {
		return nil, errors.New("kv: nil database")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure slots schema: %w", err)
	}
	return &SQLiteSlot{db: db, key: key, limit: limit}, nil
}

// Read returns the stored value, or ErrAbsent when the key has no row.
func (s *SQLiteSlot) Read(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAbsent
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	return data, nil
}

// Write upserts the value. A busy database is retried a few times before giving up.
func (s *SQLiteSlot) Write(ctx context.Context, data []byte) error {
	if err := checkQuota(s.limit, data); err != nil {
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond
	policy.MaxInterval = 200 * time.Millisecond

	op := func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			s.key, data, time.Now().UTC().Format(time.RFC3339Nano),
		)
		if err != nil && !isBusy(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, busyRetries), ctx)); err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

func isBusy(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	code := serr.Code() & 0xff
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}
