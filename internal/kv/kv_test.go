package kv

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlotReadMissingIsAbsent(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "journal.json"), 0)

	_, err := slot.Read(context.Background())
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestFileSlotWriteThenRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "journal.json")
	slot := NewFileSlot(path, 0)

	require.NoError(t, slot.Write(ctx, []byte(`[1]`)))
	require.NoError(t, slot.Write(ctx, []byte(`[1,2]`)))

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestFileSlotKeepsPermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	slot := NewFileSlot(path, 0)
	require.NoError(t, slot.Write(ctx, []byte(`[1]`)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSlotQuotaLeavesPreviousBlob(t *testing.T) {
	ctx := context.Background()
	slot := NewFileSlot(filepath.Join(t.TempDir(), "journal.json"), 4)

	require.NoError(t, slot.Write(ctx, []byte(`[]`)))
	err := slot.Write(ctx, []byte(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemorySlot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	_, err := slot.Read(ctx)
	assert.ErrorIs(t, err, ErrAbsent)

	buf := []byte("abc")
	require.NoError(t, slot.Write(ctx, buf))
	buf[0] = 'x'

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, slot.Writes())

	slot.Limit = 2
	assert.ErrorIs(t, slot.Write(ctx, []byte("long")), ErrQuotaExceeded)

	boom := errors.New("boom")
	slot.WriteErr = boom
	assert.ErrorIs(t, slot.Write(ctx, []byte("a")), boom)
	assert.Equal(t, "abc", string(slot.Bytes()))
}

func TestSQLiteSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "vibe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot, err := NewSQLiteSlot(ctx, db, "journal", 0)
	require.NoError(t, err)

	_, err = slot.Read(ctx)
	assert.ErrorIs(t, err, ErrAbsent)

	require.NoError(t, slot.Write(ctx, []byte(`[{"id":"a"}]`)))
	require.NoError(t, slot.Write(ctx, []byte(`[{"id":"b"}]`)))

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"b"}]`, string(got))

	other, err := NewSQLiteSlot(ctx, db, "other", 0)
	require.NoError(t, err)
	_, err = other.Read(ctx)
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestSQLiteSlotQuota(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "vibe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot, err := NewSQLiteSlot(ctx, db, "journal", 3)
	require.NoError(t, err)
	assert.ErrorIs(t, slot.Write(ctx, []byte("four")), ErrQuotaExceeded)
}

func TestSQLiteSlotRetriesBusyWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vibe.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	slot, err := NewSQLiteSlot(ctx, db, "journal", 0)
	require.NoError(t, err)

	other, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })

	lock := func(t *testing.T) *sql.Conn {
		t.Helper()
		conn, err := other.Conn(ctx)
		require.NoError(t, err)
		_, err = conn.ExecContext(ctx, "BEGIN IMMEDIATE")
		require.NoError(t, err)
		return conn
	}

	t.Run("lock released", func(t *testing.T) {
		conn := lock(t)
		released := make(chan error, 1)
		go func() {
			time.Sleep(100 * time.Millisecond)
			_, err := conn.ExecContext(ctx, "COMMIT")
			released <- errors.Join(err, conn.Close())
		}()

		require.NoError(t, slot.Write(ctx, []byte(`[{"id":"a"}]`)))
		require.NoError(t, <-released)

		got, err := slot.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"a"}]`, string(got))
	})

	t.Run("lock held", func(t *testing.T) {
		conn := lock(t)
		defer func() {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
			_ = conn.Close()
		}()

		start := time.Now()
		err := slot.Write(ctx, []byte(`[{"id":"b"}]`))
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.True(t, isBusy(err), "expected a busy error, got %v", err)
		assert.Less(t, elapsed, 5*time.Second)
	})
}
