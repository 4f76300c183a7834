package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitjourney/fitsync/internal/config"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

// newSQLiteDB opens a throwaway on-disk database with the full schema
// applied, for tests that exercise real SQLite behaviour (the queue's
// partial-index collapse) instead of a mocked driver.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fitsync.db")
	db, err := NewConnectSQLite(testContext(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestSyncQueue_CollapsesToOnePendingEntry(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncQueueRepository(db, logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpInsert))
	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpUpdate))

	entries, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// The remote has never seen the row, so the entry stays an insert; the
	// collapse still bumps the version.
	assert.Equal(t, models.OpInsert, entries[0].Operation)
	assert.Equal(t, int64(2), entries[0].Version)
}

func TestSyncQueue_InsertThenDeleteCollapsesToDelete(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncQueueRepository(db, logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.Enqueue(ctx, models.TableGoal, "20", models.OpInsert))
	require.NoError(t, repo.Enqueue(ctx, models.TableGoal, "20", models.OpDelete))

	entries, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OpDelete, entries[0].Operation)

	count, err := repo.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSyncQueue_DistinctRowsKeepDistinctEntries(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncQueueRepository(db, logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpInsert))
	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "11", models.OpInsert))
	require.NoError(t, repo.Enqueue(ctx, models.TableGoal, "10", models.OpInsert))

	entries, err := repo.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSyncQueue_MidFlightMutationSurvivesDrainAck(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncQueueRepository(db, logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpUpdate))

	// Drain reads the entry, then a second mutation of the same row lands
	// before the acknowledgement.
	entries, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	drained := entries[0]

	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpUpdate))

	err = repo.MarkSynced(ctx, drained.ID, drained.Version)
	assert.ErrorIs(t, err, ErrEntrySuperseded)
	require.NoError(t, repo.ClearSynced(ctx))

	count, err := repo.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "second mutation must stay pending")

	// The next drain sees the bumped version and can acknowledge it.
	entries, err = repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, drained.ID, entries[0].ID)
	assert.Equal(t, drained.Version+1, entries[0].Version)

	require.NoError(t, repo.MarkSynced(ctx, entries[0].ID, entries[0].Version))
	require.NoError(t, repo.ClearSynced(ctx))

	count, err = repo.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSyncQueue_NewEntryAfterAck(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncQueueRepository(db, logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpInsert))
	entries, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	acked := entries[0]
	require.NoError(t, repo.MarkSynced(ctx, acked.ID, acked.Version))

	// A later mutation opens a fresh entry; the partial index only covers
	// unsynced rows, so the acknowledged one does not block it.
	require.NoError(t, repo.Enqueue(ctx, models.TableWorkout, "10", models.OpUpdate))

	entries, err = repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEqual(t, acked.ID, entries[0].ID)
	assert.Equal(t, models.OpUpdate, entries[0].Operation)
	assert.Equal(t, int64(1), entries[0].Version)
}
