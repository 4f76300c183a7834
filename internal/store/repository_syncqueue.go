package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

type syncQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	return &syncQueueRepository{
		DB:     db,
		logger: logger,
	}
}

// enqueueTx appends (or collapses into) a pending queue entry inside an open
// feature transaction. Every mutating repository method in this package calls
// it before committing, which is what enforces the dual-write invariant.
func enqueueTx(ctx context.Context, tx *sql.Tx, table, rowID string, op models.Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, enqueueEntry, table, rowID, op); err != nil {
		return fmt.Errorf("failed to enqueue %s change for %s/%s: %w", op, table, rowID, err)
	}

	return nil
}

// rowIDString converts a local integer id to the remote document key form.
func rowIDString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (r *syncQueueRepository) Enqueue(ctx context.Context, table, rowID string, op models.Operation) error {
	log := logger.FromContext(ctx)

	if err := op.Validate(); err != nil {
		return err
	}

	_, err := r.DB.ExecContext(ctx, enqueueEntry, table, rowID, op)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("table", table).
			Str("row_id", rowID).
			Msg("failed to execute queue upsert")
		return fmt.Errorf("failed to enqueue %s change for %s/%s: %w", op, table, rowID, err)
	}

	return nil
}

func (r *syncQueueRepository) Pending(ctx context.Context) ([]models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getPendingEntries)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Pending").
			Msg("failed to execute query for pending entries")
		return nil, fmt.Errorf("failed to query pending entries: %w", err)
	}
	defer rows.Close()

	var entries []models.QueueEntry

	for rows.Next() {
		var e models.QueueEntry

		scanErr := rows.Scan(
			&e.ID,
			&e.TableName,
			&e.RowID,
			&e.Operation,
			&e.Synced,
			&e.Version,
			&e.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncQueueRepository.Pending").
				Msg("failed to scan queue entry row")
			return nil, fmt.Errorf("failed to scan queue entry row: %w", scanErr)
		}

		entries = append(entries, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncQueueRepository.Pending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating queue entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (r *syncQueueRepository) PendingCount(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, countPendingEntries)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.PendingCount").
			Msg("failed to scan pending count")
		return 0, fmt.Errorf("failed to count pending entries: %w", err)
	}

	return count, nil
}

// MarkSynced acknowledges one drained entry at the version the drain read.
// Zero rows affected means the entry was collapsed into (or removed) while
// the push was in flight: the caller must leave it pending.
func (r *syncQueueRepository) MarkSynced(ctx context.Context, id, version int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markEntrySynced, id, version)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.MarkSynced").
			Int64("entry_id", id).
			Msg("failed to mark entry synced")
		return fmt.Errorf("failed to mark entry %d synced: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (entry_id=%d): %w", id, err)
	}
	if affected == 0 {
		log.Info().
			Str("func", "syncQueueRepository.MarkSynced").
			Int64("entry_id", id).
			Int64("version", version).
			Msg("entry changed while in flight, left pending")
		return fmt.Errorf("%w: queue entry %d version %d", ErrEntrySuperseded, id, version)
	}

	return nil
}

func (r *syncQueueRepository) ClearSynced(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearSyncedEntries); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.ClearSynced").
			Msg("failed to clear synced entries")
		return fmt.Errorf("failed to clear synced entries: %w", err)
	}

	return nil
}

func (r *syncQueueRepository) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, resetQueue); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Reset").
			Msg("failed to reset queue")
		return fmt.Errorf("failed to reset queue: %w", err)
	}

	return nil
}
