package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/fitjourney/fitsync/internal/adapter"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

const (
	pushMaxRetries   = 3
	pushBaseBackoff  = 500 * time.Millisecond
	resetDeleteBatch = adapter.MaxDeleteBatch
)

// syncEngine pushes pending queue entries to the remote document store and
// pulls remote documents back into the local database.
//
// At most one sync operation runs at a time: TriggerManualSync, Pull and
// CloudReset all take the same guard and return ErrSyncInProgress when it is
// held. Pushes are at-least-once; remote upserts are idempotent, so a retried
// entry converges to the same remote state.
type syncEngine struct {
	storages *store.Storages
	remote   adapter.RemoteStore
	log      *logger.Logger
	status   *statusBroadcaster

	mu      sync.Mutex
	syncing bool
}

// NewSyncEngine wires the engine to the local storages and the remote store.
func NewSyncEngine(storages *store.Storages, remote adapter.RemoteStore, log *logger.Logger) SyncEngine {
	return &syncEngine{
		storages: storages,
		remote:   remote,
		log:      log,
		status:   newStatusBroadcaster(),
	}
}

// begin acquires the single-flight guard. Returns false when a sync is
// already running.
func (e *syncEngine) begin() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.syncing {
		return false
	}
	e.syncing = true
	return true
}

func (e *syncEngine) end() {
	e.mu.Lock()
	e.syncing = false
	e.mu.Unlock()
}

func (e *syncEngine) Status() models.SyncStatus {
	return e.status.Latest()
}

func (e *syncEngine) Subscribe() (<-chan models.SyncStatus, func()) {
	return e.status.Subscribe()
}

func (e *syncEngine) TriggerManualSync(ctx context.Context) error {
	if !e.begin() {
		return ErrSyncInProgress
	}
	defer e.end()

	return e.push(ctx)
}

// push drains the queue once. Entries that fail stay pending; the first
// error is recorded in the published status and returned after the whole
// queue has been attempted.
func (e *syncEngine) push(ctx context.Context) error {
	runID := uuid.Must(uuid.NewV7()).String()
	log := e.log.With().Str("run_id", runID).Logger()

	sess, err := e.session(ctx)
	if err != nil {
		return err
	}

	started := time.Now()
	pending, err := e.storages.Queue.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("count pending entries: %w", err)
	}

	prev := e.status.Latest()
	e.status.Publish(models.SyncStatus{
		InProgress:  true,
		LastAttempt: &started,
		LastSuccess: prev.LastSuccess,
		Pending:     pending,
	})

	entries, err := e.storages.Queue.Pending(ctx)
	if err != nil {
		e.publishDone(started, prev.LastSuccess, err)
		return fmt.Errorf("load pending entries: %w", err)
	}
	log.Info().Int("entries", len(entries)).Msg("sync run started")

	var firstErr error
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			e.publishDone(started, prev.LastSuccess, err)
			return err
		}
		if err = e.pushEntry(ctx, sess.UserID, entry); err != nil {
			log.Warn().Err(err).
				Str("table", entry.TableName).
				Str("row_id", entry.RowID).
				Msg("entry push failed, leaving queued")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err = e.storages.Queue.MarkSynced(ctx, entry.ID, entry.Version); err != nil {
			if errors.Is(err, store.ErrEntrySuperseded) {
				// A newer local mutation landed while this entry was in
				// flight. The remote holds the older state; the entry stays
				// pending and the next run pushes the fresh row.
				log.Info().
					Str("table", entry.TableName).
					Str("row_id", entry.RowID).
					Msg("entry changed during push, left queued")
				continue
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("mark entry %d synced: %w", entry.ID, err)
			}
		}
	}

	if err = e.storages.Queue.ClearSynced(ctx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("clear synced entries: %w", err)
	}

	if firstErr != nil {
		e.publishDone(started, prev.LastSuccess, firstErr)
		log.Error().Err(firstErr).Msg("sync run finished with errors")
		return fmt.Errorf("sync run %s: %w", runID, firstErr)
	}

	// Entries superseded mid-flight stay pending for the next run.
	remaining, err := e.storages.Queue.PendingCount(ctx)
	if err != nil {
		remaining = 0
	}
	done := time.Now()
	e.status.Publish(models.SyncStatus{
		LastAttempt: &started,
		LastSuccess: &done,
		Pending:     remaining,
	})
	log.Info().Int64("pending", remaining).Msg("sync run finished")
	return nil
}

// publishDone publishes a failed terminal status with the pending count
// re-read from the queue.
func (e *syncEngine) publishDone(attempt time.Time, lastSuccess *time.Time, cause error) {
	pending, err := e.storages.Queue.PendingCount(context.Background())
	if err != nil {
		pending = 0
	}
	e.status.Publish(models.SyncStatus{
		LastAttempt: &attempt,
		LastSuccess: lastSuccess,
		LastError:   cause.Error(),
		Pending:     pending,
	})
}

// pushEntry sends one queue entry to the remote store. A missing local row
// for an insert/update means the row was deleted after the entry collapsed;
// the entry is treated as done.
func (e *syncEngine) pushEntry(ctx context.Context, userID int64, entry models.QueueEntry) error {
	switch entry.Operation {
	case models.OpDelete:
		return e.withBackoff(ctx, func(ctx context.Context) error {
			return e.remote.Delete(ctx, entry.TableName, entry.RowID)
		})
	case models.OpInsert, models.OpUpdate:
		payload, err := e.payloadFor(ctx, userID, entry)
		if errors.Is(err, store.ErrNotFound) {
			e.log.Warn().
				Str("table", entry.TableName).
				Str("row_id", entry.RowID).
				Msg("queued row no longer exists locally, skipping")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load %s/%s: %w", entry.TableName, entry.RowID, err)
		}
		return e.withBackoff(ctx, func(ctx context.Context) error {
			return e.remote.Upsert(ctx, entry.TableName, entry.RowID, payload)
		})
	default:
		return fmt.Errorf("queue entry %d: %w", entry.ID, entry.Operation.Validate())
	}
}

// withBackoff runs fn, retrying transient remote failures with exponential
// backoff. Non-transient errors (auth, bad request) fail immediately.
func (e *syncEngine) withBackoff(ctx context.Context, fn func(context.Context) error) error {
	b := retry.WithMaxRetries(pushMaxRetries, retry.NewExponential(pushBaseBackoff))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if adapter.IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// payloadFor loads the current local row named by the entry. The freshest
// row state wins: a row mutated after its entry was written is pushed in its
// latest form.
func (e *syncEngine) payloadFor(ctx context.Context, userID int64, entry models.QueueEntry) (any, error) {
	id, err := strconv.ParseInt(entry.RowID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse row id %q: %w", entry.RowID, err)
	}

	switch entry.TableName {
	case models.TableWorkout:
		return e.storages.Workouts.GetWorkout(ctx, id, userID)
	case models.TableGoal:
		return e.storages.Goals.GetGoal(ctx, id, userID)
	case models.TableUserMetrics:
		return e.storages.Metrics.GetMetric(ctx, id, userID)
	case models.TableDailyLog:
		return e.storages.DailyLogs.GetDailyLog(ctx, id, userID)
	case models.TableStreak:
		return e.storages.Streaks.GetStreakByID(ctx, id)
	case models.TableNotification:
		return e.storages.Notifications.GetNotification(ctx, id, userID)
	default:
		return nil, fmt.Errorf("unknown synced table %q", entry.TableName)
	}
}

// session loads the saved sign-in state and primes the remote client with
// its token.
func (e *syncEngine) session(ctx context.Context) (models.Session, error) {
	sess, err := e.storages.Sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotAuthenticated
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if err = e.remote.SetToken(sess.Token); err != nil {
		return models.Session{}, fmt.Errorf("set remote token: %w", err)
	}
	return sess, nil
}

func (e *syncEngine) Pull(ctx context.Context) error {
	if !e.begin() {
		return ErrSyncInProgress
	}
	defer e.end()

	if _, err := e.session(ctx); err != nil {
		return err
	}

	entries, err := e.storages.Queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("load pending entries: %w", err)
	}
	pending := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		pending[entry.TableName+"/"+entry.RowID] = struct{}{}
	}

	var firstErr error
	for _, table := range models.SyncedTables {
		docs, err := e.remote.List(ctx, table)
		if err != nil {
			e.log.Warn().Err(err).Str("table", table).Msg("pull list failed")
			if firstErr == nil {
				firstErr = fmt.Errorf("list %s: %w", table, err)
			}
			continue
		}
		for _, doc := range docs {
			// A locally modified row wins until its change is pushed.
			if _, dirty := pending[table+"/"+doc.ID]; dirty {
				continue
			}
			if err = e.replaceLocal(ctx, table, doc); err != nil {
				e.log.Warn().Err(err).
					Str("table", table).
					Str("doc_id", doc.ID).
					Msg("pull replace failed")
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}
	if firstErr != nil {
		return fmt.Errorf("pull: %w", firstErr)
	}
	return nil
}

// replaceLocal decodes one remote document and upserts the local row without
// touching the sync queue.
func (e *syncEngine) replaceLocal(ctx context.Context, table string, doc models.Document) error {
	switch table {
	case models.TableWorkout:
		var w models.Workout
		if err := json.Unmarshal(doc.Data, &w); err != nil {
			return fmt.Errorf("decode workout %s: %w", doc.ID, err)
		}
		return e.storages.Workouts.ReplaceWorkout(ctx, w)
	case models.TableGoal:
		var g models.Goal
		if err := json.Unmarshal(doc.Data, &g); err != nil {
			return fmt.Errorf("decode goal %s: %w", doc.ID, err)
		}
		return e.storages.Goals.ReplaceGoal(ctx, g)
	case models.TableUserMetrics:
		var m models.BodyMetric
		if err := json.Unmarshal(doc.Data, &m); err != nil {
			return fmt.Errorf("decode metric %s: %w", doc.ID, err)
		}
		return e.storages.Metrics.ReplaceMetric(ctx, m)
	case models.TableDailyLog:
		var d models.DailyLog
		if err := json.Unmarshal(doc.Data, &d); err != nil {
			return fmt.Errorf("decode daily log %s: %w", doc.ID, err)
		}
		return e.storages.DailyLogs.ReplaceDailyLog(ctx, d)
	case models.TableStreak:
		var s models.Streak
		if err := json.Unmarshal(doc.Data, &s); err != nil {
			return fmt.Errorf("decode streak %s: %w", doc.ID, err)
		}
		return e.storages.Streaks.ReplaceStreak(ctx, s)
	case models.TableNotification:
		var n models.Notification
		if err := json.Unmarshal(doc.Data, &n); err != nil {
			return fmt.Errorf("decode notification %s: %w", doc.ID, err)
		}
		return e.storages.Notifications.ReplaceNotification(ctx, n)
	default:
		return fmt.Errorf("unknown synced table %q", table)
	}
}

// CloudReset wipes the remote collections in bounded batches, then rebuilds
// them from the full local state. The queue is reset first so the rebuild
// starts from a clean slate.
func (e *syncEngine) CloudReset(ctx context.Context) error {
	if !e.begin() {
		return ErrSyncInProgress
	}
	defer e.end()

	sess, err := e.session(ctx)
	if err != nil {
		return err
	}
	e.log.Info().Msg("cloud reset started")

	for _, table := range models.SyncedTables {
		docs, err := e.remote.List(ctx, table)
		if err != nil {
			return fmt.Errorf("list %s: %w", table, err)
		}
		ids := make([]string, 0, len(docs))
		for _, doc := range docs {
			ids = append(ids, doc.ID)
		}
		for start := 0; start < len(ids); start += resetDeleteBatch {
			end := start + resetDeleteBatch
			if end > len(ids) {
				end = len(ids)
			}
			if err = e.remote.DeleteBatch(ctx, table, ids[start:end]); err != nil {
				return fmt.Errorf("delete batch for %s: %w", table, err)
			}
		}
	}

	if err = e.storages.Queue.Reset(ctx); err != nil {
		return fmt.Errorf("reset queue: %w", err)
	}
	for _, table := range models.SyncedTables {
		if err = e.enqueueTable(ctx, sess.UserID, table); err != nil {
			return err
		}
	}

	if err = e.push(ctx); err != nil {
		return fmt.Errorf("re-upload after reset: %w", err)
	}
	e.log.Info().Msg("cloud reset finished")
	return nil
}

func (e *syncEngine) ForceAddToSyncQueue(ctx context.Context, table string) error {
	if !models.IsSyncedTable(table) {
		return fmt.Errorf("%w: unknown synced table %q", ErrValidation, table)
	}
	sess, err := e.storages.Sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	return e.enqueueTable(ctx, sess.UserID, table)
}

func (e *syncEngine) ForceAddStreakToSyncQueue(ctx context.Context) error {
	return e.ForceAddToSyncQueue(ctx, models.TableStreak)
}

// enqueueTable re-enqueues every local row of table as an insert. Remote
// upserts are idempotent, so rows already present remotely converge.
func (e *syncEngine) enqueueTable(ctx context.Context, userID int64, table string) error {
	ids, err := e.rowIDs(ctx, userID, table)
	if err != nil {
		return fmt.Errorf("collect %s rows: %w", table, err)
	}
	for _, id := range ids {
		if err = e.storages.Queue.Enqueue(ctx, table, id, models.OpInsert); err != nil {
			return fmt.Errorf("enqueue %s/%s: %w", table, id, err)
		}
	}
	e.log.Info().Str("table", table).Int("rows", len(ids)).Msg("rows force-queued")
	return nil
}

func (e *syncEngine) rowIDs(ctx context.Context, userID int64, table string) ([]string, error) {
	var ids []string
	switch table {
	case models.TableWorkout:
		rows, err := e.storages.Workouts.GetAllWorkouts(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			ids = append(ids, strconv.FormatInt(r.ID, 10))
		}
	case models.TableGoal:
		rows, err := e.storages.Goals.GetAllGoals(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			ids = append(ids, strconv.FormatInt(r.ID, 10))
		}
	case models.TableUserMetrics:
		rows, err := e.storages.Metrics.GetAllMetrics(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			ids = append(ids, strconv.FormatInt(r.ID, 10))
		}
	case models.TableDailyLog:
		rows, err := e.storages.DailyLogs.GetAllDailyLogs(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			ids = append(ids, strconv.FormatInt(r.ID, 10))
		}
	case models.TableStreak:
		streak, err := e.storages.Streaks.GetStreak(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, strconv.FormatInt(streak.ID, 10))
	case models.TableNotification:
		rows, err := e.storages.Notifications.GetAllNotifications(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			ids = append(ids, strconv.FormatInt(r.ID, 10))
		}
	default:
		return nil, fmt.Errorf("unknown synced table %q", table)
	}
	return ids, nil
}
