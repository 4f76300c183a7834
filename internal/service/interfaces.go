// SPDX-License-Identifier: Apache-2.0

// Package service implements the application core: feature services for
// workouts, goals, body metrics, daily logs, streaks and notifications,
// plus the sync engine that pushes pending local changes to the remote
// backend and pulls remote state back into the local store.
package service

import (
	"context"
	"time"

	"github.com/fitjourney/fitsync/models"
)

// SyncEngine drains the local sync queue against the remote store and
// reports progress through a latest-value status stream.
type SyncEngine interface {
	// TriggerManualSync runs a full push of all pending queue entries.
	// Returns ErrSyncInProgress when another sync holds the engine and
	// ErrNotAuthenticated when no session exists.
	TriggerManualSync(ctx context.Context) error
	// Pull fetches remote documents and replaces local rows, skipping
	// rows that still have pending local changes.
	Pull(ctx context.Context) error
	// CloudReset deletes all remote documents in bounded batches and
	// re-uploads the full local state.
	CloudReset(ctx context.Context) error
	// ForceAddToSyncQueue re-enqueues every row of the given table.
	ForceAddToSyncQueue(ctx context.Context, table string) error
	// ForceAddStreakToSyncQueue re-enqueues the streak row.
	ForceAddStreakToSyncQueue(ctx context.Context) error
	// Status returns the last published sync status.
	Status() models.SyncStatus
	// Subscribe returns a channel delivering status updates. Late
	// subscribers immediately receive the latest value. The returned
	// func cancels the subscription.
	Subscribe() (<-chan models.SyncStatus, func())
}

// WorkoutService manages workout CRUD with sync queueing.
type WorkoutService interface {
	Save(ctx context.Context, workout *models.Workout) error
	Update(ctx context.Context, workout *models.Workout) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Workout, error)
	GetAll(ctx context.Context) ([]models.Workout, error)
}

// GoalService manages goals and recalculates their progress.
type GoalService interface {
	Save(ctx context.Context, goal *models.Goal) error
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Goal, error)
	GetAll(ctx context.Context) ([]models.Goal, error)
	// RecalculateAll recomputes progress for every active goal.
	RecalculateAll(ctx context.Context) error
}

// MetricService manages body metric entries.
type MetricService interface {
	Save(ctx context.Context, metric *models.BodyMetric) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.BodyMetric, error)
	GetAll(ctx context.Context) ([]models.BodyMetric, error)
	Latest(ctx context.Context) (*models.BodyMetric, error)
}

// DailyLogService exposes the per-day activity rollup.
type DailyLogService interface {
	Get(ctx context.Context, id int64) (*models.DailyLog, error)
	GetAll(ctx context.Context) ([]models.DailyLog, error)
}

// StreakService recalculates and reads the activity streak.
type StreakService interface {
	Get(ctx context.Context) (*models.Streak, error)
	// Recalculate rebuilds current and longest streak from activity
	// dates and persists the result.
	Recalculate(ctx context.Context) error
}

// NotificationService manages local notifications.
type NotificationService interface {
	Save(ctx context.Context, n *models.Notification) error
	MarkRead(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.Notification, error)
	Unread(ctx context.Context) ([]models.Notification, error)
}

// SyncJob periodically pushes pending changes and pulls remote state.
type SyncJob interface {
	// Start launches the background loop. A non-positive interval falls
	// back to a default. Restarting a running job stops it first.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the loop and waits for it to exit. Safe to call when
	// the job is not running.
	Stop()
}

// RecalcJob periodically recomputes goal progress and the streak.
type RecalcJob interface {
	// Start runs one recalculation immediately, then repeats on the
	// interval. A non-positive interval falls back to a default.
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// AuthService manages the remote session lifecycle.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
	// RestoreSession loads a saved session into the remote client.
	RestoreSession(ctx context.Context) error
}
