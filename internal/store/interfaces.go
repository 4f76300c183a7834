package store

import (
	"context"
	"time"

	"github.com/fitjourney/fitsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WorkoutRepository is the local repository for workouts and their sets.
//
// Every mutating method runs its row writes and the matching sync-queue
// entry in one transaction: a local mutation can never commit without its
// queue entry. Workout mutations additionally bump the daily_log row for the
// workout's date inside the same transaction.
type WorkoutRepository interface {
	SaveWorkout(ctx context.Context, workout *models.Workout) error
	UpdateWorkout(ctx context.Context, workout models.Workout) error
	DeleteWorkout(ctx context.Context, id, userID int64) error
	GetWorkout(ctx context.Context, id, userID int64) (models.Workout, error)
	GetAllWorkouts(ctx context.Context, userID int64) ([]models.Workout, error)

	// CountInRange returns the number of workouts performed in [from, to).
	CountInRange(ctx context.Context, userID int64, from, to time.Time) (int64, error)
	// MaxWeightForExercise returns the heaviest set weight logged for the
	// exercise in [from, to), or 0 when no sets exist.
	MaxWeightForExercise(ctx context.Context, userID, exerciseID int64, from, to time.Time) (float64, error)

	// ReplaceWorkout upserts a workout pulled from the remote store without
	// touching the sync queue or the daily log.
	ReplaceWorkout(ctx context.Context, workout models.Workout) error
}

// GoalRepository is the local repository for goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal *models.Goal) error
	UpdateGoal(ctx context.Context, goal models.Goal) error
	// UpdateProgress writes the recalculated progress/achieved state and
	// enqueues the update in the same transaction.
	UpdateProgress(ctx context.Context, id int64, progress float64, achieved bool, achievedAt *time.Time) error
	DeleteGoal(ctx context.Context, id, userID int64) error
	GetGoal(ctx context.Context, id, userID int64) (models.Goal, error)
	GetAllGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	ReplaceGoal(ctx context.Context, goal models.Goal) error
}

// MetricRepository is the local repository for body metrics.
type MetricRepository interface {
	SaveMetric(ctx context.Context, metric *models.BodyMetric) error
	DeleteMetric(ctx context.Context, id, userID int64) error
	GetMetric(ctx context.Context, id, userID int64) (models.BodyMetric, error)
	GetAllMetrics(ctx context.Context, userID int64) ([]models.BodyMetric, error)
	// LatestMetric returns the most recent measurement for the user.
	LatestMetric(ctx context.Context, userID int64) (models.BodyMetric, error)
	ReplaceMetric(ctx context.Context, metric models.BodyMetric) error
}

// DailyLogRepository is the local repository for per-day activity rows.
type DailyLogRepository interface {
	GetDailyLog(ctx context.Context, id, userID int64) (models.DailyLog, error)
	GetAllDailyLogs(ctx context.Context, userID int64) ([]models.DailyLog, error)
	// ActivityDates returns the distinct dates with at least one workout,
	// newest first.
	ActivityDates(ctx context.Context, userID int64) ([]time.Time, error)
	ReplaceDailyLog(ctx context.Context, log models.DailyLog) error
}

// StreakRepository is the local repository for the per-user streak row.
type StreakRepository interface {
	GetStreak(ctx context.Context, userID int64) (models.Streak, error)
	GetStreakByID(ctx context.Context, id int64) (models.Streak, error)
	// UpsertStreak writes the recalculated counters and enqueues the change
	// in the same transaction. The streak ID is assigned on first write.
	UpsertStreak(ctx context.Context, streak *models.Streak) error
	ReplaceStreak(ctx context.Context, streak models.Streak) error
}

// NotificationRepository is the local repository for notifications.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n *models.Notification) error
	MarkNotificationRead(ctx context.Context, id, userID int64) error
	GetNotification(ctx context.Context, id, userID int64) (models.Notification, error)
	GetAllNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	ReplaceNotification(ctx context.Context, n models.Notification) error
}

// SyncQueueRepository owns the pending-change queue. Feature repositories
// append entries through their own transactions; the sync engine is the only
// reader.
type SyncQueueRepository interface {
	// Enqueue records a pending change outside of a feature transaction.
	// Used by recovery flows (force re-enqueue); normal mutations enqueue
	// within the feature repository transaction instead.
	Enqueue(ctx context.Context, table, rowID string, op models.Operation) error
	// Pending returns unsynced entries in insertion order.
	Pending(ctx context.Context) ([]models.QueueEntry, error)
	PendingCount(ctx context.Context) (int64, error)
	// MarkSynced flags one entry as pushed, conditional on the version the
	// caller drained; ErrEntrySuperseded means a newer mutation collapsed
	// into the entry and it stays pending. Marked entries stay until
	// ClearSynced removes completed work.
	MarkSynced(ctx context.Context, id, version int64) error
	ClearSynced(ctx context.Context) error
	// Reset drops every entry, synced or not. Administrative use only.
	Reset(ctx context.Context) error
}

// SessionRepository persists the local sign-in state.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
