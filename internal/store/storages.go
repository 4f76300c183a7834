package store

import (
	"context"
	"fmt"

	"github.com/fitjourney/fitsync/internal/config"
	"github.com/fitjourney/fitsync/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	Workouts      WorkoutRepository
	Goals         GoalRepository
	Metrics       MetricRepository
	DailyLogs     DailyLogRepository
	Streaks       StreakRepository
	Notifications NotificationRepository
	Queue         SyncQueueRepository
	Sessions      SessionRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Workouts:      NewWorkoutRepository(db, logger),
		Goals:         NewGoalRepository(db, logger),
		Metrics:       NewMetricRepository(db, logger),
		DailyLogs:     NewDailyLogRepository(db, logger),
		Streaks:       NewStreakRepository(db, logger),
		Notifications: NewNotificationRepository(db, logger),
		Queue:         NewSyncQueueRepository(db, logger),
		Sessions:      NewSessionRepository(db, logger),
	}, nil
}
