package service

import (
	"github.com/fitjourney/fitsync/internal/adapter"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/store"
)

// Services groups the application services behind their interfaces.
type Services struct {
	Auth          AuthService
	Workouts      WorkoutService
	Goals         GoalService
	Metrics       MetricService
	DailyLogs     DailyLogService
	Streaks       StreakService
	Notifications NotificationService
	Sync          SyncEngine
	SyncJob       SyncJob
	RecalcJob     RecalcJob
}

// NewServices wires every service to the local storages and the remote
// store.
func NewServices(storages *store.Storages, remote adapter.RemoteStore, log *logger.Logger) *Services {
	goals := NewGoalService(storages.Goals, storages.Workouts, storages.Metrics, storages.Notifications, storages.Sessions, log)
	streaks := NewStreakService(storages.Streaks, storages.DailyLogs, storages.Sessions, log)
	engine := NewSyncEngine(storages, remote, log)

	return &Services{
		Auth:          NewAuthService(storages.Sessions, remote, log),
		Workouts:      NewWorkoutService(storages.Workouts, storages.Sessions),
		Goals:         goals,
		Metrics:       NewMetricService(storages.Metrics, storages.Sessions),
		DailyLogs:     NewDailyLogService(storages.DailyLogs, storages.Sessions),
		Streaks:       streaks,
		Notifications: NewNotificationService(storages.Notifications, storages.Sessions),
		Sync:          engine,
		SyncJob:       NewSyncJob(engine, log),
		RecalcJob:     NewRecalcJob(goals, streaks, log),
	}
}
