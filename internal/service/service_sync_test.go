package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitjourney/fitsync/internal/adapter"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/mock"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type engineMocks struct {
	workouts      *mock.MockWorkoutRepository
	goals         *mock.MockGoalRepository
	metrics       *mock.MockMetricRepository
	dailyLogs     *mock.MockDailyLogRepository
	streaks       *mock.MockStreakRepository
	notifications *mock.MockNotificationRepository
	queue         *mock.MockSyncQueueRepository
	sessions      *mock.MockSessionRepository
	remote        *mock.MockRemoteStore
}

func newTestEngine(t *testing.T, ctrl *gomock.Controller) (*syncEngine, *engineMocks) {
	t.Helper()

	m := &engineMocks{
		workouts:      mock.NewMockWorkoutRepository(ctrl),
		goals:         mock.NewMockGoalRepository(ctrl),
		metrics:       mock.NewMockMetricRepository(ctrl),
		dailyLogs:     mock.NewMockDailyLogRepository(ctrl),
		streaks:       mock.NewMockStreakRepository(ctrl),
		notifications: mock.NewMockNotificationRepository(ctrl),
		queue:         mock.NewMockSyncQueueRepository(ctrl),
		sessions:      mock.NewMockSessionRepository(ctrl),
		remote:        mock.NewMockRemoteStore(ctrl),
	}
	storages := &store.Storages{
		Workouts:      m.workouts,
		Goals:         m.goals,
		Metrics:       m.metrics,
		DailyLogs:     m.dailyLogs,
		Streaks:       m.streaks,
		Notifications: m.notifications,
		Queue:         m.queue,
		Sessions:      m.sessions,
	}
	engine := NewSyncEngine(storages, m.remote, logger.Nop()).(*syncEngine)
	return engine, m
}

func session() models.Session {
	return models.Session{UserID: 7, Token: "jwt-token", SavedAt: time.Now()}
}

func expectSession(m *engineMocks) {
	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.remote.EXPECT().SetToken("jwt-token").Return(nil)
}

func TestSyncEngine_TriggerManualSync_PushesAllEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	entries := []models.QueueEntry{
		{ID: 1, TableName: models.TableWorkout, RowID: "10", Operation: models.OpInsert, Version: 1},
		{ID: 2, TableName: models.TableGoal, RowID: "20", Operation: models.OpUpdate, Version: 2},
		{ID: 3, TableName: models.TableWorkout, RowID: "11", Operation: models.OpDelete, Version: 1},
	}

	expectSession(m)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(3), nil)
	m.queue.EXPECT().Pending(gomock.Any()).Return(entries, nil)

	m.workouts.EXPECT().GetWorkout(gomock.Any(), int64(10), int64(7)).
		Return(models.Workout{ID: 10, UserID: 7, Name: "push day"}, nil)
	m.remote.EXPECT().Upsert(gomock.Any(), models.TableWorkout, "10", gomock.Any()).Return(nil)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(1), int64(1)).Return(nil)

	m.goals.EXPECT().GetGoal(gomock.Any(), int64(20), int64(7)).
		Return(models.Goal{ID: 20, UserID: 7, Kind: models.GoalWorkoutFrequency}, nil)
	m.remote.EXPECT().Upsert(gomock.Any(), models.TableGoal, "20", gomock.Any()).Return(nil)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(2), int64(2)).Return(nil)

	m.remote.EXPECT().Delete(gomock.Any(), models.TableWorkout, "11").Return(nil)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(3), int64(1)).Return(nil)

	m.queue.EXPECT().ClearSynced(gomock.Any()).Return(nil)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(0), nil)

	err := engine.TriggerManualSync(ctx)
	require.NoError(t, err)

	status := engine.Status()
	assert.False(t, status.InProgress)
	assert.NotNil(t, status.LastSuccess)
	assert.Empty(t, status.LastError)
	assert.Zero(t, status.Pending)
}

func TestSyncEngine_TriggerManualSync_EmptyQueueSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	expectSession(m)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(0), nil).Times(2)
	m.queue.EXPECT().Pending(gomock.Any()).Return(nil, nil)
	m.queue.EXPECT().ClearSynced(gomock.Any()).Return(nil)

	require.NoError(t, engine.TriggerManualSync(context.Background()))
	assert.NotNil(t, engine.Status().LastSuccess)
}

func TestSyncEngine_TriggerManualSync_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	m.sessions.EXPECT().GetSession(gomock.Any()).
		Return(models.Session{}, store.ErrLocalSessionNotFound)

	err := engine.TriggerManualSync(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSyncEngine_TriggerManualSync_ConcurrentCallRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newTestEngine(t, ctrl)

	// Simulate a running sync by holding the guard.
	require.True(t, engine.begin())
	defer engine.end()

	err := engine.TriggerManualSync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	err = engine.Pull(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	err = engine.CloudReset(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestSyncEngine_TriggerManualSync_FailedEntryStaysQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	entries := []models.QueueEntry{
		{ID: 1, TableName: models.TableWorkout, RowID: "10", Operation: models.OpInsert, Version: 1},
		{ID: 2, TableName: models.TableGoal, RowID: "20", Operation: models.OpUpdate, Version: 1},
	}

	expectSession(m)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(2), nil).Times(2)
	m.queue.EXPECT().Pending(gomock.Any()).Return(entries, nil)

	// First entry fails with a non-transient error; no MarkSynced for it.
	m.workouts.EXPECT().GetWorkout(gomock.Any(), int64(10), int64(7)).
		Return(models.Workout{ID: 10}, nil)
	m.remote.EXPECT().Upsert(gomock.Any(), models.TableWorkout, "10", gomock.Any()).
		Return(adapter.ErrBadRequest)

	// Second entry still gets attempted.
	m.goals.EXPECT().GetGoal(gomock.Any(), int64(20), int64(7)).
		Return(models.Goal{ID: 20}, nil)
	m.remote.EXPECT().Upsert(gomock.Any(), models.TableGoal, "20", gomock.Any()).Return(nil)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(2), int64(1)).Return(nil)

	m.queue.EXPECT().ClearSynced(gomock.Any()).Return(nil)

	err := engine.TriggerManualSync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	status := engine.Status()
	assert.False(t, status.InProgress)
	assert.NotEmpty(t, status.LastError)
	assert.Nil(t, status.LastSuccess)
}

func TestSyncEngine_TriggerManualSync_MissingLocalRowSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	entries := []models.QueueEntry{
		{ID: 1, TableName: models.TableWorkout, RowID: "99", Operation: models.OpUpdate, Version: 1},
	}

	expectSession(m)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(1), nil)
	m.queue.EXPECT().Pending(gomock.Any()).Return(entries, nil)

	// Row was deleted locally after the entry was written: entry resolves
	// without a remote call.
	m.workouts.EXPECT().GetWorkout(gomock.Any(), int64(99), int64(7)).
		Return(models.Workout{}, store.ErrNotFound)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(1), int64(1)).Return(nil)
	m.queue.EXPECT().ClearSynced(gomock.Any()).Return(nil)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(0), nil)

	require.NoError(t, engine.TriggerManualSync(context.Background()))
}

func TestSyncEngine_TriggerManualSync_MidFlightChangeStaysQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	entries := []models.QueueEntry{
		{ID: 1, TableName: models.TableWorkout, RowID: "10", Operation: models.OpInsert, Version: 1},
	}

	expectSession(m)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(1), nil)
	m.queue.EXPECT().Pending(gomock.Any()).Return(entries, nil)

	m.workouts.EXPECT().GetWorkout(gomock.Any(), int64(10), int64(7)).
		Return(models.Workout{ID: 10, UserID: 7}, nil)
	// A second mutation collapses into the entry while the upsert is in
	// flight: the version-conditional ack refuses and the entry stays
	// pending. The run still succeeds.
	m.remote.EXPECT().Upsert(gomock.Any(), models.TableWorkout, "10", gomock.Any()).Return(nil)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(1), int64(1)).
		Return(store.ErrEntrySuperseded)
	m.queue.EXPECT().ClearSynced(gomock.Any()).Return(nil)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(1), nil)

	require.NoError(t, engine.TriggerManualSync(context.Background()))

	status := engine.Status()
	assert.NotNil(t, status.LastSuccess)
	assert.Empty(t, status.LastError)
	assert.Equal(t, int64(1), status.Pending)
}

func TestSyncEngine_Pull_SkipsRowsWithPendingChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	expectSession(m)
	m.queue.EXPECT().Pending(gomock.Any()).Return([]models.QueueEntry{
		{ID: 1, TableName: models.TableWorkout, RowID: "10", Operation: models.OpUpdate},
	}, nil)

	for _, table := range models.SyncedTables {
		switch table {
		case models.TableWorkout:
			m.remote.EXPECT().List(gomock.Any(), table).Return([]models.Document{
				{ID: "10", Data: []byte(`{"id":10,"user_id":7,"name":"local wins"}`)},
				{ID: "11", Data: []byte(`{"id":11,"user_id":7,"name":"leg day"}`)},
			}, nil)
		default:
			m.remote.EXPECT().List(gomock.Any(), table).Return(nil, nil)
		}
	}

	// Only the clean row is replaced; the dirty one keeps its local state.
	m.workouts.EXPECT().ReplaceWorkout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Workout) error {
			assert.Equal(t, int64(11), w.ID)
			return nil
		})

	require.NoError(t, engine.Pull(context.Background()))
}

func TestSyncEngine_CloudReset_DeletesInBatchesAndReuploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	expectSession(m)

	// Remote holds more workout docs than one delete batch allows.
	docs := make([]models.Document, adapter.MaxDeleteBatch+5)
	for i := range docs {
		docs[i] = models.Document{ID: "x"}
	}
	for _, table := range models.SyncedTables {
		if table == models.TableWorkout {
			m.remote.EXPECT().List(gomock.Any(), table).Return(docs, nil)
			continue
		}
		m.remote.EXPECT().List(gomock.Any(), table).Return(nil, nil)
	}
	first := m.remote.EXPECT().DeleteBatch(gomock.Any(), models.TableWorkout, gomock.Len(adapter.MaxDeleteBatch)).Return(nil)
	m.remote.EXPECT().DeleteBatch(gomock.Any(), models.TableWorkout, gomock.Len(5)).Return(nil).After(first)

	m.queue.EXPECT().Reset(gomock.Any()).Return(nil)

	// Local state: one workout, everything else empty.
	m.workouts.EXPECT().GetAllWorkouts(gomock.Any(), int64(7)).
		Return([]models.Workout{{ID: 10, UserID: 7}}, nil)
	m.queue.EXPECT().Enqueue(gomock.Any(), models.TableWorkout, "10", models.OpInsert).Return(nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return(nil, nil)
	m.metrics.EXPECT().GetAllMetrics(gomock.Any(), int64(7)).Return(nil, nil)
	m.dailyLogs.EXPECT().GetAllDailyLogs(gomock.Any(), int64(7)).Return(nil, nil)
	m.streaks.EXPECT().GetStreak(gomock.Any(), int64(7)).Return(models.Streak{}, store.ErrNotFound)
	m.notifications.EXPECT().GetAllNotifications(gomock.Any(), int64(7)).Return(nil, nil)

	// Internal drain after the re-enqueue.
	expectSession(m)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(1), nil)
	m.queue.EXPECT().Pending(gomock.Any()).Return([]models.QueueEntry{
		{ID: 1, TableName: models.TableWorkout, RowID: "10", Operation: models.OpInsert, Version: 1},
	}, nil)
	m.workouts.EXPECT().GetWorkout(gomock.Any(), int64(10), int64(7)).
		Return(models.Workout{ID: 10, UserID: 7}, nil)
	m.remote.EXPECT().Upsert(gomock.Any(), models.TableWorkout, "10", gomock.Any()).Return(nil)
	m.queue.EXPECT().MarkSynced(gomock.Any(), int64(1), int64(1)).Return(nil)
	m.queue.EXPECT().ClearSynced(gomock.Any()).Return(nil)
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(int64(0), nil)

	require.NoError(t, engine.CloudReset(context.Background()))
}

func TestSyncEngine_ForceAddToSyncQueue_UnknownTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newTestEngine(t, ctrl)

	err := engine.ForceAddToSyncQueue(context.Background(), "exercise")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSyncEngine_ForceAddStreakToSyncQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl)

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.streaks.EXPECT().GetStreak(gomock.Any(), int64(7)).
		Return(models.Streak{ID: 3, UserID: 7, Current: 4}, nil)
	m.queue.EXPECT().Enqueue(gomock.Any(), models.TableStreak, "3", models.OpInsert).Return(nil)

	require.NoError(t, engine.ForceAddStreakToSyncQueue(context.Background()))
}
