package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/mock"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type goalMocks struct {
	goals         *mock.MockGoalRepository
	workouts      *mock.MockWorkoutRepository
	metrics       *mock.MockMetricRepository
	notifications *mock.MockNotificationRepository
	sessions      *mock.MockSessionRepository
}

func newTestGoalSvc(t *testing.T, ctrl *gomock.Controller) (*goalService, *goalMocks) {
	t.Helper()

	m := &goalMocks{
		goals:         mock.NewMockGoalRepository(ctrl),
		workouts:      mock.NewMockWorkoutRepository(ctrl),
		metrics:       mock.NewMockMetricRepository(ctrl),
		notifications: mock.NewMockNotificationRepository(ctrl),
		sessions:      mock.NewMockSessionRepository(ctrl),
	}
	svc := NewGoalService(m.goals, m.workouts, m.metrics, m.notifications, m.sessions, logger.Nop()).(*goalService)
	return svc, m
}

func activeWindow() (time.Time, time.Time) {
	now := time.Now()
	return now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)
}

func TestGoalService_RecalculateAll_FrequencyGoalAchieved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	start, end := activeWindow()

	goal := models.Goal{
		ID: 1, UserID: 7,
		Kind:        models.GoalWorkoutFrequency,
		TargetValue: 3,
		StartDate:   start, EndDate: end,
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return([]models.Goal{goal}, nil)
	m.workouts.EXPECT().CountInRange(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, from, to time.Time) (int64, error) {
			// The window is the current Monday-started week.
			assert.Equal(t, time.Monday, from.Weekday())
			assert.Equal(t, from.AddDate(0, 0, 7), to)
			return 3, nil
		})
	m.goals.EXPECT().UpdateProgress(gomock.Any(), int64(1), float64(3), true, gomock.Not(gomock.Nil())).Return(nil)
	m.notifications.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, "goal_achieved", n.Kind)
			assert.Equal(t, int64(7), n.UserID)
			return nil
		})

	require.NoError(t, svc.RecalculateAll(context.Background()))
}

func TestGoalService_RecalculateAll_ExerciseTargetProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	start, end := activeWindow()
	exerciseID := int64(42)

	goal := models.Goal{
		ID: 2, UserID: 7,
		Kind:        models.GoalExerciseTarget,
		ExerciseID:  &exerciseID,
		TargetValue: 100,
		StartDate:   start, EndDate: end,
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return([]models.Goal{goal}, nil)
	m.workouts.EXPECT().MaxWeightForExercise(gomock.Any(), int64(7), exerciseID, gomock.Any(), gomock.Any()).
		Return(82.5, nil)
	// Below target: progress updated, not achieved, no notification.
	m.goals.EXPECT().UpdateProgress(gomock.Any(), int64(2), 82.5, false, gomock.Nil()).Return(nil)

	require.NoError(t, svc.RecalculateAll(context.Background()))
}

func TestGoalService_RecalculateAll_WeightLossGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	start, end := activeWindow()

	goal := models.Goal{
		ID: 3, UserID: 7,
		Kind:        models.GoalWeightTarget,
		StartValue:  90,
		TargetValue: 80,
		StartDate:   start, EndDate: end,
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return([]models.Goal{goal}, nil)
	m.metrics.EXPECT().LatestMetric(gomock.Any(), int64(7)).
		Return(models.BodyMetric{UserID: 7, WeightKG: 79.4}, nil)
	m.goals.EXPECT().UpdateProgress(gomock.Any(), int64(3), 79.4, true, gomock.Not(gomock.Nil())).Return(nil)
	m.notifications.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.RecalculateAll(context.Background()))
}

func TestGoalService_RecalculateAll_WeightGoalWithoutMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	start, end := activeWindow()

	goal := models.Goal{
		ID: 4, UserID: 7,
		Kind:        models.GoalWeightTarget,
		StartValue:  90,
		TargetValue: 80,
		StartDate:   start, EndDate: end,
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return([]models.Goal{goal}, nil)
	// No measurements yet: progress falls back to the baseline.
	m.metrics.EXPECT().LatestMetric(gomock.Any(), int64(7)).
		Return(models.BodyMetric{}, store.ErrNotFound)
	m.goals.EXPECT().UpdateProgress(gomock.Any(), int64(4), float64(90), false, gomock.Nil()).Return(nil)

	require.NoError(t, svc.RecalculateAll(context.Background()))
}

func TestGoalService_RecalculateAll_SkipsInactiveGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	now := time.Now()

	goals := []models.Goal{
		{ID: 1, Kind: models.GoalWorkoutFrequency, Achieved: true,
			StartDate: now.AddDate(0, 0, -7), EndDate: now.AddDate(0, 0, 7)},
		{ID: 2, Kind: models.GoalWorkoutFrequency,
			StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, -1, 0)},
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return(goals, nil)
	// Neither goal is recalculated: one achieved, one expired.

	require.NoError(t, svc.RecalculateAll(context.Background()))
}

func TestGoalService_RecalculateAll_UnchangedProgressNotWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	start, end := activeWindow()

	goal := models.Goal{
		ID: 5, UserID: 7,
		Kind:            models.GoalWorkoutFrequency,
		TargetValue:     5,
		CurrentProgress: 2,
		StartDate:       start, EndDate: end,
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return([]models.Goal{goal}, nil)
	m.workouts.EXPECT().CountInRange(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(int64(2), nil)
	// Progress identical: no UpdateProgress call, nothing enqueued.

	require.NoError(t, svc.RecalculateAll(context.Background()))
}

func TestGoalService_RecalculateAll_OneFailureDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	start, end := activeWindow()

	goals := []models.Goal{
		{ID: 1, UserID: 7, Kind: models.GoalExerciseTarget, TargetValue: 100,
			StartDate: start, EndDate: end}, // no exercise id: fails validation
		{ID: 2, UserID: 7, Kind: models.GoalWorkoutFrequency, TargetValue: 3,
			StartDate: start, EndDate: end},
	}

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	m.goals.EXPECT().GetAllGoals(gomock.Any(), int64(7)).Return(goals, nil)
	m.workouts.EXPECT().CountInRange(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	m.goals.EXPECT().UpdateProgress(gomock.Any(), int64(2), float64(1), false, gomock.Nil()).Return(nil)

	err := svc.RecalculateAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "goal 1")
}

func TestGoalService_Save_RejectsInvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestGoalSvc(t, ctrl)
	m.sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)

	goal := &models.Goal{Kind: "marathon", TargetValue: 1,
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 1, 0)}
	err := svc.Save(context.Background(), goal)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2026-08-26 -> Monday 2026-08-24.
	wed := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), startOfWeek(wed))

	// Sunday belongs to the week started the previous Monday.
	sun := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), startOfWeek(sun))

	// Monday maps to itself.
	mon := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, startOfWeek(mon))
}
