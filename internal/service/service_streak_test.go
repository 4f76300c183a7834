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

func day(offset int) time.Time {
	base := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dates       []time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "no activity",
			dates:       nil,
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name:        "single workout today",
			dates:       []time.Time{day(0)},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "three consecutive days ending today",
			dates:       []time.Time{day(0), day(-1), day(-2)},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "streak anchored at yesterday still counts",
			dates:       []time.Time{day(-1), day(-2)},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "gap two days ago breaks current streak",
			dates:       []time.Time{day(-3), day(-4)},
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "longest run is in the past",
			dates:       []time.Time{day(0), day(-5), day(-6), day(-7), day(-8)},
			wantCurrent: 1,
			wantLongest: 4,
		},
		{
			name:        "gap in the middle of the current run",
			dates:       []time.Time{day(0), day(-1), day(-3)},
			wantCurrent: 2,
			wantLongest: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeStreak(tt.dates, now)
			assert.Equal(t, tt.wantCurrent, got.Current, "current")
			assert.Equal(t, tt.wantLongest, got.Longest, "longest")
			if len(tt.dates) > 0 {
				require.NotNil(t, got.LastActivity)
				assert.Equal(t, dayOf(tt.dates[0]), *got.LastActivity)
			}
		})
	}
}

func newTestStreakSvc(t *testing.T, ctrl *gomock.Controller) (*streakService, *mock.MockStreakRepository, *mock.MockDailyLogRepository, *mock.MockSessionRepository) {
	t.Helper()

	streaks := mock.NewMockStreakRepository(ctrl)
	logs := mock.NewMockDailyLogRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	svc := NewStreakService(streaks, logs, sessions, logger.Nop()).(*streakService)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC) }
	return svc, streaks, logs, sessions
}

func TestStreakService_Recalculate_PersistsNewCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, streaks, logs, sessions := newTestStreakSvc(t, ctrl)

	sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	logs.EXPECT().ActivityDates(gomock.Any(), int64(7)).
		Return([]time.Time{day(0), day(-1)}, nil)
	streaks.EXPECT().GetStreak(gomock.Any(), int64(7)).
		Return(models.Streak{ID: 3, UserID: 7, Current: 1, Longest: 5}, nil)
	streaks.EXPECT().UpsertStreak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Streak) error {
			assert.Equal(t, int64(3), s.ID)
			assert.Equal(t, 2, s.Current)
			// Longest never decreases below the stored value.
			assert.Equal(t, 5, s.Longest)
			return nil
		})

	require.NoError(t, svc.Recalculate(context.Background()))
}

func TestStreakService_Recalculate_FirstWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, streaks, logs, sessions := newTestStreakSvc(t, ctrl)

	sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	logs.EXPECT().ActivityDates(gomock.Any(), int64(7)).
		Return([]time.Time{day(0)}, nil)
	streaks.EXPECT().GetStreak(gomock.Any(), int64(7)).
		Return(models.Streak{}, store.ErrNotFound)
	streaks.EXPECT().UpsertStreak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Streak) error {
			assert.Zero(t, s.ID)
			assert.Equal(t, int64(7), s.UserID)
			assert.Equal(t, 1, s.Current)
			assert.Equal(t, 1, s.Longest)
			return nil
		})

	require.NoError(t, svc.Recalculate(context.Background()))
}

func TestStreakService_Recalculate_NoChangeNoWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, streaks, logs, sessions := newTestStreakSvc(t, ctrl)

	last := day(0)
	sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	logs.EXPECT().ActivityDates(gomock.Any(), int64(7)).
		Return([]time.Time{day(0), day(-1), day(-2)}, nil)
	streaks.EXPECT().GetStreak(gomock.Any(), int64(7)).
		Return(models.Streak{ID: 3, UserID: 7, Current: 3, Longest: 3, LastActivity: &last}, nil)
	// Counters identical: no upsert, nothing enqueued.

	require.NoError(t, svc.Recalculate(context.Background()))
}

func TestStreakService_Get_NoRowReturnsZeroStreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, streaks, _, sessions := newTestStreakSvc(t, ctrl)

	sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	streaks.EXPECT().GetStreak(gomock.Any(), int64(7)).
		Return(models.Streak{}, store.ErrNotFound)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.Current)
	assert.Equal(t, int64(7), got.UserID)
}
