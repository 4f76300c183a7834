package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type streakService struct {
	streaks  store.StreakRepository
	logs     store.DailyLogRepository
	sessions store.SessionRepository
	log      *logger.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewStreakService(
	streaks store.StreakRepository,
	logs store.DailyLogRepository,
	sessions store.SessionRepository,
	log *logger.Logger,
) StreakService {
	return &streakService{
		streaks:  streaks,
		logs:     logs,
		sessions: sessions,
		log:      log,
		now:      time.Now,
	}
}

func (s *streakService) Get(ctx context.Context) (*models.Streak, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	streak, err := s.streaks.GetStreak(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return &models.Streak{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return &streak, nil
}

// Recalculate rebuilds the streak counters from the activity history and
// persists the result. The current streak is anchored at today, or at
// yesterday when today has no activity yet; an older last activity breaks
// the streak to zero. The longest streak never decreases.
func (s *streakService) Recalculate(ctx context.Context) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	dates, err := s.logs.ActivityDates(ctx, userID)
	if err != nil {
		return fmt.Errorf("load activity dates: %w", err)
	}

	existing, err := s.streaks.GetStreak(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("get streak: %w", err)
	}

	streak := computeStreak(dates, s.now())
	streak.ID = existing.ID
	streak.UserID = userID
	if existing.Longest > streak.Longest {
		streak.Longest = existing.Longest
	}

	if streak.Current == existing.Current &&
		streak.Longest == existing.Longest &&
		equalDatePtr(streak.LastActivity, existing.LastActivity) {
		return nil
	}

	if err = s.streaks.UpsertStreak(ctx, &streak); err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}
	s.log.Debug().
		Int("current", streak.Current).
		Int("longest", streak.Longest).
		Msg("streak recalculated")
	return nil
}

// computeStreak derives the counters from activity dates sorted newest
// first. Dates are compared at day granularity.
func computeStreak(dates []time.Time, now time.Time) models.Streak {
	streak := models.Streak{UpdatedAt: now}
	if len(dates) == 0 {
		return streak
	}

	last := dayOf(dates[0])
	streak.LastActivity = &last

	// Current streak: walk back from today (or yesterday) over
	// consecutive days.
	today := dayOf(now)
	anchor := today
	if !last.Equal(today) {
		anchor = today.AddDate(0, 0, -1)
	}
	if last.Equal(anchor) {
		streak.Current = 1
		expect := anchor.AddDate(0, 0, -1)
		for _, d := range dates[1:] {
			if !dayOf(d).Equal(expect) {
				break
			}
			streak.Current++
			expect = expect.AddDate(0, 0, -1)
		}
	}

	// Longest streak: longest run of consecutive days anywhere in the
	// history.
	run, longest := 1, 1
	prev := last
	for _, d := range dates[1:] {
		day := dayOf(d)
		if day.Equal(prev.AddDate(0, 0, -1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	streak.Longest = longest
	return streak
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func equalDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
