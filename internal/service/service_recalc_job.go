package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fitjourney/fitsync/internal/logger"
)

const defaultRecalcInterval = 24 * time.Hour

type recalcJob struct {
	goals   GoalService
	streaks StreakService
	log     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRecalcJob creates a job that recomputes goal progress and the streak
// once on Start and then on every interval.
func NewRecalcJob(goals GoalService, streaks StreakService, log *logger.Logger) RecalcJob {
	return &recalcJob{goals: goals, streaks: streaks, log: log}
}

func (j *recalcJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRecalcInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.tick(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *recalcJob) tick(ctx context.Context) {
	if err := j.goals.RecalculateAll(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			j.log.Debug().Msg("goal recalculation skipped, not logged in")
		} else {
			j.log.Warn().Err(err).Msg("goal recalculation failed")
		}
	}
	if err := j.streaks.Recalculate(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			j.log.Debug().Msg("streak recalculation skipped, not logged in")
		} else {
			j.log.Warn().Err(err).Msg("streak recalculation failed")
		}
	}
}

func (j *recalcJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
