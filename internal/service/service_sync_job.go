package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fitjourney/fitsync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	engine SyncEngine
	log    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a job that periodically pushes the queue and pulls
// remote state. The job is idle until Start is called.
func NewSyncJob(engine SyncEngine, log *logger.Logger) SyncJob {
	return &syncJob{engine: engine, log: log}
}

func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
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

// tick runs one push-then-pull round. A sync already in flight or a missing
// session is normal during background operation and only logged.
func (j *syncJob) tick(ctx context.Context) {
	if err := j.engine.TriggerManualSync(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) || errors.Is(err, ErrNotAuthenticated) {
			j.log.Debug().Err(err).Msg("periodic push skipped")
		} else {
			j.log.Warn().Err(err).Msg("periodic push failed")
		}
		return
	}
	if err := j.engine.Pull(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) || errors.Is(err, ErrNotAuthenticated) {
			j.log.Debug().Err(err).Msg("periodic pull skipped")
		} else {
			j.log.Warn().Err(err).Msg("periodic pull failed")
		}
	}
}

func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
