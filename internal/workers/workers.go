package workers

import (
	"context"
	"time"

	"github.com/fitjourney/fitsync/internal/config"
	"github.com/fitjourney/fitsync/internal/service"
)

// Workers aggregates background workers and manages them as one unit.
type Workers struct {
	workers []Worker
}

// New builds the standard worker set from the application services: the
// periodic sync job and the goal/streak recalculation job, each on the
// interval from cfg.
func New(services *service.Services, cfg config.Workers) *Workers {
	return &Workers{workers: []Worker{
		newJobWorker(services.SyncJob, cfg.SyncInterval),
		newJobWorker(services.RecalcJob, cfg.RecalcInterval),
	}}
}

// StartAll starts every worker in registration order.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops workers in reverse order and blocks until all have exited.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// job is the interval-driven lifecycle shared by the service jobs.
type job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// jobWorker binds a service job to its configured interval so the aggregate
// can manage it through the Worker interface.
type jobWorker struct {
	job      job
	interval time.Duration
}

func newJobWorker(j job, interval time.Duration) Worker {
	return &jobWorker{job: j, interval: interval}
}

func (w *jobWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *jobWorker) Stop() {
	w.job.Stop()
}
