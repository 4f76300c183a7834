// Package client assembles the application: it restores the saved session,
// runs an initial sync and keeps the background workers alive until
// shutdown.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitjourney/fitsync/internal/config"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/service"
	"github.com/fitjourney/fitsync/internal/workers"
)

type App struct {
	services *service.Services
	workers  *workers.Workers
	log      *logger.Logger
}

func NewApp(services *service.Services, cfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	return &App{
		services: services,
		workers:  workers.New(services, cfg),
		log:      log,
	}, nil
}

// Run restores the session, performs one initial push-and-pull, then starts
// the background workers and blocks until ctx is cancelled. A missing
// session is not fatal: the app keeps operating offline and the periodic
// jobs pick up once the user signs in.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.Auth.RestoreSession(ctx); err != nil {
		if !errors.Is(err, service.ErrNotAuthenticated) {
			return fmt.Errorf("restore session: %w", err)
		}
		a.log.Info().Msg("no saved session, starting offline")
	} else {
		if err = a.services.Sync.TriggerManualSync(ctx); err != nil {
			a.log.Warn().Err(err).Msg("initial push failed")
		}
		if err = a.services.Sync.Pull(ctx); err != nil {
			a.log.Warn().Err(err).Msg("initial pull failed")
		}
	}

	a.workers.StartAll(ctx)
	defer a.workers.StopAll()

	<-ctx.Done()
	a.log.Info().Msg("shutting down")
	return nil
}
