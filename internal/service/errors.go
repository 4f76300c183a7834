package service

import "errors"

var (
	// ErrSyncInProgress is returned when a manual sync, pull, or cloud
	// reset is requested while another sync operation holds the engine.
	// The caller may simply wait for the running attempt to finish.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrNotAuthenticated is returned when a sync operation is requested
	// without a signed-in session. Recoverable: sign in and retry.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrValidation wraps input validation failures in feature services.
	ErrValidation = errors.New("validation failed")
)
