package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote store rejects the bearer
	// token (expired, revoked, or missing).
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound is returned for missing documents on reads. Deletes of
	// missing documents succeed.
	ErrNotFound = errors.New("remote document not found")
	// ErrBadRequest is returned when the remote store rejects the payload.
	ErrBadRequest = errors.New("remote rejected request")
	// ErrRemoteUnavailable is returned for server-side failures (5xx) and
	// transport errors. It marks an attempt as transient: the change stays
	// queued and is retried on the next sync.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	// ErrNoToken is returned by SetToken for a malformed token string.
	ErrNoToken = errors.New("no bearer token")
)

// IsTransient reports whether err should leave the queue entry pending for a
// later attempt rather than being treated as a permanent rejection.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}
