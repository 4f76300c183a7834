// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the FitJourney remote document store.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]) talking to per-user collections that mirror the
// local tables, with documents keyed by the stringified local row id.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/fitjourney/fitsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the remote
// document store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// All writes must be idempotent: Upsert replaces the document wholesale and
// Delete of a missing document succeeds, so the sync engine can safely replay
// an entry after a partial failure.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called after a
	// successful Login or when a persisted session is restored.
	SetToken(token string) error

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates against the remote auth endpoint, stores the
	// returned bearer token, and reports the user id embedded in it.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Upsert creates or replaces the document docID in the user's
	// collection. The payload is marshalled to JSON.
	Upsert(ctx context.Context, collection, docID string, payload any) error

	// Delete removes the document docID from the user's collection.
	// Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, docID string) error

	// DeleteBatch removes up to the server's batch limit of documents in a
	// single request. Callers chunk larger sets.
	DeleteBatch(ctx context.Context, collection string, docIDs []string) error

	// List returns every document in the user's collection.
	List(ctx context.Context, collection string) ([]models.Document, error)
}
