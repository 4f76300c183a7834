package models

import (
	"encoding/json"
	"time"
)

// SyncStatus is a snapshot of the sync engine state. One logical instance
// exists per process; the engine publishes a fresh snapshot on every state
// transition and observers receive only the latest value.
type SyncStatus struct {
	InProgress  bool       `json:"in_progress"`
	LastAttempt *time.Time `json:"last_attempt,omitempty"`
	LastSuccess *time.Time `json:"last_success,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	Pending     int64      `json:"pending"`
}

// Document is one remote record as returned by the document store: the
// document key (stringified local row id) plus its raw JSON payload.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}
