package models

import (
	"fmt"
	"time"
)

// Operation is the kind of local mutation a queue entry records.
type Operation string

const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Validate returns an error for operations outside the known set.
func (o Operation) Validate() error {
	switch o {
	case OpInsert, OpUpdate, OpDelete:
		return nil
	default:
		return fmt.Errorf("unknown queue operation %q", string(o))
	}
}

// QueueEntry is one pending local-to-remote change. Entries are owned by the
// queue repository and consumed in id order by the sync engine. At most one
// unsynced entry exists per (TableName, RowID); a later mutation of the same
// row replaces the pending operation and bumps Version, so an acknowledgement
// carrying a stale version leaves the entry pending.
type QueueEntry struct {
	ID        int64     `json:"id" db:"id"`
	TableName string    `json:"table_name" db:"table_name"`
	RowID     string    `json:"row_id" db:"row_id"`
	Operation Operation `json:"operation" db:"operation"`
	Synced    bool      `json:"synced" db:"synced"`
	Version   int64     `json:"version" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
