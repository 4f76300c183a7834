package models

import "time"

// Streak holds the consecutive-day activity counters for a user. One row per
// user; the row id doubles as the remote document key.
type Streak struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"user_id" db:"user_id"`
	Current      int        `json:"current" db:"current"`
	Longest      int        `json:"longest" db:"longest"`
	LastActivity *time.Time `json:"last_activity,omitempty" db:"last_activity"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
