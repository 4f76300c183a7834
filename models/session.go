package models

import "time"

// Session is the locally persisted sign-in state. It never enters the sync
// queue: tokens stay on the device.
type Session struct {
	UserID  int64     `json:"user_id" db:"user_id"`
	Token   string    `json:"token" db:"token"`
	SavedAt time.Time `json:"saved_at" db:"saved_at"`
}
