package models

import "time"

// DailyLog records activity for one calendar day. There is at most one row
// per user per day; WorkoutCount is bumped by workout mutations.
type DailyLog struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Date         time.Time `json:"date" db:"date"`
	WorkoutCount int       `json:"workout_count" db:"workout_count"`
}
