package models

import "time"

// BodyMetric is one body-weight measurement.
type BodyMetric struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	WeightKG   float64   `json:"weight_kg" db:"weight_kg"`
}
