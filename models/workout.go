package models

import "time"

// Workout is a single logged training session.
type Workout struct {
	ID          int64        `json:"id" db:"id"`
	UserID      int64        `json:"user_id" db:"user_id"`
	Name        string       `json:"name" db:"name"`
	Notes       string       `json:"notes,omitempty" db:"notes"`
	PerformedAt time.Time    `json:"performed_at" db:"performed_at"`
	DurationMin int          `json:"duration_min" db:"duration_min"`
	Sets        []WorkoutSet `json:"sets,omitempty"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// WorkoutSet is one set performed within a workout.
type WorkoutSet struct {
	ID         int64   `json:"id" db:"id"`
	WorkoutID  int64   `json:"workout_id" db:"workout_id"`
	ExerciseID int64   `json:"exercise_id" db:"exercise_id"`
	SetNumber  int     `json:"set_number" db:"set_number"`
	Reps       int     `json:"reps" db:"reps"`
	WeightKG   float64 `json:"weight_kg" db:"weight_kg"`
}
