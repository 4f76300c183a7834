package models

import (
	"fmt"
	"time"
)

// GoalKind is the closed set of goal variants. Progress computation switches
// on it exhaustively; an unknown kind is an error, never a silent fallthrough.
type GoalKind string

const (
	// GoalExerciseTarget tracks the heaviest weight lifted for one exercise.
	GoalExerciseTarget GoalKind = "exercise_target"
	// GoalWeightTarget tracks body weight against a target value.
	GoalWeightTarget GoalKind = "weight_target"
	// GoalWorkoutFrequency tracks workouts completed in the current week.
	GoalWorkoutFrequency GoalKind = "workout_frequency"
)

// Validate returns an error for kinds outside the known set.
func (k GoalKind) Validate() error {
	switch k {
	case GoalExerciseTarget, GoalWeightTarget, GoalWorkoutFrequency:
		return nil
	default:
		return fmt.Errorf("unknown goal kind %q", string(k))
	}
}

// Goal is a user fitness goal with derived progress.
//
// ExerciseID is set only for GoalExerciseTarget. StartValue is the baseline
// recorded when the goal was created and is used by GoalWeightTarget to
// determine the direction (losing vs gaining) of the goal.
type Goal struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"user_id" db:"user_id"`
	Kind            GoalKind   `json:"kind" db:"kind"`
	ExerciseID      *int64     `json:"exercise_id,omitempty" db:"exercise_id"`
	TargetValue     float64    `json:"target_value" db:"target_value"`
	StartValue      float64    `json:"start_value" db:"start_value"`
	CurrentProgress float64    `json:"current_progress" db:"current_progress"`
	StartDate       time.Time  `json:"start_date" db:"start_date"`
	EndDate         time.Time  `json:"end_date" db:"end_date"`
	Achieved        bool       `json:"achieved" db:"achieved"`
	AchievedAt      *time.Time `json:"achieved_at,omitempty" db:"achieved_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// Active reports whether the goal should still be recalculated: not yet
// achieved and its date window includes now.
func (g Goal) Active(now time.Time) bool {
	return !g.Achieved && !now.Before(g.StartDate) && !now.After(g.EndDate)
}
