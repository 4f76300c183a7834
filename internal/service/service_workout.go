package service

import (
	"context"
	"fmt"

	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type workoutService struct {
	workouts store.WorkoutRepository
	sessions store.SessionRepository
}

func NewWorkoutService(workouts store.WorkoutRepository, sessions store.SessionRepository) WorkoutService {
	return &workoutService{workouts: workouts, sessions: sessions}
}

func (s *workoutService) Save(ctx context.Context, workout *models.Workout) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	workout.UserID = userID

	if err = validateWorkout(workout); err != nil {
		return err
	}
	if err = s.workouts.SaveWorkout(ctx, workout); err != nil {
		return fmt.Errorf("save workout: %w", err)
	}
	return nil
}

func (s *workoutService) Update(ctx context.Context, workout *models.Workout) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	workout.UserID = userID

	if workout.ID == 0 {
		return fmt.Errorf("%w: workout id is required", ErrValidation)
	}
	if err = validateWorkout(workout); err != nil {
		return err
	}
	if err = s.workouts.UpdateWorkout(ctx, *workout); err != nil {
		return fmt.Errorf("update workout %d: %w", workout.ID, err)
	}
	return nil
}

func (s *workoutService) Delete(ctx context.Context, id int64) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	if err = s.workouts.DeleteWorkout(ctx, id, userID); err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}
	return nil
}

func (s *workoutService) Get(ctx context.Context, id int64) (*models.Workout, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	workout, err := s.workouts.GetWorkout(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	return &workout, nil
}

func (s *workoutService) GetAll(ctx context.Context) ([]models.Workout, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workouts.GetAllWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all workouts: %w", err)
	}
	return workouts, nil
}

func validateWorkout(w *models.Workout) error {
	if w.Name == "" {
		return fmt.Errorf("%w: workout name is required", ErrValidation)
	}
	if w.PerformedAt.IsZero() {
		return fmt.Errorf("%w: performed_at is required", ErrValidation)
	}
	if w.DurationMin < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrValidation)
	}
	for i, set := range w.Sets {
		if set.ExerciseID == 0 {
			return fmt.Errorf("%w: set %d has no exercise", ErrValidation, i+1)
		}
		if set.Reps <= 0 {
			return fmt.Errorf("%w: set %d has no reps", ErrValidation, i+1)
		}
		if set.WeightKG < 0 {
			return fmt.Errorf("%w: set %d has negative weight", ErrValidation, i+1)
		}
	}
	return nil
}
