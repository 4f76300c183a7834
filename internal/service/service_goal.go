package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type goalService struct {
	goals         store.GoalRepository
	workouts      store.WorkoutRepository
	metrics       store.MetricRepository
	notifications store.NotificationRepository
	sessions      store.SessionRepository
	log           *logger.Logger
}

func NewGoalService(
	goals store.GoalRepository,
	workouts store.WorkoutRepository,
	metrics store.MetricRepository,
	notifications store.NotificationRepository,
	sessions store.SessionRepository,
	log *logger.Logger,
) GoalService {
	return &goalService{
		goals:         goals,
		workouts:      workouts,
		metrics:       metrics,
		notifications: notifications,
		sessions:      sessions,
		log:           log,
	}
}

func (s *goalService) Save(ctx context.Context, goal *models.Goal) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	goal.UserID = userID

	if err = validateGoal(goal); err != nil {
		return err
	}
	if err = s.goals.SaveGoal(ctx, goal); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

func (s *goalService) Update(ctx context.Context, goal *models.Goal) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	goal.UserID = userID

	if goal.ID == 0 {
		return fmt.Errorf("%w: goal id is required", ErrValidation)
	}
	if err = validateGoal(goal); err != nil {
		return err
	}
	if err = s.goals.UpdateGoal(ctx, *goal); err != nil {
		return fmt.Errorf("update goal %d: %w", goal.ID, err)
	}
	return nil
}

func (s *goalService) Delete(ctx context.Context, id int64) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	if err = s.goals.DeleteGoal(ctx, id, userID); err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	return nil
}

func (s *goalService) Get(ctx context.Context, id int64) (*models.Goal, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.GetGoal(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get goal %d: %w", id, err)
	}
	return &goal, nil
}

func (s *goalService) GetAll(ctx context.Context) ([]models.Goal, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.GetAllGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all goals: %w", err)
	}
	return goals, nil
}

// RecalculateAll recomputes progress for every active goal. A failing goal
// does not stop the others; all failures are joined into the returned error.
func (s *goalService) RecalculateAll(ctx context.Context) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	goals, err := s.goals.GetAllGoals(ctx, userID)
	if err != nil {
		return fmt.Errorf("load goals for recalculation: %w", err)
	}

	now := time.Now()
	var errs []error
	for _, goal := range goals {
		if !goal.Active(now) {
			continue
		}
		if err = s.recalculate(ctx, goal, now); err != nil {
			errs = append(errs, fmt.Errorf("goal %d: %w", goal.ID, err))
		}
	}
	return errors.Join(errs...)
}

// recalculate computes the goal's progress for its kind and persists the
// result only when it changed. Achieving a goal also raises a notification.
func (s *goalService) recalculate(ctx context.Context, goal models.Goal, now time.Time) error {
	progress, achieved, err := s.progressFor(ctx, goal, now)
	if err != nil {
		return err
	}
	if progress == goal.CurrentProgress && achieved == goal.Achieved {
		return nil
	}

	var achievedAt *time.Time
	if achieved {
		achievedAt = &now
	}
	if err = s.goals.UpdateProgress(ctx, goal.ID, progress, achieved, achievedAt); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	s.log.Debug().
		Int64("goal_id", goal.ID).
		Float64("progress", progress).
		Bool("achieved", achieved).
		Msg("goal progress recalculated")

	if achieved && !goal.Achieved {
		n := models.Notification{
			UserID:  goal.UserID,
			Kind:    "goal_achieved",
			Message: fmt.Sprintf("Goal reached: %s target %.1f", goal.Kind, goal.TargetValue),
		}
		if err = s.notifications.SaveNotification(ctx, &n); err != nil {
			return fmt.Errorf("save achievement notification: %w", err)
		}
	}
	return nil
}

// progressFor dispatches on the goal kind. The switch is exhaustive over
// models.GoalKind; an unknown kind is an error.
func (s *goalService) progressFor(ctx context.Context, goal models.Goal, now time.Time) (float64, bool, error) {
	switch goal.Kind {
	case models.GoalExerciseTarget:
		if goal.ExerciseID == nil {
			return 0, false, fmt.Errorf("%w: exercise goal %d has no exercise", ErrValidation, goal.ID)
		}
		from := goal.StartDate
		to := goal.EndDate.AddDate(0, 0, 1)
		maxWeight, err := s.workouts.MaxWeightForExercise(ctx, goal.UserID, *goal.ExerciseID, from, to)
		if err != nil {
			return 0, false, fmt.Errorf("max weight for exercise %d: %w", *goal.ExerciseID, err)
		}
		return maxWeight, maxWeight >= goal.TargetValue, nil

	case models.GoalWeightTarget:
		metric, err := s.metrics.LatestMetric(ctx, goal.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return goal.StartValue, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("latest metric: %w", err)
		}
		weight := metric.WeightKG
		// The start value decides the direction: losing when the target
		// is below it, gaining otherwise.
		losing := goal.TargetValue < goal.StartValue
		achieved := (losing && weight <= goal.TargetValue) || (!losing && weight >= goal.TargetValue)
		return weight, achieved, nil

	case models.GoalWorkoutFrequency:
		from := startOfWeek(now)
		count, err := s.workouts.CountInRange(ctx, goal.UserID, from, from.AddDate(0, 0, 7))
		if err != nil {
			return 0, false, fmt.Errorf("count workouts this week: %w", err)
		}
		return float64(count), float64(count) >= goal.TargetValue, nil

	default:
		return 0, false, goal.Kind.Validate()
	}
}

// startOfWeek returns midnight of the Monday of now's week.
func startOfWeek(now time.Time) time.Time {
	day := now.Day() - int(now.Weekday()-time.Monday)
	if now.Weekday() == time.Sunday {
		day = now.Day() - 6
	}
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}

func validateGoal(g *models.Goal) error {
	if err := g.Kind.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if g.Kind == models.GoalExerciseTarget && g.ExerciseID == nil {
		return fmt.Errorf("%w: exercise goal needs an exercise", ErrValidation)
	}
	if g.TargetValue <= 0 {
		return fmt.Errorf("%w: target value must be positive", ErrValidation)
	}
	if g.StartDate.IsZero() || g.EndDate.IsZero() {
		return fmt.Errorf("%w: goal dates are required", ErrValidation)
	}
	if g.EndDate.Before(g.StartDate) {
		return fmt.Errorf("%w: goal ends before it starts", ErrValidation)
	}
	return nil
}
