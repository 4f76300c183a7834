package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

type goalRepository struct {
	*DB
	logger *logger.Logger
}

func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	return &goalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *goalRepository) SaveGoal(ctx context.Context, goal *models.Goal) error {
	log := logger.FromContext(ctx)

	if err := goal.Kind.Validate(); err != nil {
		return err
	}

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, saveGoal,
			goal.UserID,
			goal.Kind,
			goal.ExerciseID,
			goal.TargetValue,
			goal.StartValue,
			goal.CurrentProgress,
			goal.StartDate,
			goal.EndDate,
			goal.Achieved,
			goal.AchievedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert goal: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get goal id: %w", err)
		}
		goal.ID = id

		return enqueueTx(ctx, tx, models.TableGoal, rowIDString(id), models.OpInsert)
	})
	if err != nil {
		log.Err(err).
			Str("func", "goalRepository.SaveGoal").
			Int64("user_id", goal.UserID).
			Msg("failed to save goal")
		return err
	}

	return nil
}

func (r *goalRepository) UpdateGoal(ctx context.Context, goal models.Goal) error {
	log := logger.FromContext(ctx)

	if err := goal.Kind.Validate(); err != nil {
		return err
	}

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateGoal,
			goal.Kind,
			goal.ExerciseID,
			goal.TargetValue,
			goal.StartValue,
			goal.StartDate,
			goal.EndDate,
			goal.ID,
			goal.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: goal %d", ErrNotFound, goal.ID)
		}

		return enqueueTx(ctx, tx, models.TableGoal, rowIDString(goal.ID), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "goalRepository.UpdateGoal").
			Int64("goal_id", goal.ID).
			Msg("failed to update goal")
		return err
	}

	return nil
}

func (r *goalRepository) UpdateProgress(ctx context.Context, id int64, progress float64, achieved bool, achievedAt *time.Time) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateGoalProgress, progress, achieved, achievedAt, id)
		if err != nil {
			return fmt.Errorf("failed to update goal progress: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: goal %d", ErrNotFound, id)
		}

		return enqueueTx(ctx, tx, models.TableGoal, rowIDString(id), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "goalRepository.UpdateProgress").
			Int64("goal_id", id).
			Msg("failed to update goal progress")
		return err
	}

	return nil
}

func (r *goalRepository) DeleteGoal(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteGoal, id, userID)
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: goal %d", ErrNotFound, id)
		}

		return enqueueTx(ctx, tx, models.TableGoal, rowIDString(id), models.OpDelete)
	})
	if err != nil {
		log.Err(err).
			Str("func", "goalRepository.DeleteGoal").
			Int64("goal_id", id).
			Msg("failed to delete goal")
		return err
	}

	return nil
}

func (r *goalRepository) GetGoal(ctx context.Context, id, userID int64) (models.Goal, error) {
	log := logger.FromContext(ctx)

	var g models.Goal
	row := r.DB.QueryRowContext(ctx, getGoal, id, userID)
	if err := scanGoal(row.Scan, &g); err != nil {
		log.Err(err).
			Str("func", "goalRepository.GetGoal").
			Int64("goal_id", id).
			Msg("failed to get goal")
		return models.Goal{}, err
	}

	return g, nil
}

func (r *goalRepository) GetAllGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllGoals, userID)
	if err != nil {
		log.Err(err).
			Str("func", "goalRepository.GetAllGoals").
			Int64("user_id", userID).
			Msg("failed to execute query for all goals")
		return nil, fmt.Errorf("failed to query all goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := scanGoal(rows.Scan, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rowsErr)
	}

	return goals, nil
}

func (r *goalRepository) ReplaceGoal(ctx context.Context, goal models.Goal) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, replaceGoal,
		goal.ID, goal.UserID, goal.Kind, goal.ExerciseID,
		goal.TargetValue, goal.StartValue, goal.CurrentProgress,
		goal.StartDate, goal.EndDate, goal.Achieved, goal.AchievedAt,
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "goalRepository.ReplaceGoal").
			Int64("goal_id", goal.ID).
			Msg("failed to replace goal from remote")
		return fmt.Errorf("failed to replace goal: %w", err)
	}

	return nil
}

func scanGoal(scan func(...any) error, g *models.Goal) error {
	err := scan(
		&g.ID, &g.UserID, &g.Kind, &g.ExerciseID,
		&g.TargetValue, &g.StartValue, &g.CurrentProgress,
		&g.StartDate, &g.EndDate, &g.Achieved, &g.AchievedAt,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: goal", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to scan goal row: %w", err)
	}
	return nil
}
