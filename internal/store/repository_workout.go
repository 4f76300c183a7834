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

type workoutRepository struct {
	*DB
	logger *logger.Logger
}

func NewWorkoutRepository(db *DB, logger *logger.Logger) WorkoutRepository {
	return &workoutRepository{
		DB:     db,
		logger: logger,
	}
}

// dayOf truncates t to its calendar day, which is how daily_log keys rows.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (r *workoutRepository) SaveWorkout(ctx context.Context, workout *models.Workout) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, saveWorkout,
			workout.UserID,
			workout.Name,
			workout.Notes,
			workout.PerformedAt,
			workout.DurationMin,
		)
		if err != nil {
			return fmt.Errorf("failed to insert workout: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get workout id: %w", err)
		}
		workout.ID = id

		for i := range workout.Sets {
			set := &workout.Sets[i]
			set.WorkoutID = id
			setResult, err := tx.ExecContext(ctx, saveWorkoutSet,
				id, set.ExerciseID, set.SetNumber, set.Reps, set.WeightKG)
			if err != nil {
				return fmt.Errorf("failed to insert workout set %d: %w", set.SetNumber, err)
			}
			if set.ID, err = setResult.LastInsertId(); err != nil {
				return fmt.Errorf("failed to get workout set id: %w", err)
			}
		}

		day := dayOf(workout.PerformedAt)
		if _, err = tx.ExecContext(ctx, upsertDailyLog, workout.UserID, day); err != nil {
			return fmt.Errorf("failed to bump daily log: %w", err)
		}

		var dailyLog models.DailyLog
		row := tx.QueryRowContext(ctx, getDailyLogForDate, workout.UserID, day)
		if err = row.Scan(&dailyLog.ID, &dailyLog.UserID, &dailyLog.Date, &dailyLog.WorkoutCount); err != nil {
			return fmt.Errorf("failed to read daily log row: %w", err)
		}

		if err = enqueueTx(ctx, tx, models.TableWorkout, rowIDString(id), models.OpInsert); err != nil {
			return err
		}
		return enqueueTx(ctx, tx, models.TableDailyLog, rowIDString(dailyLog.ID), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.SaveWorkout").
			Int64("user_id", workout.UserID).
			Msg("failed to save workout")
		return fmt.Errorf("failed to save workout: %w", err)
	}

	return nil
}

func (r *workoutRepository) UpdateWorkout(ctx context.Context, workout models.Workout) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateWorkout,
			workout.Name,
			workout.Notes,
			workout.PerformedAt,
			workout.DurationMin,
			workout.ID,
			workout.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: workout %d", ErrNotFound, workout.ID)
		}

		// sets are replaced wholesale; per-set diffing is not worth it for
		// the handful of sets a workout carries
		if _, err = tx.ExecContext(ctx, deleteWorkoutSets, workout.ID); err != nil {
			return fmt.Errorf("failed to delete workout sets: %w", err)
		}
		for i := range workout.Sets {
			set := &workout.Sets[i]
			set.WorkoutID = workout.ID
			if _, err = tx.ExecContext(ctx, saveWorkoutSet,
				workout.ID, set.ExerciseID, set.SetNumber, set.Reps, set.WeightKG); err != nil {
				return fmt.Errorf("failed to insert workout set %d: %w", set.SetNumber, err)
			}
		}

		return enqueueTx(ctx, tx, models.TableWorkout, rowIDString(workout.ID), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.UpdateWorkout").
			Int64("user_id", workout.UserID).
			Int64("workout_id", workout.ID).
			Msg("failed to update workout")
		return err
	}

	return nil
}

func (r *workoutRepository) DeleteWorkout(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		var w models.Workout
		row := tx.QueryRowContext(ctx, getWorkout, id, userID)
		if err := scanWorkout(row, &w); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteWorkoutSets, id); err != nil {
			return fmt.Errorf("failed to delete workout sets: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteWorkout, id, userID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		day := dayOf(w.PerformedAt)
		if _, err := tx.ExecContext(ctx, decrementDailyLog, userID, day); err != nil {
			return fmt.Errorf("failed to decrement daily log: %w", err)
		}

		var dailyLog models.DailyLog
		logRow := tx.QueryRowContext(ctx, getDailyLogForDate, userID, day)
		if err := logRow.Scan(&dailyLog.ID, &dailyLog.UserID, &dailyLog.Date, &dailyLog.WorkoutCount); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// no daily log row for that day: nothing to report remotely
				return enqueueTx(ctx, tx, models.TableWorkout, rowIDString(id), models.OpDelete)
			}
			return fmt.Errorf("failed to read daily log row: %w", err)
		}

		if err := enqueueTx(ctx, tx, models.TableWorkout, rowIDString(id), models.OpDelete); err != nil {
			return err
		}
		return enqueueTx(ctx, tx, models.TableDailyLog, rowIDString(dailyLog.ID), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.DeleteWorkout").
			Int64("user_id", userID).
			Int64("workout_id", id).
			Msg("failed to delete workout")
		return err
	}

	return nil
}

func (r *workoutRepository) GetWorkout(ctx context.Context, id, userID int64) (models.Workout, error) {
	log := logger.FromContext(ctx)

	var w models.Workout
	row := r.DB.QueryRowContext(ctx, getWorkout, id, userID)
	if err := scanWorkout(row, &w); err != nil {
		log.Err(err).
			Str("func", "workoutRepository.GetWorkout").
			Int64("user_id", userID).
			Int64("workout_id", id).
			Msg("failed to get workout")
		return models.Workout{}, err
	}

	sets, err := r.loadSets(ctx, w.ID)
	if err != nil {
		return models.Workout{}, err
	}
	w.Sets = sets

	return w, nil
}

func (r *workoutRepository) GetAllWorkouts(ctx context.Context, userID int64) ([]models.Workout, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllWorkouts, userID)
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.GetAllWorkouts").
			Int64("user_id", userID).
			Msg("failed to execute query for all workouts")
		return nil, fmt.Errorf("failed to query all workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		scanErr := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.Notes,
			&w.PerformedAt, &w.DurationMin, &w.CreatedAt, &w.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan workout row: %w", scanErr)
		}
		workouts = append(workouts, w)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating workout rows: %w", rowsErr)
	}

	for i := range workouts {
		sets, err := r.loadSets(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Sets = sets
	}

	return workouts, nil
}

func (r *workoutRepository) CountInRange(ctx context.Context, userID int64, from, to time.Time) (int64, error) {
	query, args, err := buildCountInRange(userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count workouts in range: %w", err)
	}

	return count, nil
}

func (r *workoutRepository) MaxWeightForExercise(ctx context.Context, userID, exerciseID int64, from, to time.Time) (float64, error) {
	query, args, err := buildMaxWeightForExercise(userID, exerciseID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to build max weight query: %w", err)
	}

	var weight float64
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&weight); err != nil {
		return 0, fmt.Errorf("failed to query max weight: %w", err)
	}

	return weight, nil
}

func (r *workoutRepository) ReplaceWorkout(ctx context.Context, workout models.Workout) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, replaceWorkout,
			workout.ID, workout.UserID, workout.Name, workout.Notes,
			workout.PerformedAt, workout.DurationMin, workout.CreatedAt, workout.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to replace workout: %w", err)
		}

		if _, err = tx.ExecContext(ctx, deleteWorkoutSets, workout.ID); err != nil {
			return fmt.Errorf("failed to delete workout sets: %w", err)
		}
		for _, set := range workout.Sets {
			if _, err = tx.ExecContext(ctx, saveWorkoutSet,
				workout.ID, set.ExerciseID, set.SetNumber, set.Reps, set.WeightKG); err != nil {
				return fmt.Errorf("failed to insert workout set %d: %w", set.SetNumber, err)
			}
		}

		// pulled from remote: deliberately no queue entry
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.ReplaceWorkout").
			Int64("workout_id", workout.ID).
			Msg("failed to replace workout from remote")
		return err
	}

	return nil
}

func (r *workoutRepository) loadSets(ctx context.Context, workoutID int64) ([]models.WorkoutSet, error) {
	rows, err := r.DB.QueryContext(ctx, getWorkoutSets, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workout sets: %w", err)
	}
	defer rows.Close()

	var sets []models.WorkoutSet
	for rows.Next() {
		var s models.WorkoutSet
		if err := rows.Scan(&s.ID, &s.WorkoutID, &s.ExerciseID, &s.SetNumber, &s.Reps, &s.WeightKG); err != nil {
			return nil, fmt.Errorf("failed to scan workout set row: %w", err)
		}
		sets = append(sets, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating workout set rows: %w", rowsErr)
	}

	return sets, nil
}

func scanWorkout(row *sql.Row, w *models.Workout) error {
	err := row.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Notes,
		&w.PerformedAt, &w.DurationMin, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: workout", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to scan workout row: %w", err)
	}
	return nil
}
