package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

type streakRepository struct {
	*DB
	logger *logger.Logger
}

func NewStreakRepository(db *DB, logger *logger.Logger) StreakRepository {
	return &streakRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *streakRepository) GetStreak(ctx context.Context, userID int64) (models.Streak, error) {
	var s models.Streak
	row := r.DB.QueryRowContext(ctx, getStreakByUser, userID)
	err := row.Scan(&s.ID, &s.UserID, &s.Current, &s.Longest, &s.LastActivity, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Streak{}, fmt.Errorf("%w: streak", ErrNotFound)
	}
	if err != nil {
		return models.Streak{}, fmt.Errorf("failed to scan streak row: %w", err)
	}

	return s, nil
}

func (r *streakRepository) GetStreakByID(ctx context.Context, id int64) (models.Streak, error) {
	var s models.Streak
	row := r.DB.QueryRowContext(ctx, getStreakByID, id)
	err := row.Scan(&s.ID, &s.UserID, &s.Current, &s.Longest, &s.LastActivity, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Streak{}, fmt.Errorf("%w: streak", ErrNotFound)
	}
	if err != nil {
		return models.Streak{}, fmt.Errorf("failed to scan streak row: %w", err)
	}

	return s, nil
}

func (r *streakRepository) UpsertStreak(ctx context.Context, streak *models.Streak) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertStreak,
			streak.UserID, streak.Current, streak.Longest, streak.LastActivity); err != nil {
			return fmt.Errorf("failed to upsert streak: %w", err)
		}

		// read back the row id: it is assigned on first insert and doubles
		// as the remote document key
		var s models.Streak
		row := tx.QueryRowContext(ctx, getStreakByUser, streak.UserID)
		if err := row.Scan(&s.ID, &s.UserID, &s.Current, &s.Longest, &s.LastActivity, &s.UpdatedAt); err != nil {
			return fmt.Errorf("failed to read streak row back: %w", err)
		}
		streak.ID = s.ID
		streak.UpdatedAt = s.UpdatedAt

		return enqueueTx(ctx, tx, models.TableStreak, rowIDString(s.ID), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "streakRepository.UpsertStreak").
			Int64("user_id", streak.UserID).
			Msg("failed to upsert streak")
		return err
	}

	return nil
}

func (r *streakRepository) ReplaceStreak(ctx context.Context, streak models.Streak) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, replaceStreak,
		streak.ID, streak.UserID, streak.Current, streak.Longest,
		streak.LastActivity, streak.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "streakRepository.ReplaceStreak").
			Int64("streak_id", streak.ID).
			Msg("failed to replace streak from remote")
		return fmt.Errorf("failed to replace streak: %w", err)
	}

	return nil
}
