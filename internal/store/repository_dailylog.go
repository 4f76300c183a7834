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

// dailyLogRepository reads activity rows. Writes happen inside workout
// mutations (same transaction) or through ReplaceDailyLog during pulls.
type dailyLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewDailyLogRepository(db *DB, logger *logger.Logger) DailyLogRepository {
	return &dailyLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *dailyLogRepository) GetDailyLog(ctx context.Context, id, userID int64) (models.DailyLog, error) {
	var d models.DailyLog
	row := r.DB.QueryRowContext(ctx, getDailyLog, id, userID)
	err := row.Scan(&d.ID, &d.UserID, &d.Date, &d.WorkoutCount)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyLog{}, fmt.Errorf("%w: daily log", ErrNotFound)
	}
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("failed to scan daily log row: %w", err)
	}

	return d, nil
}

func (r *dailyLogRepository) GetAllDailyLogs(ctx context.Context, userID int64) ([]models.DailyLog, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllDailyLogs, userID)
	if err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.GetAllDailyLogs").
			Int64("user_id", userID).
			Msg("failed to execute query for all daily logs")
		return nil, fmt.Errorf("failed to query all daily logs: %w", err)
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		var d models.DailyLog
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date, &d.WorkoutCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily log row: %w", err)
		}
		logs = append(logs, d)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating daily log rows: %w", rowsErr)
	}

	return logs, nil
}

func (r *dailyLogRepository) ActivityDates(ctx context.Context, userID int64) ([]time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildActivityDates(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build activity dates query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.ActivityDates").
			Int64("user_id", userID).
			Msg("failed to execute query for activity dates")
		return nil, fmt.Errorf("failed to query activity dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan activity date: %w", err)
		}
		dates = append(dates, d)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating activity dates: %w", rowsErr)
	}

	return dates, nil
}

func (r *dailyLogRepository) ReplaceDailyLog(ctx context.Context, dailyLog models.DailyLog) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, replaceDailyLog,
		dailyLog.ID, dailyLog.UserID, dailyLog.Date, dailyLog.WorkoutCount)
	if err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.ReplaceDailyLog").
			Int64("daily_log_id", dailyLog.ID).
			Msg("failed to replace daily log from remote")
		return fmt.Errorf("failed to replace daily log: %w", err)
	}

	return nil
}
