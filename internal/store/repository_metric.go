package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

type metricRepository struct {
	*DB
	logger *logger.Logger
}

func NewMetricRepository(db *DB, logger *logger.Logger) MetricRepository {
	return &metricRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *metricRepository) SaveMetric(ctx context.Context, metric *models.BodyMetric) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, saveMetric,
			metric.UserID, metric.RecordedAt, metric.WeightKG)
		if err != nil {
			return fmt.Errorf("failed to insert metric: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get metric id: %w", err)
		}
		metric.ID = id

		return enqueueTx(ctx, tx, models.TableUserMetrics, rowIDString(id), models.OpInsert)
	})
	if err != nil {
		log.Err(err).
			Str("func", "metricRepository.SaveMetric").
			Int64("user_id", metric.UserID).
			Msg("failed to save metric")
		return err
	}

	return nil
}

func (r *metricRepository) DeleteMetric(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteMetric, id, userID)
		if err != nil {
			return fmt.Errorf("failed to delete metric: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: metric %d", ErrNotFound, id)
		}

		return enqueueTx(ctx, tx, models.TableUserMetrics, rowIDString(id), models.OpDelete)
	})
	if err != nil {
		log.Err(err).
			Str("func", "metricRepository.DeleteMetric").
			Int64("metric_id", id).
			Msg("failed to delete metric")
		return err
	}

	return nil
}

func (r *metricRepository) GetMetric(ctx context.Context, id, userID int64) (models.BodyMetric, error) {
	var m models.BodyMetric
	row := r.DB.QueryRowContext(ctx, getMetric, id, userID)
	err := row.Scan(&m.ID, &m.UserID, &m.RecordedAt, &m.WeightKG)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BodyMetric{}, fmt.Errorf("%w: metric", ErrNotFound)
	}
	if err != nil {
		return models.BodyMetric{}, fmt.Errorf("failed to scan metric row: %w", err)
	}

	return m, nil
}

func (r *metricRepository) GetAllMetrics(ctx context.Context, userID int64) ([]models.BodyMetric, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllMetrics, userID)
	if err != nil {
		log.Err(err).
			Str("func", "metricRepository.GetAllMetrics").
			Int64("user_id", userID).
			Msg("failed to execute query for all metrics")
		return nil, fmt.Errorf("failed to query all metrics: %w", err)
	}
	defer rows.Close()

	var metrics []models.BodyMetric
	for rows.Next() {
		var m models.BodyMetric
		if err := rows.Scan(&m.ID, &m.UserID, &m.RecordedAt, &m.WeightKG); err != nil {
			return nil, fmt.Errorf("failed to scan metric row: %w", err)
		}
		metrics = append(metrics, m)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating metric rows: %w", rowsErr)
	}

	return metrics, nil
}

func (r *metricRepository) LatestMetric(ctx context.Context, userID int64) (models.BodyMetric, error) {
	var m models.BodyMetric
	row := r.DB.QueryRowContext(ctx, latestMetric, userID)
	err := row.Scan(&m.ID, &m.UserID, &m.RecordedAt, &m.WeightKG)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BodyMetric{}, fmt.Errorf("%w: metric", ErrNotFound)
	}
	if err != nil {
		return models.BodyMetric{}, fmt.Errorf("failed to scan latest metric row: %w", err)
	}

	return m, nil
}

func (r *metricRepository) ReplaceMetric(ctx context.Context, metric models.BodyMetric) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, replaceMetric,
		metric.ID, metric.UserID, metric.RecordedAt, metric.WeightKG)
	if err != nil {
		log.Err(err).
			Str("func", "metricRepository.ReplaceMetric").
			Int64("metric_id", metric.ID).
			Msg("failed to replace metric from remote")
		return fmt.Errorf("failed to replace metric: %w", err)
	}

	return nil
}
