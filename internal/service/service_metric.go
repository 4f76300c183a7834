package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type metricService struct {
	metrics  store.MetricRepository
	sessions store.SessionRepository
}

func NewMetricService(metrics store.MetricRepository, sessions store.SessionRepository) MetricService {
	return &metricService{metrics: metrics, sessions: sessions}
}

func (s *metricService) Save(ctx context.Context, metric *models.BodyMetric) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	metric.UserID = userID

	if metric.WeightKG <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if metric.RecordedAt.IsZero() {
		metric.RecordedAt = time.Now()
	}
	if err = s.metrics.SaveMetric(ctx, metric); err != nil {
		return fmt.Errorf("save metric: %w", err)
	}
	return nil
}

func (s *metricService) Delete(ctx context.Context, id int64) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	if err = s.metrics.DeleteMetric(ctx, id, userID); err != nil {
		return fmt.Errorf("delete metric %d: %w", id, err)
	}
	return nil
}

func (s *metricService) Get(ctx context.Context, id int64) (*models.BodyMetric, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	metric, err := s.metrics.GetMetric(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get metric %d: %w", id, err)
	}
	return &metric, nil
}

func (s *metricService) GetAll(ctx context.Context) ([]models.BodyMetric, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	metrics, err := s.metrics.GetAllMetrics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all metrics: %w", err)
	}
	return metrics, nil
}

func (s *metricService) Latest(ctx context.Context) (*models.BodyMetric, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	metric, err := s.metrics.LatestMetric(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest metric: %w", err)
	}
	return &metric, nil
}
