package service

import (
	"context"
	"fmt"

	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type dailyLogService struct {
	logs     store.DailyLogRepository
	sessions store.SessionRepository
}

// NewDailyLogService exposes the per-day rollup rows. Daily logs are written
// only by workout mutations, so the service is read-only.
func NewDailyLogService(logs store.DailyLogRepository, sessions store.SessionRepository) DailyLogService {
	return &dailyLogService{logs: logs, sessions: sessions}
}

func (s *dailyLogService) Get(ctx context.Context, id int64) (*models.DailyLog, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	log, err := s.logs.GetDailyLog(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get daily log %d: %w", id, err)
	}
	return &log, nil
}

func (s *dailyLogService) GetAll(ctx context.Context) ([]models.DailyLog, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.GetAllDailyLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all daily logs: %w", err)
	}
	return logs, nil
}
