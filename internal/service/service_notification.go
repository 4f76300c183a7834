package service

import (
	"context"
	"fmt"

	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type notificationService struct {
	notifications store.NotificationRepository
	sessions      store.SessionRepository
}

func NewNotificationService(notifications store.NotificationRepository, sessions store.SessionRepository) NotificationService {
	return &notificationService{notifications: notifications, sessions: sessions}
}

func (s *notificationService) Save(ctx context.Context, n *models.Notification) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	n.UserID = userID

	if n.Message == "" {
		return fmt.Errorf("%w: notification message is required", ErrValidation)
	}
	if err = s.notifications.SaveNotification(ctx, n); err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	return nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return err
	}
	if err = s.notifications.MarkNotificationRead(ctx, id, userID); err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return nil
}

func (s *notificationService) GetAll(ctx context.Context) ([]models.Notification, error) {
	userID, err := currentUserID(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.GetAllNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) Unread(ctx context.Context) ([]models.Notification, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	unread := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}
