package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

type notificationRepository struct {
	*DB
	logger *logger.Logger
}

func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *notificationRepository) SaveNotification(ctx context.Context, n *models.Notification) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, saveNotification, n.UserID, n.Kind, n.Message)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get notification id: %w", err)
		}
		n.ID = id

		return enqueueTx(ctx, tx, models.TableNotification, rowIDString(id), models.OpInsert)
	})
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.SaveNotification").
			Int64("user_id", n.UserID).
			Msg("failed to save notification")
		return err
	}

	return nil
}

func (r *notificationRepository) MarkNotificationRead(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.DB.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, markNotificationRead, id, userID)
		if err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: notification %d", ErrNotFound, id)
		}

		return enqueueTx(ctx, tx, models.TableNotification, rowIDString(id), models.OpUpdate)
	})
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.MarkNotificationRead").
			Int64("notification_id", id).
			Msg("failed to mark notification read")
		return err
	}

	return nil
}

func (r *notificationRepository) GetNotification(ctx context.Context, id, userID int64) (models.Notification, error) {
	var n models.Notification
	row := r.DB.QueryRowContext(ctx, getNotification, id, userID)
	err := row.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.Read, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Notification{}, fmt.Errorf("%w: notification", ErrNotFound)
	}
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to scan notification row: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) GetAllNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllNotifications, userID)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.GetAllNotifications").
			Int64("user_id", userID).
			Msg("failed to execute query for all notifications")
		return nil, fmt.Errorf("failed to query all notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rowsErr)
	}

	return notifications, nil
}

func (r *notificationRepository) ReplaceNotification(ctx context.Context, n models.Notification) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, replaceNotification,
		n.ID, n.UserID, n.Kind, n.Message, n.Read, n.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ReplaceNotification").
			Int64("notification_id", n.ID).
			Msg("failed to replace notification from remote")
		return fmt.Errorf("failed to replace notification: %w", err)
	}

	return nil
}
