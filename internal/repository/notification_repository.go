package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/models"
)

const notificationsKey = "notifications"

// SQLiteNotificationRepository implements NotificationRepository over the blob store
type SQLiteNotificationRepository struct {
	db *database.DB
}

// NewSQLiteNotificationRepository creates a new notification repository
func NewSQLiteNotificationRepository(db *database.DB) NotificationRepository {
	return &SQLiteNotificationRepository{db: db}
}

func (r *SQLiteNotificationRepository) load(ctx context.Context) ([]*models.Notification, error) {
	data, found, err := r.db.GetBlob(ctx, notificationsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	if !found {
		notifications := seedNotifications()
		if err := r.save(ctx, notifications); err != nil {
			return nil, err
		}
		return notifications, nil
	}

	var notifications []*models.Notification
	if err := json.Unmarshal(data, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *SQLiteNotificationRepository) save(ctx context.Context, notifications []*models.Notification) error {
	data, err := json.Marshal(notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}
	if err := r.db.PutBlob(ctx, notificationsKey, data); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}
	return nil
}

// ListByUser retrieves notifications addressed to one user, in stored order
func (r *SQLiteNotificationRepository) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	notifications, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Notification
	for _, notification := range notifications {
		if notification.UserID == userID {
			filtered = append(filtered, notification)
		}
	}
	return filtered, nil
}

// Create appends a notification, stamping ID and creation time when unset
func (r *SQLiteNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	if err := validate.Struct(notification); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	notifications, err := r.load(ctx)
	if err != nil {
		return err
	}

	notifications = append(notifications, notification)
	return r.save(ctx, notifications)
}

// MarkRead marks a notification as read
func (r *SQLiteNotificationRepository) MarkRead(ctx context.Context, id string) error {
	notifications, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, notification := range notifications {
		if notification.ID == id {
			notification.Read = true
			return r.save(ctx, notifications)
		}
	}
	return models.ErrNotFound
}
