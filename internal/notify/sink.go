// Package notify delivers informational events to users through the
// notification collection.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/raceday/internal/models"
	"github.com/yourusername/raceday/internal/repository"
)

// Sink is the side channel the core writes informational events to.
type Sink interface {
	Notify(ctx context.Context, userID, title, message string, kind models.NotificationType) error
}

// StoreSink persists events as Notification entities.
type StoreSink struct {
	repo   repository.NotificationRepository
	logger *logrus.Logger
}

// NewStoreSink creates a sink backed by the notification repository.
func NewStoreSink(repo repository.NotificationRepository, logger *logrus.Logger) *StoreSink {
	return &StoreSink{repo: repo, logger: logger}
}

// Notify writes one notification for the given user.
func (s *StoreSink) Notify(ctx context.Context, userID, title, message string, kind models.NotificationType) error {
	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to deliver notification")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   title,
		"type":    kind,
	}).Debug("Notification delivered")
	return nil
}

// NopSink discards events. Useful where no sink is wired.
type NopSink struct{}

// Notify implements Sink and does nothing.
func (NopSink) Notify(context.Context, string, string, string, models.NotificationType) error {
	return nil
}
