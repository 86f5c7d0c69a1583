package repository

import (
	"context"

	"github.com/yourusername/raceday/internal/models"
)

// HorseRepository defines the interface for horse data access
type HorseRepository interface {
	List(ctx context.Context) ([]*models.Horse, error)
	GetByID(ctx context.Context, id string) (*models.Horse, error)
	Create(ctx context.Context, horse *models.Horse) error
	Update(ctx context.Context, horse *models.Horse) error
}

// RaceRepository defines the interface for race data access
type RaceRepository interface {
	List(ctx context.Context) ([]*models.Race, error)
	GetByID(ctx context.Context, id string) (*models.Race, error)
	GetByStatus(ctx context.Context, status models.RaceStatus) ([]*models.Race, error)
	Create(ctx context.Context, race *models.Race) error
	Update(ctx context.Context, race *models.Race) error
}

// ResultRepository defines the interface for race result data access.
// Results are append-only; there is no update or delete.
type ResultRepository interface {
	List(ctx context.Context) ([]*models.RaceResult, error)
	GetByRaceID(ctx context.Context, raceID string) ([]*models.RaceResult, error)
	AppendBatch(ctx context.Context, results []*models.RaceResult) error
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	MarkRead(ctx context.Context, id string) error
}
