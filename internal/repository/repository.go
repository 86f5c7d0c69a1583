package repository

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/raceday/internal/database"
)

// validate checks entity payloads on every create and update.
var validate = validator.New()

// Repositories holds all repository implementations
type Repositories struct {
	Horse        HorseRepository
	Race         RaceRepository
	Result       ResultRepository
	Notification NotificationRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("store handle is required")
	}

	return &Repositories{
		Horse:        NewSQLiteHorseRepository(db),
		Race:         NewSQLiteRaceRepository(db),
		Result:       NewSQLiteResultRepository(db),
		Notification: NewSQLiteNotificationRepository(db),
	}, nil
}
