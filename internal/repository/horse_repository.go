package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/models"
)

const horsesKey = "horses"

// SQLiteHorseRepository implements HorseRepository over the blob store
type SQLiteHorseRepository struct {
	db *database.DB
}

// NewSQLiteHorseRepository creates a new horse repository
func NewSQLiteHorseRepository(db *database.DB) HorseRepository {
	return &SQLiteHorseRepository{db: db}
}

func (r *SQLiteHorseRepository) load(ctx context.Context) ([]*models.Horse, error) {
	data, found, err := r.db.GetBlob(ctx, horsesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load horses: %w", err)
	}
	if !found {
		// First load: persist the seed dataset.
		horses := seedHorses()
		if err := r.save(ctx, horses); err != nil {
			return nil, err
		}
		return horses, nil
	}

	var horses []*models.Horse
	if err := json.Unmarshal(data, &horses); err != nil {
		return nil, fmt.Errorf("failed to decode horses: %w", err)
	}
	return horses, nil
}

func (r *SQLiteHorseRepository) save(ctx context.Context, horses []*models.Horse) error {
	data, err := json.Marshal(horses)
	if err != nil {
		return fmt.Errorf("failed to encode horses: %w", err)
	}
	if err := r.db.PutBlob(ctx, horsesKey, data); err != nil {
		return fmt.Errorf("failed to persist horses: %w", err)
	}
	return nil
}

// List retrieves all horses
func (r *SQLiteHorseRepository) List(ctx context.Context) ([]*models.Horse, error) {
	return r.load(ctx)
}

// GetByID retrieves a horse by ID
func (r *SQLiteHorseRepository) GetByID(ctx context.Context, id string) (*models.Horse, error) {
	horses, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, horse := range horses {
		if horse.ID == id {
			return horse, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create inserts a new horse, assigning an ID when none is set
func (r *SQLiteHorseRepository) Create(ctx context.Context, horse *models.Horse) error {
	if horse.ID == "" {
		horse.ID = uuid.NewString()
	}

	if err := validate.Struct(horse); err != nil {
		return fmt.Errorf("invalid horse: %w", err)
	}

	horses, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, existing := range horses {
		if existing.ID == horse.ID {
			return models.ErrDuplicateEntry
		}
	}

	horses = append(horses, horse)
	return r.save(ctx, horses)
}

// Update replaces an existing horse
func (r *SQLiteHorseRepository) Update(ctx context.Context, horse *models.Horse) error {
	if err := validate.Struct(horse); err != nil {
		return fmt.Errorf("invalid horse: %w", err)
	}

	horses, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, existing := range horses {
		if existing.ID == horse.ID {
			horses[i] = horse
			return r.save(ctx, horses)
		}
	}
	return models.ErrNotFound
}
