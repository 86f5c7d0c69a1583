package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/eligibility"
	"github.com/yourusername/raceday/internal/models"
)

const racesKey = "races"

// SQLiteRaceRepository implements RaceRepository over the blob store
type SQLiteRaceRepository struct {
	db *database.DB
}

// NewSQLiteRaceRepository creates a new race repository
func NewSQLiteRaceRepository(db *database.DB) RaceRepository {
	return &SQLiteRaceRepository{db: db}
}

func (r *SQLiteRaceRepository) load(ctx context.Context) ([]*models.Race, error) {
	data, found, err := r.db.GetBlob(ctx, racesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load races: %w", err)
	}
	if !found {
		// First load: persist the seed dataset.
		races := seedRaces()
		if err := r.save(ctx, races); err != nil {
			return nil, err
		}
		return races, nil
	}

	var races []*models.Race
	if err := json.Unmarshal(data, &races); err != nil {
		return nil, fmt.Errorf("failed to decode races: %w", err)
	}
	return races, nil
}

func (r *SQLiteRaceRepository) save(ctx context.Context, races []*models.Race) error {
	data, err := json.Marshal(races)
	if err != nil {
		return fmt.Errorf("failed to encode races: %w", err)
	}
	if err := r.db.PutBlob(ctx, racesKey, data); err != nil {
		return fmt.Errorf("failed to persist races: %w", err)
	}
	return nil
}

// List retrieves all races
func (r *SQLiteRaceRepository) List(ctx context.Context) ([]*models.Race, error) {
	return r.load(ctx)
}

// GetByID retrieves a race by ID
func (r *SQLiteRaceRepository) GetByID(ctx context.Context, id string) (*models.Race, error) {
	races, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, race := range races {
		if race.ID == id {
			return race, nil
		}
	}
	return nil, models.ErrNotFound
}

// GetByStatus retrieves races in the given lifecycle state, in stored order
func (r *SQLiteRaceRepository) GetByStatus(ctx context.Context, status models.RaceStatus) ([]*models.Race, error) {
	races, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Race
	for _, race := range races {
		if race.Status == status {
			filtered = append(filtered, race)
		}
	}
	return filtered, nil
}

// Create inserts a new race. The free-text age category is parsed into a
// structured range here, once, so eligibility checks never re-parse the
// label. New races default to upcoming with an empty roster.
func (r *SQLiteRaceRepository) Create(ctx context.Context, race *models.Race) error {
	if race.ID == "" {
		race.ID = uuid.NewString()
	}
	if race.Status == "" {
		race.Status = models.RaceUpcoming
	}
	if race.RegisteredHorses == nil {
		race.RegisteredHorses = []string{}
	}
	if race.AgeRange.Open() && race.AgeCategory != "" {
		race.AgeRange = eligibility.ParseAgeCategory(race.AgeCategory)
	}

	if err := validate.Struct(race); err != nil {
		return fmt.Errorf("invalid race: %w", err)
	}

	races, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, existing := range races {
		if existing.ID == race.ID {
			return models.ErrDuplicateEntry
		}
	}

	races = append(races, race)
	return r.save(ctx, races)
}

// Update replaces an existing race
func (r *SQLiteRaceRepository) Update(ctx context.Context, race *models.Race) error {
	if err := validate.Struct(race); err != nil {
		return fmt.Errorf("invalid race: %w", err)
	}

	races, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, existing := range races {
		if existing.ID == race.ID {
			races[i] = race
			return r.save(ctx, races)
		}
	}
	return models.ErrNotFound
}
