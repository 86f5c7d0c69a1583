package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/models"
)

const resultsKey = "results"

// SQLiteResultRepository implements ResultRepository over the blob store
type SQLiteResultRepository struct {
	db *database.DB
}

// NewSQLiteResultRepository creates a new result repository
func NewSQLiteResultRepository(db *database.DB) ResultRepository {
	return &SQLiteResultRepository{db: db}
}

func (r *SQLiteResultRepository) load(ctx context.Context) ([]*models.RaceResult, error) {
	data, found, err := r.db.GetBlob(ctx, resultsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	if !found {
		// First load: persist the seed dataset.
		results := seedResults()
		if err := r.save(ctx, results); err != nil {
			return nil, err
		}
		return results, nil
	}

	var results []*models.RaceResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return results, nil
}

func (r *SQLiteResultRepository) save(ctx context.Context, results []*models.RaceResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := r.db.PutBlob(ctx, resultsKey, data); err != nil {
		return fmt.Errorf("failed to persist results: %w", err)
	}
	return nil
}

// List retrieves all recorded results
func (r *SQLiteResultRepository) List(ctx context.Context) ([]*models.RaceResult, error) {
	return r.load(ctx)
}

// GetByRaceID retrieves the results for one race ordered by finishing position
func (r *SQLiteResultRepository) GetByRaceID(ctx context.Context, raceID string) ([]*models.RaceResult, error) {
	results, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*models.RaceResult
	for _, result := range results {
		if result.RaceID == raceID {
			filtered = append(filtered, result)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Position < filtered[j].Position
	})
	return filtered, nil
}

// AppendBatch appends a set of results in a single write. Either every
// result in the batch is persisted or none is.
func (r *SQLiteResultRepository) AppendBatch(ctx context.Context, batch []*models.RaceResult) error {
	for _, result := range batch {
		if err := validate.Struct(result); err != nil {
			return fmt.Errorf("invalid result: %w", err)
		}
	}

	results, err := r.load(ctx)
	if err != nil {
		return err
	}

	results = append(results, batch...)
	return r.save(ctx, results)
}
