// Package results records final race standings submitted by judges.
package results

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/raceday/internal/logger"
	"github.com/yourusername/raceday/internal/metrics"
	"github.com/yourusername/raceday/internal/models"
	"github.com/yourusername/raceday/internal/notify"
	"github.com/yourusername/raceday/internal/repository"
)

// Entry is one ranked row of a judge's submission.
type Entry struct {
	HorseID    string `json:"horseId"`
	Position   int    `json:"position"`
	Time       string `json:"time"`
	JockeyName string `json:"jockeyName"`
	Penalties  string `json:"penalties,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Recorder persists full ranked result sets for races.
type Recorder struct {
	races   repository.RaceRepository
	horses  repository.HorseRepository
	results repository.ResultRepository
	sink    notify.Sink
	audit   *logger.AuditLogger
	logger  *logrus.Logger
}

// NewRecorder creates a new results recorder.
func NewRecorder(
	races repository.RaceRepository,
	horses repository.HorseRepository,
	results repository.ResultRepository,
	sink notify.Sink,
	log *logrus.Logger,
) *Recorder {
	return &Recorder{
		races:   races,
		horses:  horses,
		results: results,
		sink:    sink,
		audit:   logger.NewAuditLogger(log),
		logger:  log,
	}
}

// Submit records the final standings for one race. The whole batch is
// rejected when any entry lacks a time or jockey name, or references a
// horse that is not in the store; on success one result per entry is
// appended, sorted by position and stamped with the submitting judge and a
// single submission timestamp. Positions are taken as supplied; the
// recorder does not verify they are contiguous or unique, and it does not
// touch the horses' stored counters.
func (r *Recorder) Submit(ctx context.Context, raceID, judgeID string, entries []Entry) ([]*models.RaceResult, error) {
	if len(entries) == 0 {
		r.audit.LogResultSubmissionRejected(raceID, judgeID, "empty submission")
		return nil, models.ErrIncompleteSubmission
	}

	for _, entry := range entries {
		if strings.TrimSpace(entry.Time) == "" || strings.TrimSpace(entry.JockeyName) == "" {
			r.audit.LogResultSubmissionRejected(raceID, judgeID, "missing time or jockey name")
			return nil, models.ErrIncompleteSubmission
		}
	}

	race, err := r.races.GetByID(ctx, raceID)
	if err != nil {
		return nil, err
	}

	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Position < ranked[j].Position
	})

	stamp := time.Now().UTC()

	batch := make([]*models.RaceResult, 0, len(ranked))
	for _, entry := range ranked {
		horse, err := r.horses.GetByID(ctx, entry.HorseID)
		if errors.Is(err, models.ErrNotFound) {
			r.audit.LogResultSubmissionRejected(raceID, judgeID, "unknown horse "+entry.HorseID)
			return nil, fmt.Errorf("entry for horse %s: %w", entry.HorseID, models.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve horse %s: %w", entry.HorseID, err)
		}

		batch = append(batch, &models.RaceResult{
			ID:         uuid.NewString(),
			RaceID:     race.ID,
			RaceName:   race.Name,
			HorseID:    horse.ID,
			HorseName:  horse.Name,
			Position:   entry.Position,
			Time:       entry.Time,
			JockeyName: entry.JockeyName,
			Penalties:  entry.Penalties,
			Notes:      entry.Notes,
			JudgeID:    judgeID,
			CreatedAt:  stamp,
		})
	}

	if err := r.results.AppendBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to record results: %w", err)
	}

	metrics.RecordResultBatch(len(batch))
	r.audit.LogResultSubmission(raceID, judgeID, len(batch))

	message := fmt.Sprintf("تم تسجيل نتائج سباق %s", race.Name)
	if err := r.sink.Notify(ctx, race.OrganizerID, "تم حفظ النتائج", message, models.NotifySuccess); err != nil {
		r.logger.WithError(err).Warn("Result notification not delivered")
	}

	return batch, nil
}
