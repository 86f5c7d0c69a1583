// Package registration applies registration decisions to the store.
package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/raceday/internal/logger"
	"github.com/yourusername/raceday/internal/metrics"
	"github.com/yourusername/raceday/internal/models"
	"github.com/yourusername/raceday/internal/notify"
	"github.com/yourusername/raceday/internal/repository"
)

// Coordinator owns the authoritative write path for race rosters. Callers
// are expected to run the eligibility evaluator first, but the guards here
// are the ones that hold.
type Coordinator struct {
	races  repository.RaceRepository
	horses repository.HorseRepository
	sink   notify.Sink
	audit  *logger.AuditLogger
	logger *logrus.Logger
}

// NewCoordinator creates a new registration coordinator.
func NewCoordinator(
	races repository.RaceRepository,
	horses repository.HorseRepository,
	sink notify.Sink,
	log *logrus.Logger,
) *Coordinator {
	return &Coordinator{
		races:  races,
		horses: horses,
		sink:   sink,
		audit:  logger.NewAuditLogger(log),
		logger: log,
	}
}

// Register enters the horse into the race's roster. The race and horse are
// re-resolved and capacity and duplication are re-checked at the moment of
// mutation. Returns false without mutation when the race or horse does not
// exist, the race is full, or the horse is already on the roster; the roster
// only ever grows.
func (c *Coordinator) Register(ctx context.Context, raceID, horseID string) (bool, error) {
	race, err := c.races.GetByID(ctx, raceID)
	if errors.Is(err, models.ErrNotFound) {
		c.decline(raceID, horseID, "race not found")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve race: %w", err)
	}

	horse, err := c.horses.GetByID(ctx, horseID)
	if errors.Is(err, models.ErrNotFound) {
		c.decline(raceID, horseID, "horse not found")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve horse: %w", err)
	}

	if race.IsFull() {
		c.decline(raceID, horseID, "race at capacity")
		return false, nil
	}

	if race.HasEntry(horseID) {
		c.decline(raceID, horseID, "duplicate registration")
		return false, nil
	}

	race.RegisteredHorses = append(race.RegisteredHorses, horseID)
	if err := c.races.Update(ctx, race); err != nil {
		return false, fmt.Errorf("failed to persist roster: %w", err)
	}

	metrics.RecordRegistration()
	c.audit.LogRegistration(raceID, horseID, len(race.RegisteredHorses), race.MaxHorses)

	message := fmt.Sprintf("تم تسجيل %s في سباق %s", horse.Name, race.Name)
	if err := c.sink.Notify(ctx, horse.OwnerID, "تم التسجيل بنجاح", message, models.NotifySuccess); err != nil {
		// The registration itself is committed; a lost notification is not
		// a failure of the operation.
		c.logger.WithError(err).Warn("Registration notification not delivered")
	}

	return true, nil
}

func (c *Coordinator) decline(raceID, horseID, reason string) {
	metrics.RecordRegistrationDeclined()
	c.audit.LogRegistrationDeclined(raceID, horseID, reason)
}
