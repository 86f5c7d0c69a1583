// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogRegistration logs a successful horse registration.
func (al *AuditLogger) LogRegistration(raceID, horseID string, rosterSize, maxHorses int) {
	al.WithFields(logrus.Fields{
		"race_id":     raceID,
		"horse_id":    horseID,
		"roster_size": rosterSize,
		"max_horses":  maxHorses,
	}).Info("Horse registration recorded")
}

// LogRegistrationDeclined logs a registration declined at the write path.
func (al *AuditLogger) LogRegistrationDeclined(raceID, horseID, reason string) {
	al.WithFields(logrus.Fields{
		"race_id":  raceID,
		"horse_id": horseID,
		"reason":   reason,
	}).Warn("Horse registration declined")
}

// LogResultSubmission logs an accepted batch of race results.
func (al *AuditLogger) LogResultSubmission(raceID, judgeID string, resultCount int) {
	al.WithFields(logrus.Fields{
		"race_id":      raceID,
		"judge_id":     judgeID,
		"result_count": resultCount,
	}).Info("Race results recorded")
}

// LogResultSubmissionRejected logs a rejected result submission.
func (al *AuditLogger) LogResultSubmissionRejected(raceID, judgeID, reason string) {
	al.WithFields(logrus.Fields{
		"race_id":  raceID,
		"judge_id": judgeID,
		"reason":   reason,
	}).Warn("Race result submission rejected")
}
