// Package metrics provides the centralized Prometheus metrics registry for
// the dashboard core.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	RegistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "raceday",
		Name:      "registrations_total",
		Help:      "Total number of successful horse registrations",
	})
	RegistrationsDeclinedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "raceday",
		Name:      "registrations_declined_total",
		Help:      "Total number of registrations declined at the write path",
	})
	EligibilityRejectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "raceday",
		Name:      "eligibility_rejections_total",
		Help:      "Total number of eligibility evaluations with violations",
	})
	ResultBatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "raceday",
		Name:      "result_batches_total",
		Help:      "Total number of accepted result submissions",
	})
	ResultsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "raceday",
		Name:      "results_recorded_total",
		Help:      "Total number of individual race results recorded",
	})
)

// Gauge metrics
var (
	TotalHorses = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "raceday",
		Name:      "horses",
		Help:      "Number of horses currently in the store",
	})
	TotalRaces = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "raceday",
		Name:      "races",
		Help:      "Number of races currently in the store",
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(RegistrationsTotal)
		registry.MustRegister(RegistrationsDeclinedTotal)
		registry.MustRegister(EligibilityRejectionsTotal)
		registry.MustRegister(ResultBatchesTotal)
		registry.MustRegister(ResultsRecordedTotal)

		registry.MustRegister(TotalHorses)
		registry.MustRegister(TotalRaces)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// RecordRegistration records a successful registration.
func RecordRegistration() {
	RegistrationsTotal.Inc()
}

// RecordRegistrationDeclined records a declined registration.
func RecordRegistrationDeclined() {
	RegistrationsDeclinedTotal.Inc()
}

// RecordEligibilityRejection records an eligibility evaluation that found
// violations.
func RecordEligibilityRejection() {
	EligibilityRejectionsTotal.Inc()
}

// RecordResultBatch records an accepted result submission of n results.
func RecordResultBatch(n int) {
	ResultBatchesTotal.Inc()
	ResultsRecordedTotal.Add(float64(n))
}

// UpdateCollectionSizes updates the store size gauges.
func UpdateCollectionSizes(horses, races int) {
	TotalHorses.Set(float64(horses))
	TotalRaces.Set(float64(races))
}
