// Package stats derives read-only statistics from the stored collections.
// Every projection recomputes from the current snapshot on each call; there
// is no caching to invalidate.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/yourusername/raceday/internal/models"
	"github.com/yourusername/raceday/internal/repository"
)

// Limits bounds the leaderboard projections.
type Limits struct {
	TopHorses     int
	TopOwners     int
	RecentResults int
}

// DefaultLimits returns the dashboard's standard leaderboard sizes.
func DefaultLimits() Limits {
	return Limits{TopHorses: 5, TopOwners: 5, RecentResults: 10}
}

// Aggregator computes statistics over the horse, race, and result
// collections.
type Aggregator struct {
	horses  repository.HorseRepository
	races   repository.RaceRepository
	results repository.ResultRepository
	limits  Limits
	locale  string
}

// NewAggregator creates a new statistics aggregator. Locale selects the
// month labels for the activity projection ("ar" or "en").
func NewAggregator(
	horses repository.HorseRepository,
	races repository.RaceRepository,
	results repository.ResultRepository,
	limits Limits,
	locale string,
) *Aggregator {
	if limits.TopHorses <= 0 {
		limits.TopHorses = DefaultLimits().TopHorses
	}
	if limits.TopOwners <= 0 {
		limits.TopOwners = DefaultLimits().TopOwners
	}
	if limits.RecentResults <= 0 {
		limits.RecentResults = DefaultLimits().RecentResults
	}
	return &Aggregator{
		horses:  horses,
		races:   races,
		results: results,
		limits:  limits,
		locale:  locale,
	}
}

// HorsePerformance is the derived record for one horse. ActualWins and
// Podiums come from the result collection; the horse's stored counters are
// left untouched and only feed the win-rate denominator.
type HorsePerformance struct {
	Horse          *models.Horse
	ActualWins     int
	Podiums        int
	Participations int
	WinRate        float64
	Tier           Tier
}

// HorsePerformances computes per-horse performance for every horse, ranked
// descending by actual wins. The sort is stable, so ties keep input order.
func (a *Aggregator) HorsePerformances(ctx context.Context) ([]*HorsePerformance, error) {
	horses, err := a.horses.List(ctx)
	if err != nil {
		return nil, err
	}
	results, err := a.results.List(ctx)
	if err != nil {
		return nil, err
	}

	perfs := make([]*HorsePerformance, 0, len(horses))
	for _, horse := range horses {
		perf := &HorsePerformance{Horse: horse}
		for _, result := range results {
			if result.HorseID != horse.ID {
				continue
			}
			perf.Participations++
			if result.IsWin() {
				perf.ActualWins++
			}
			if result.IsPodium() {
				perf.Podiums++
			}
		}

		if horse.Races > 0 {
			perf.WinRate = float64(perf.ActualWins) / float64(horse.Races) * 100
		}
		// Manually maintained counters can drift below the recorded wins
		// and push the rate past 100.
		if perf.WinRate > 100 {
			perf.WinRate = 100
		}
		perf.Tier = TierFor(perf.WinRate)

		perfs = append(perfs, perf)
	}

	sort.SliceStable(perfs, func(i, j int) bool {
		return perfs[i].ActualWins > perfs[j].ActualWins
	})
	return perfs, nil
}

// TopHorses returns the leading horses by actual wins.
func (a *Aggregator) TopHorses(ctx context.Context) ([]*HorsePerformance, error) {
	perfs, err := a.HorsePerformances(ctx)
	if err != nil {
		return nil, err
	}
	if len(perfs) > a.limits.TopHorses {
		perfs = perfs[:a.limits.TopHorses]
	}
	return perfs, nil
}

// OwnerStanding is the derived record for one owner. Wins is the canonical,
// result-derived figure the leaderboard ranks by; RecordedWins and
// RecordedRaces carry the horses' stored counters so the legacy numbers
// stay visible.
type OwnerStanding struct {
	OwnerID       string
	OwnerName     string
	Horses        int
	Wins          int
	RecordedWins  int
	RecordedRaces int
}

// TopOwners groups horses by owner and returns the leading owners by
// result-derived wins.
func (a *Aggregator) TopOwners(ctx context.Context) ([]*OwnerStanding, error) {
	horses, err := a.horses.List(ctx)
	if err != nil {
		return nil, err
	}
	results, err := a.results.List(ctx)
	if err != nil {
		return nil, err
	}

	winsByHorse := make(map[string]int)
	for _, result := range results {
		if result.IsWin() {
			winsByHorse[result.HorseID]++
		}
	}

	byOwner := make(map[string]*OwnerStanding)
	var order []string
	for _, horse := range horses {
		standing, ok := byOwner[horse.OwnerID]
		if !ok {
			standing = &OwnerStanding{OwnerID: horse.OwnerID, OwnerName: horse.OwnerName}
			byOwner[horse.OwnerID] = standing
			order = append(order, horse.OwnerID)
		}
		standing.Horses++
		standing.Wins += winsByHorse[horse.ID]
		standing.RecordedWins += horse.Wins
		standing.RecordedRaces += horse.Races
	}

	standings := make([]*OwnerStanding, 0, len(order))
	for _, ownerID := range order {
		standings = append(standings, byOwner[ownerID])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})
	if len(standings) > a.limits.TopOwners {
		standings = standings[:a.limits.TopOwners]
	}
	return standings, nil
}

// RecentResults returns the newest results first.
func (a *Aggregator) RecentResults(ctx context.Context) ([]*models.RaceResult, error) {
	results, err := a.results.List(ctx)
	if err != nil {
		return nil, err
	}

	recent := make([]*models.RaceResult, len(results))
	copy(recent, results)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > a.limits.RecentResults {
		recent = recent[:a.limits.RecentResults]
	}
	return recent, nil
}

// MonthlyCount is the number of races falling in one calendar month.
type MonthlyCount struct {
	Year  int
	Month time.Month
	Label string
	Count int
}

// MonthlyActivity buckets races by the calendar month of their date,
// oldest month first. Races with unparseable dates are skipped.
func (a *Aggregator) MonthlyActivity(ctx context.Context) ([]*MonthlyCount, error) {
	races, err := a.races.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[int]*MonthlyCount)
	for _, race := range races {
		day, err := race.Day()
		if err != nil {
			continue
		}

		key := day.Year()*100 + int(day.Month())
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthlyCount{
				Year:  day.Year(),
				Month: day.Month(),
				Label: monthLabel(day.Month(), day.Year(), a.locale),
			}
			buckets[key] = bucket
		}
		bucket.Count++
	}

	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	counts := make([]*MonthlyCount, 0, len(keys))
	for _, key := range keys {
		counts = append(counts, buckets[key])
	}
	return counts, nil
}

// Overview is the dashboard's headline totals.
type Overview struct {
	TotalRaces     int
	TotalHorses    int
	TotalOwners    int
	CompletedRaces int
	UpcomingRaces  int
	TotalResults   int
}

// Overview computes the headline totals of the current snapshot.
func (a *Aggregator) Overview(ctx context.Context) (*Overview, error) {
	horses, err := a.horses.List(ctx)
	if err != nil {
		return nil, err
	}
	races, err := a.races.List(ctx)
	if err != nil {
		return nil, err
	}
	results, err := a.results.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]struct{})
	for _, horse := range horses {
		owners[horse.OwnerID] = struct{}{}
	}

	overview := &Overview{
		TotalRaces:   len(races),
		TotalHorses:  len(horses),
		TotalOwners:  len(owners),
		TotalResults: len(results),
	}
	for _, race := range races {
		switch race.Status {
		case models.RaceCompleted:
			overview.CompletedRaces++
		case models.RaceUpcoming:
			overview.UpcomingRaces++
		}
	}
	return overview, nil
}
