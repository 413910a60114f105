package scheduling

import (
	"context"
	"fmt"
	"time"

	"maidly/database/repository"
	"maidly/models"

	"go.uber.org/zap"
)

// Defaults applied when the caller passes non-positive values.
const (
	DefaultHorizonDays = 14
	DefaultMaxResults  = 6
)

// Service defines scheduling-suggestion operations.
type Service interface {
	NextAvailable(ctx context.Context, maidID string, horizonDays, maxResults int) ([]time.Time, error)
}

// DefaultService implements Service over the catalog and booking store.
type DefaultService struct {
	Catalog repository.MaidCatalog
	History repository.BookingHistory
	Logger  *zap.Logger
}

// NextAvailable returns upcoming bookable start times for a maid. An unknown
// maid surfaces repository.ErrMaidNotFound; a known maid with no open slots
// yields an empty list.
func (s *DefaultService) NextAvailable(ctx context.Context, maidID string, horizonDays, maxResults int) ([]time.Time, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	maid, err := s.Catalog.FindByID(ctx, maidID)
	if err != nil {
		if err == repository.ErrMaidNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load maid %s: %w", maidID, err)
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, horizonDays)
	commitments, err := s.History.CommitmentsInWindow(ctx, maidID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments for maid %s: %w", maidID, err)
	}

	slots := SuggestSlots(maid.Availability, commitments, now, horizonDays, maxResults)
	s.Logger.Debug("scheduling suggestions computed",
		zap.String("maidId", maidID),
		zap.Int("commitments", len(commitments)),
		zap.Int("suggestions", len(slots)))
	return slots, nil
}

// SuggestSlots walks the calendar from now's date forward horizonDays days
// and collects concrete start times from the weekly template. Days marked
// unavailable are skipped, as is any day holding an existing commitment
// (a single commitment blocks the whole day). No returned time is ever at or
// before now, even for today's already-passed slots. Results are
// chronological and truncated to maxResults.
func SuggestSlots(template models.WeeklyAvailability, commitments []models.Commitment, now time.Time, horizonDays, maxResults int) []time.Time {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	suggestions := make([]time.Time, 0, maxResults)
	for i := 0; i < horizonDays && len(suggestions) < maxResults; i++ {
		day := now.AddDate(0, 0, i)
		entry, ok := template[day.Weekday()]
		if !ok || !entry.Available {
			continue
		}
		if dayBlocked(day, commitments) {
			continue
		}
		for _, w := range entry.Slots {
			hour, min, err := w.StartClock()
			if err != nil {
				continue
			}
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, now.Location())
			if !start.After(now) {
				continue
			}
			suggestions = append(suggestions, start)
			if len(suggestions) >= maxResults {
				break
			}
		}
	}
	return suggestions
}

// dayBlocked reports whether any commitment falls on the same calendar date.
func dayBlocked(day time.Time, commitments []models.Commitment) bool {
	y, m, d := day.Date()
	for _, c := range commitments {
		cy, cm, cd := c.ScheduledDate.In(day.Location()).Date()
		if cy == y && cm == m && cd == d {
			return true
		}
	}
	return false
}
