package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"maidly/database/repository"
	"maidly/models"

	"go.uber.org/zap"
)

// ErrInvalidQuery signals a caller contract violation: a discovery or
// recommendation request without a coordinate.
var ErrInvalidQuery = errors.New("query is missing a location coordinate")

// Service defines the maid discovery operations.
type Service interface {
	Search(ctx context.Context, query models.DiscoveryQuery) ([]models.RankedMaid, error)
}

// DefaultService implements Service over a catalog snapshot.
type DefaultService struct {
	Catalog repository.MaidCatalog
	Logger  *zap.Logger
}

// Search fetches a catalog snapshot and ranks it against the query. Catalog
// failures propagate: discovery is the primary request, not an enhancement.
func (s *DefaultService) Search(ctx context.Context, query models.DiscoveryQuery) ([]models.RankedMaid, error) {
	if query.Location == nil {
		return nil, ErrInvalidQuery
	}

	snapshot, err := s.Catalog.Search(ctx, repository.SearchCriteria{
		Service:   query.Service,
		MinRating: query.MinRating,
		MaxPrice:  query.MaxPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve maids: %w", err)
	}

	results, err := FilterAndRank(query, snapshot)
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("maid search completed",
		zap.Int("candidates", len(snapshot)),
		zap.Int("matched", len(results)),
		zap.Float64("radiusKm", query.EffectiveRadius()))
	return results, nil
}

// FilterAndRank applies the discovery pipeline over a catalog snapshot:
// drop maids that are inactive, unverified, or unlocated; apply the optional
// service, rating, and price filters; keep maids within the query radius;
// sort ascending by distance with maid ID as a stable tie-break.
func FilterAndRank(query models.DiscoveryQuery, snapshot []models.MaidProfile) ([]models.RankedMaid, error) {
	if query.Location == nil {
		return nil, ErrInvalidQuery
	}
	radius := query.EffectiveRadius()

	results := make([]models.RankedMaid, 0, len(snapshot))
	for _, m := range snapshot {
		if !m.IsActive || !m.IsVerified || m.Location == nil {
			continue
		}
		if query.Service != "" && !m.Offers(query.Service) {
			continue
		}
		if query.MinRating != nil && m.Rating < *query.MinRating {
			continue
		}
		if query.MaxPrice != nil && m.HourlyRate > *query.MaxPrice {
			continue
		}
		dist := Distance(*query.Location, *m.Location)
		if dist > radius {
			continue
		}
		results = append(results, models.RankedMaid{Maid: m, DistanceKm: dist})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Maid.ID < results[j].Maid.ID
	})
	return results, nil
}
