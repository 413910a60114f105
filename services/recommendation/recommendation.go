package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"maidly/database/repository"
	"maidly/models"
	"maidly/services/discovery"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// historyLimit bounds the booking history used for personalization.
const historyLimit = 10

// Service defines personalized maid recommendation.
type Service interface {
	Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.ScoredMaid, error)
}

// DefaultService implements Service. Results are cached briefly since the
// same customer tends to re-request while browsing.
type DefaultService struct {
	Catalog  repository.MaidCatalog
	History  repository.BookingHistory
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// Recommend scores active, verified, located maids within 25 km of the
// customer and returns the top ten. Upstream fetch failures degrade to an
// empty result: recommendations are best-effort, never fatal to the caller.
func (s *DefaultService) Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.ScoredMaid, error) {
	if req.Location == nil {
		return nil, discovery.ErrInvalidQuery
	}

	cacheKey, cacheable := s.cacheKey(req)
	if cacheable {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var results []models.ScoredMaid
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results, nil
			}
			// Unreadable cache entry falls through to re-computation.
		}
	}

	snapshot, err := s.Catalog.ActiveVerified(ctx)
	if err != nil {
		s.Logger.Warn("recommendation catalog fetch failed, returning empty result", zap.Error(err))
		return []models.ScoredMaid{}, nil
	}
	history, err := s.History.RecentByCustomer(ctx, req.CustomerID, historyLimit)
	if err != nil {
		s.Logger.Warn("recommendation history fetch failed, returning empty result", zap.Error(err))
		return []models.ScoredMaid{}, nil
	}

	results := Rank(req, snapshot, history, time.Now())

	if cacheable {
		if payload, err := json.Marshal(results); err == nil {
			s.Cache.Set(ctx, cacheKey, payload, s.CacheTTL)
		}
	}
	return results, nil
}

func (s *DefaultService) cacheKey(req models.RecommendationRequest) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("recommend:%x", reqBytes), true
}

// Rank scores and explains every located candidate within the fixed 25 km
// recommendation radius, sorts descending by score (maid ID breaks ties for
// determinism), and truncates to the top ten.
func Rank(req models.RecommendationRequest, snapshot []models.MaidProfile, history []models.BookingRecord, now time.Time) []models.ScoredMaid {
	results := make([]models.ScoredMaid, 0, len(snapshot))
	for _, m := range snapshot {
		if !m.IsActive || !m.IsVerified || m.Location == nil {
			continue
		}
		dist := discovery.Distance(*req.Location, *m.Location)
		if dist > ProximityCutoffKm {
			continue
		}
		results = append(results, models.ScoredMaid{
			Maid:       m,
			Score:      ScoreMaid(m, req, dist, history),
			Reasons:    Reasons(m, req, dist, now),
			DistanceKm: dist,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Maid.ID < results[j].Maid.ID
	})

	if len(results) > 10 {
		results = results[:10]
	}
	return results
}
