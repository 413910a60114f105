package recommendation

import (
	"fmt"
	"time"

	"maidly/models"
)

// Scoring weights. Each term is independent and additive; the sum is clamped
// to [0,100].
const (
	RatingWeight       = 20.0
	ProximityWeight    = 2.0
	ProximityCutoffKm  = 25.0
	ServiceMatchBonus  = 30.0
	BudgetFitBonus     = 20.0
	ExperienceWeight   = 2.0
	ExperienceCap      = 20.0
	BackgroundBonus    = 15.0
	HistoryBonus       = 10.0
	HistoryRatingFloor = 4.0
	MaxScore           = 100.0
)

// ScoreMaid computes the weighted relevance score for one candidate.
// distanceKm must come from discovery.Distance so that scoring and search
// agree on proximity. Absent optional fields contribute zero.
func ScoreMaid(maid models.MaidProfile, req models.RecommendationRequest, distanceKm float64, history []models.BookingRecord) float64 {
	score := maid.Rating * RatingWeight

	if d := ProximityCutoffKm - distanceKm; d > 0 {
		score += d * ProximityWeight
	}

	if req.ServiceType != "" && maid.Offers(req.ServiceType) {
		score += ServiceMatchBonus
	}

	if req.Budget != nil && maid.HourlyRate <= *req.Budget {
		score += BudgetFitBonus
	}

	exp := float64(maid.ExperienceYears) * ExperienceWeight
	if exp > ExperienceCap {
		exp = ExperienceCap
	}
	score += exp

	if maid.BackgroundCheck {
		score += BackgroundBonus
	}

	if historyAffinity(req.ServiceType, history) {
		score += HistoryBonus
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// historyAffinity reports whether the customer's past bookings for the
// requested service averaged a review rating at or above the floor.
// Bookings without a review count as rating 0 in the average, not excluded.
func historyAffinity(serviceType string, history []models.BookingRecord) bool {
	if serviceType == "" {
		return false
	}
	var sum float64
	var count int
	for _, b := range history {
		if b.ServiceID != serviceType {
			continue
		}
		count++
		if b.ReviewRating != nil {
			sum += *b.ReviewRating
		}
	}
	if count == 0 {
		return false
	}
	return sum/float64(count) >= HistoryRatingFloor
}

// Reasons derives up to three human-readable justifications for recommending
// the maid, evaluated in fixed priority order. The reasons are independent of
// the score weights.
func Reasons(maid models.MaidProfile, req models.RecommendationRequest, distanceKm float64, now time.Time) []string {
	var reasons []string

	if maid.Rating >= 4.5 {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f/5.0)", maid.Rating))
	}
	if maid.BackgroundCheck {
		reasons = append(reasons, "Background verified")
	}
	if maid.ExperienceYears >= 5 {
		reasons = append(reasons, fmt.Sprintf("%d years of experience", maid.ExperienceYears))
	}
	if distanceKm <= 5 {
		reasons = append(reasons, "Very close to your location")
	}
	if req.Budget != nil && maid.HourlyRate <= *req.Budget*0.8 {
		reasons = append(reasons, "Budget-friendly pricing")
	}

	cutoff := now.AddDate(0, 0, -30)
	recent := 0
	for _, r := range maid.RecentReviews {
		if r.CreatedAt.After(cutoff) {
			recent++
		}
	}
	if recent >= 3 {
		reasons = append(reasons, "Recently active with positive reviews")
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return reasons
}
