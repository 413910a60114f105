package recommendation

import (
	"testing"
	"time"

	"maidly/models"
)

func floatPtr(v float64) *float64 { return &v }

func coordPtr(lat, lon float64) *models.Coordinate {
	return &models.Coordinate{Latitude: lat, Longitude: lon}
}

func baseMaid() models.MaidProfile {
	return models.MaidProfile{
		ID:         "m1",
		Name:       "Asha",
		Location:   coordPtr(19.0760, 72.8777),
		HourlyRate: 320,
		Rating:     4.2,
		IsActive:   true,
		IsVerified: true,
		Services: []models.ServiceOffering{
			{ServiceID: "housekeeping", Offered: true},
		},
	}
}

func TestScoreMaid_Clamped(t *testing.T) {
	maid := baseMaid()
	maid.Rating = 5.0
	maid.ExperienceYears = 20
	maid.BackgroundCheck = true

	req := models.RecommendationRequest{
		CustomerID:  "c1",
		Location:    coordPtr(19.0760, 72.8777),
		ServiceType: "housekeeping",
		Budget:      floatPtr(500),
	}
	history := []models.BookingRecord{
		{ServiceID: "housekeeping", ReviewRating: floatPtr(5)},
	}

	// Every term maxed: raw sum is well over 100.
	score := ScoreMaid(maid, req, 0, history)
	if score != 100 {
		t.Fatalf("expected clamped score 100, got %.2f", score)
	}
}

func TestScoreMaid_AllOptionalsAbsent(t *testing.T) {
	maid := baseMaid()
	req := models.RecommendationRequest{CustomerID: "c1", Location: coordPtr(19.0760, 72.8777)}

	score := ScoreMaid(maid, req, 20, nil)
	if score < 0 || score > 100 {
		t.Fatalf("score out of range: %.2f", score)
	}
	// rating 4.2*20 + proximity (25-20)*2; no bonuses apply.
	want := 4.2*20 + 5*2
	if score != want {
		t.Fatalf("expected %.2f, got %.2f", want, score)
	}
}

func TestScoreMaid_BudgetBonusAppliedOnce(t *testing.T) {
	maid := baseMaid() // hourly rate 320
	maid.Rating = 3.0  // keep the sum clear of the clamp
	req := models.RecommendationRequest{CustomerID: "c1", Location: maid.Location}

	without := ScoreMaid(maid, req, 20, nil)
	req.Budget = floatPtr(400)
	with := ScoreMaid(maid, req, 20, nil)

	if diff := with - without; diff != BudgetFitBonus {
		t.Fatalf("expected budget bonus of exactly %.0f, got %.2f", BudgetFitBonus, diff)
	}
}

func TestScoreMaid_ProximityZeroBeyondCutoff(t *testing.T) {
	maid := baseMaid()
	req := models.RecommendationRequest{CustomerID: "c1", Location: maid.Location}

	at25 := ScoreMaid(maid, req, 25, nil)
	at40 := ScoreMaid(maid, req, 40, nil)
	if at25 != at40 {
		t.Fatalf("proximity term should be zero beyond cutoff: %.2f vs %.2f", at25, at40)
	}
}

func TestScoreMaid_ExperienceCapped(t *testing.T) {
	maid := baseMaid()
	maid.Rating = 3.0 // keep the sum clear of the clamp
	req := models.RecommendationRequest{CustomerID: "c1", Location: maid.Location}

	maid.ExperienceYears = 10
	atTen := ScoreMaid(maid, req, 20, nil)
	maid.ExperienceYears = 30
	atThirty := ScoreMaid(maid, req, 20, nil)
	if atTen != atThirty {
		t.Fatalf("experience term should cap at 10 years: %.2f vs %.2f", atTen, atThirty)
	}
}

func TestHistoryAffinity_UnreviewedCountAsZero(t *testing.T) {
	maid := baseMaid()
	maid.Rating = 1.0 // keep the sum clear of the clamp
	req := models.RecommendationRequest{
		CustomerID:  "c1",
		Location:    maid.Location,
		ServiceType: "housekeeping",
	}

	// Two five-star reviews average 5.0: bonus applies.
	reviewed := []models.BookingRecord{
		{ServiceID: "housekeeping", ReviewRating: floatPtr(5)},
		{ServiceID: "housekeeping", ReviewRating: floatPtr(5)},
	}
	// Adding two unreviewed bookings drags the average to 2.5: bonus lost.
	mixed := append([]models.BookingRecord{
		{ServiceID: "housekeeping"},
		{ServiceID: "housekeeping"},
	}, reviewed...)

	withBonus := ScoreMaid(maid, req, 10, reviewed)
	withoutBonus := ScoreMaid(maid, req, 10, mixed)
	if diff := withBonus - withoutBonus; diff != HistoryBonus {
		t.Fatalf("expected unreviewed bookings to suppress the %.0f bonus, diff %.2f", HistoryBonus, diff)
	}
}

func TestHistoryAffinity_IgnoresOtherCategories(t *testing.T) {
	history := []models.BookingRecord{
		{ServiceID: "cooking", ReviewRating: floatPtr(5)},
		{ServiceID: "cooking", ReviewRating: floatPtr(5)},
	}
	if historyAffinity("housekeeping", history) {
		t.Fatal("bookings for other categories should not grant affinity")
	}
	if historyAffinity("", history) {
		t.Fatal("affinity requires a requested service type")
	}
}

func TestReasons_PriorityAndTruncation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	maid := baseMaid()
	maid.Rating = 4.8
	maid.BackgroundCheck = true
	maid.ExperienceYears = 7
	maid.RecentReviews = []models.Review{
		{Rating: 5, CreatedAt: now.AddDate(0, 0, -3)},
		{Rating: 5, CreatedAt: now.AddDate(0, 0, -10)},
		{Rating: 4, CreatedAt: now.AddDate(0, 0, -20)},
	}
	req := models.RecommendationRequest{
		CustomerID: "c1",
		Location:   maid.Location,
		Budget:     floatPtr(500),
	}

	// Six conditions hold; only the first three survive.
	reasons := Reasons(maid, req, 2, now)
	if len(reasons) != 3 {
		t.Fatalf("expected 3 reasons, got %d: %v", len(reasons), reasons)
	}
	want := []string{"Highly rated (4.8/5.0)", "Background verified", "7 years of experience"}
	for i, r := range reasons {
		if r != want[i] {
			t.Fatalf("reason %d: expected %q, got %q", i, want[i], r)
		}
	}
}

func TestReasons_RecentReviewsWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	maid := baseMaid()
	maid.RecentReviews = []models.Review{
		{Rating: 5, CreatedAt: now.AddDate(0, 0, -5)},
		{Rating: 5, CreatedAt: now.AddDate(0, 0, -40)}, // outside the 30-day window
		{Rating: 5, CreatedAt: now.AddDate(0, 0, -45)},
	}
	req := models.RecommendationRequest{CustomerID: "c1", Location: maid.Location}

	for _, r := range Reasons(maid, req, 10, now) {
		if r == "Recently active with positive reviews" {
			t.Fatal("stale reviews should not count toward recent activity")
		}
	}
}
