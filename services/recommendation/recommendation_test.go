package recommendation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"maidly/database/repository"
	"maidly/models"
	"maidly/services/discovery"

	"go.uber.org/zap"
)

type fakeCatalog struct {
	maids []models.MaidProfile
	err   error
}

func (f *fakeCatalog) Search(ctx context.Context, c repository.SearchCriteria) ([]models.MaidProfile, error) {
	return f.maids, f.err
}
func (f *fakeCatalog) ActiveVerified(ctx context.Context) ([]models.MaidProfile, error) {
	return f.maids, f.err
}
func (f *fakeCatalog) FindByID(ctx context.Context, id string) (*models.MaidProfile, error) {
	for i := range f.maids {
		if f.maids[i].ID == id {
			return &f.maids[i], nil
		}
	}
	return nil, repository.ErrMaidNotFound
}

type fakeHistory struct {
	records []models.BookingRecord
	err     error
}

func (f *fakeHistory) RecentByCustomer(ctx context.Context, customerID string, limit int) ([]models.BookingRecord, error) {
	return f.records, f.err
}
func (f *fakeHistory) CommitmentsInWindow(ctx context.Context, maidID string, from, to time.Time) ([]models.Commitment, error) {
	return nil, f.err
}

func rankRequest() models.RecommendationRequest {
	return models.RecommendationRequest{
		CustomerID: "c1",
		Location:   coordPtr(19.0760, 72.8777),
	}
}

func TestRank_TopTenDescending(t *testing.T) {
	var snapshot []models.MaidProfile
	for i := 0; i < 15; i++ {
		m := baseMaid()
		m.ID = fmt.Sprintf("m%02d", i)
		m.Rating = float64(i%5) + 0.5 // spread scores
		snapshot = append(snapshot, m)
	}

	results := Rank(rankRequest(), snapshot, nil, time.Now())
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted descending at %d: %.2f > %.2f", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestRank_TieBreakByID(t *testing.T) {
	a := baseMaid()
	a.ID = "zz"
	b := baseMaid()
	b.ID = "aa"

	results := Rank(rankRequest(), []models.MaidProfile{a, b}, nil, time.Now())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Maid.ID != "aa" {
		t.Fatalf("equal scores should order by maid ID, got %s first", results[0].Maid.ID)
	}
}

func TestRank_FixedRadius(t *testing.T) {
	near := baseMaid()
	near.ID = "near"
	far := baseMaid()
	far.ID = "far"
	far.Location = coordPtr(19.0760+30/111.2, 72.8777) // ~30 km north

	results := Rank(rankRequest(), []models.MaidProfile{near, far}, nil, time.Now())
	if len(results) != 1 || results[0].Maid.ID != "near" {
		t.Fatalf("expected only the nearby maid, got %+v", results)
	}
}

func TestRank_SkipsIneligible(t *testing.T) {
	inactive := baseMaid()
	inactive.ID = "inactive"
	inactive.IsActive = false
	unlocated := baseMaid()
	unlocated.ID = "unlocated"
	unlocated.Location = nil

	results := Rank(rankRequest(), []models.MaidProfile{inactive, unlocated}, nil, time.Now())
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestRecommend_MissingLocation(t *testing.T) {
	svc := &DefaultService{
		Catalog: &fakeCatalog{},
		History: &fakeHistory{},
		Logger:  zap.NewNop(),
	}
	_, err := svc.Recommend(context.Background(), models.RecommendationRequest{CustomerID: "c1"})
	if !errors.Is(err, discovery.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRecommend_DegradesToEmptyOnCatalogFailure(t *testing.T) {
	svc := &DefaultService{
		Catalog: &fakeCatalog{err: errors.New("store unavailable")},
		History: &fakeHistory{},
		Logger:  zap.NewNop(),
	}
	results, err := svc.Recommend(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("recommendation must not propagate upstream failure, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestRecommend_DegradesToEmptyOnHistoryFailure(t *testing.T) {
	svc := &DefaultService{
		Catalog: &fakeCatalog{maids: []models.MaidProfile{baseMaid()}},
		History: &fakeHistory{err: errors.New("store unavailable")},
		Logger:  zap.NewNop(),
	}
	results, err := svc.Recommend(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("recommendation must not propagate upstream failure, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestRecommend_ReturnsScoredCandidates(t *testing.T) {
	maid := baseMaid()
	maid.BackgroundCheck = true
	svc := &DefaultService{
		Catalog: &fakeCatalog{maids: []models.MaidProfile{maid}},
		History: &fakeHistory{},
		Logger:  zap.NewNop(),
	}
	results, err := svc.Recommend(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(results))
	}
	r := results[0]
	if r.Score <= 0 || r.Score > 100 {
		t.Fatalf("score out of range: %.2f", r.Score)
	}
	if len(r.Reasons) == 0 || len(r.Reasons) > 3 {
		t.Fatalf("expected 1..3 reasons, got %v", r.Reasons)
	}
}
