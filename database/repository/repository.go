package repository

import (
	"context"
	"errors"
	"time"

	"maidly/models"
)

// ErrMaidNotFound signals that a referenced maid does not exist in the
// catalog. Callers distinguish it from "found but nothing to return".
var ErrMaidNotFound = errors.New("maid not found")

// SearchCriteria carries the attribute filters the catalog can apply
// server-side. Geographic filtering stays in the discovery service.
type SearchCriteria struct {
	Service   string
	MinRating *float64
	MaxPrice  *float64
}

// MaidCatalog supplies candidate maid records. Implementations must return a
// consistent snapshot per call; the core never mutates what it receives.
type MaidCatalog interface {
	// Search returns active, verified, located maids matching the criteria.
	Search(ctx context.Context, criteria SearchCriteria) ([]models.MaidProfile, error)
	// ActiveVerified returns all active, verified, located maids.
	ActiveVerified(ctx context.Context) ([]models.MaidProfile, error)
	// FindByID returns a single maid or ErrMaidNotFound.
	FindByID(ctx context.Context, id string) (*models.MaidProfile, error)
}

// BookingHistory supplies a customer's past bookings and a maid's upcoming
// commitments.
type BookingHistory interface {
	// RecentByCustomer returns the customer's bookings, most recent first,
	// capped at limit.
	RecentByCustomer(ctx context.Context, customerID string, limit int) ([]models.BookingRecord, error)
	// CommitmentsInWindow returns the maid's accepted bookings scheduled
	// within [from, to).
	CommitmentsInWindow(ctx context.Context, maidID string, from, to time.Time) ([]models.Commitment, error)
}
