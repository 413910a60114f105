package models

import "time"

// Review is a customer review left after a completed booking.
type Review struct {
	Rating    float64   `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ServiceOffering links a maid to a service category. A custom price, when
// set, overrides the category base price for that maid.
type ServiceOffering struct {
	ServiceID   string   `bson:"serviceId" json:"serviceId"`
	Offered     bool     `bson:"offered" json:"offered"`
	CustomPrice *float64 `bson:"customPrice,omitempty" json:"customPrice,omitempty"`
}

// MaidProfile is the provider record as stored in the catalog. A nil Location
// means the maid has not shared a location and is invisible to search.
type MaidProfile struct {
	ID              string             `bson:"id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Bio             string             `bson:"bio" json:"bio,omitempty"`
	Location        *Coordinate        `bson:"location,omitempty" json:"location,omitempty"`
	HourlyRate      float64            `bson:"hourlyRate" json:"hourlyRate"`
	Rating          float64            `bson:"rating" json:"rating"` // 0..5
	ReviewCount     int                `bson:"reviewCount" json:"reviewCount"`
	ExperienceYears int                `bson:"experienceYears" json:"experienceYears"`
	BackgroundCheck bool               `bson:"backgroundCheck" json:"backgroundCheck"`
	IsVerified      bool               `bson:"isVerified" json:"isVerified"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	SearchRadiusKm  float64            `bson:"searchRadiusKm" json:"searchRadiusKm"`
	Services        []ServiceOffering  `bson:"services" json:"services"`
	Availability    WeeklyAvailability `bson:"availability" json:"availability"`
	RecentReviews   []Review           `bson:"recentReviews,omitempty" json:"recentReviews,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Offers reports whether the maid has an explicit, active offering for the
// given service category.
func (m *MaidProfile) Offers(serviceID string) bool {
	for _, s := range m.Services {
		if s.ServiceID == serviceID && s.Offered {
			return true
		}
	}
	return false
}

// PriceFor returns the maid's effective hourly price for a category:
// the custom override when present, the maid's hourly rate otherwise.
func (m *MaidProfile) PriceFor(serviceID string) float64 {
	for _, s := range m.Services {
		if s.ServiceID == serviceID && s.CustomPrice != nil {
			return *s.CustomPrice
		}
	}
	return m.HourlyRate
}
