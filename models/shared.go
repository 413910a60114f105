package models

// Coordinate is a geographic point. Profiles without a coordinate are
// excluded from geospatial operations rather than treated as an error.
type Coordinate struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Urgency levels accepted on a recommendation request.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// ValidUrgency reports whether u is one of the accepted urgency levels.
// The empty string is valid (urgency is optional).
func ValidUrgency(u string) bool {
	switch u {
	case "", UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
