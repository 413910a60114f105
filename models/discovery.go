package models

// DefaultSearchRadiusKm is applied when a discovery query carries no radius.
const DefaultSearchRadiusKm = 25.0

// DiscoveryQuery describes one maid search. Location is required; the
// remaining filters are optional and skipped when absent.
type DiscoveryQuery struct {
	Location  *Coordinate `json:"location"`
	RadiusKm  float64     `json:"radiusKm"`
	Service   string      `json:"service,omitempty"`
	MinRating *float64    `json:"minRating,omitempty"`
	MaxPrice  *float64    `json:"maxPrice,omitempty"`
}

// EffectiveRadius returns the query radius, falling back to the default.
func (q DiscoveryQuery) EffectiveRadius() float64 {
	if q.RadiusKm > 0 {
		return q.RadiusKm
	}
	return DefaultSearchRadiusKm
}

// RankedMaid pairs a maid with the computed distance from the search point.
type RankedMaid struct {
	Maid       MaidProfile `json:"maid"`
	DistanceKm float64     `json:"distanceKm"`
}
