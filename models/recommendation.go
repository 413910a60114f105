package models

// RecommendationRequest carries the customer's context for personalized
// ranking. All fields except CustomerID and Location are optional.
type RecommendationRequest struct {
	CustomerID  string      `json:"customerId"`
	Location    *Coordinate `json:"location"`
	ServiceType string      `json:"serviceType,omitempty"`
	Budget      *float64    `json:"budget,omitempty"`
	Urgency     string      `json:"urgency,omitempty"` // low | medium | high
	Preferences []string    `json:"preferences,omitempty"`
}

// ScoredMaid is one recommendation: a maid with a relevance score in [0,100],
// up to three human-readable reasons, and the distance from the customer.
type ScoredMaid struct {
	Maid       MaidProfile `json:"maid"`
	Score      float64     `json:"score"`
	Reasons    []string    `json:"reasons"`
	DistanceKm float64     `json:"distanceKm"`
}
