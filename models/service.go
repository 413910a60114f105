package models

// ServiceCategory represents a bookable household-service category.
type ServiceCategory struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	BasePrice       float64 `bson:"basePrice" json:"basePrice"` // per hour
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
}

// DefaultServiceCategories is the seeded category set. Extensible at
// configuration time; fixed for the lifetime of the process.
var DefaultServiceCategories = []ServiceCategory{
	{ID: "housekeeping", Name: "Housekeeping", BasePrice: 250, DurationMinutes: 120},
	{ID: "deep-cleaning", Name: "Deep Cleaning", BasePrice: 400, DurationMinutes: 240},
	{ID: "cooking", Name: "Cooking", BasePrice: 300, DurationMinutes: 90},
	{ID: "laundry", Name: "Laundry & Ironing", BasePrice: 200, DurationMinutes: 120},
	{ID: "babysitting", Name: "Babysitting", BasePrice: 350, DurationMinutes: 180},
	{ID: "elderly-care", Name: "Elderly Care", BasePrice: 380, DurationMinutes: 240},
	{ID: "pet-care", Name: "Pet Care", BasePrice: 220, DurationMinutes: 60},
	{ID: "gardening", Name: "Gardening", BasePrice: 280, DurationMinutes: 120},
}

// ServiceCategoryByID looks a category up in the seeded set.
func ServiceCategoryByID(id string) (ServiceCategory, bool) {
	for _, c := range DefaultServiceCategories {
		if c.ID == id {
			return c, true
		}
	}
	return ServiceCategory{}, false
}
