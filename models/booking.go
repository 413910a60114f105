package models

import "time"

// BookingRecord is one row of a customer's booking history, with the joined
// service category and the post-booking review rating when one was left.
type BookingRecord struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customerId" json:"customerId"`
	MaidID        string    `bson:"maidId" json:"maidId"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`
	ReviewRating  *float64  `bson:"reviewRating,omitempty" json:"reviewRating,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
