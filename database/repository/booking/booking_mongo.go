package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"maidly/database"
	"maidly/database/repository"
	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements repository.BookingHistory using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingHistory backed by the "bookings" collection.
func NewMongoBookingRepo() repository.BookingHistory {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func (r *MongoBookingRepo) RecentByCustomer(ctx context.Context, customerID string, limit int) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("booking history query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode booking history: %w", err)
	}
	return records, nil
}

func (r *MongoBookingRepo) CommitmentsInWindow(ctx context.Context, maidID string, from, to time.Time) ([]models.Commitment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"maidId":        maidID,
		"scheduledDate": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("commitments query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var commitments []models.Commitment
	if err := cursor.All(ctx, &commitments); err != nil {
		return nil, fmt.Errorf("failed to decode commitments: %w", err)
	}
	return commitments, nil
}
