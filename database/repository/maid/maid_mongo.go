package maidRepo

import (
	"context"
	"fmt"
	"time"

	"maidly/database"
	"maidly/database/repository"
	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMaidRepo implements repository.MaidCatalog using MongoDB.
type MongoMaidRepo struct {
	coll *mongo.Collection
}

// NewMongoMaidRepo creates a MaidCatalog backed by the "maids" collection.
func NewMongoMaidRepo() repository.MaidCatalog {
	return &MongoMaidRepo{coll: database.Collection("maids")}
}

// visibleFilter restricts results to maids eligible for search: active,
// verified, and with a stored location.
func visibleFilter() bson.M {
	return bson.M{
		"isActive":   true,
		"isVerified": true,
		"location":   bson.M{"$ne": nil},
	}
}

func (r *MongoMaidRepo) Search(ctx context.Context, criteria repository.SearchCriteria) ([]models.MaidProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := visibleFilter()
	if criteria.Service != "" {
		filter["services"] = bson.M{"$elemMatch": bson.M{
			"serviceId": criteria.Service,
			"offered":   true,
		}}
	}
	if criteria.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *criteria.MinRating}
	}
	if criteria.MaxPrice != nil {
		filter["hourlyRate"] = bson.M{"$lte": *criteria.MaxPrice}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("maid search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var maids []models.MaidProfile
	if err := cursor.All(ctx, &maids); err != nil {
		return nil, fmt.Errorf("failed to decode maids: %w", err)
	}
	return maids, nil
}

func (r *MongoMaidRepo) ActiveVerified(ctx context.Context) ([]models.MaidProfile, error) {
	return r.Search(ctx, repository.SearchCriteria{})
}

func (r *MongoMaidRepo) FindByID(ctx context.Context, id string) (*models.MaidProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var maid models.MaidProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&maid); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrMaidNotFound
		}
		return nil, fmt.Errorf("failed to fetch maid with id %s: %w", id, err)
	}
	return &maid, nil
}
