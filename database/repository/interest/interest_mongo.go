package interestRepo

import (
	"context"
	"fmt"
	"time"

	"tripnest/database"
	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoTripInterestRepo implements TripInterestRepository using MongoDB.
type MongoTripInterestRepo struct {
	coll *mongo.Collection
}

// NewMongoTripInterestRepo creates a new instance of TripInterestRepository using MongoDB.
func NewMongoTripInterestRepo() TripInterestRepository {
	repo := &MongoTripInterestRepo{coll: database.Collection("trip_interests")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create trip interest indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTripInterestRepo) Create(interest *models.TripInterest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, interest)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create interest: %w", err)
	}
	return nil
}

func (r *MongoTripInterestRepo) GetByID(id string) (*models.TripInterest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var interest models.TripInterest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&interest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch interest with id %s: %w", id, err)
	}
	return &interest, nil
}

func (r *MongoTripInterestRepo) GetByUser(userID string) ([]models.TripInterest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find interests for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)
	var interests []models.TripInterest
	if err := cursor.All(ctx, &interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}
	return interests, nil
}

func (r *MongoTripInterestRepo) GetByTrip(tripID string) ([]models.TripInterest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tripId": tripID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find interests for trip %s: %w", tripID, err)
	}
	defer cursor.Close(ctx)
	var interests []models.TripInterest
	if err := cursor.All(ctx, &interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}
	return interests, nil
}

func (r *MongoTripInterestRepo) UpdateStatus(id, status string) (*models.TripInterest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.TripInterest
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update interest %s: %w", id, err)
	}
	return &updated, nil
}
