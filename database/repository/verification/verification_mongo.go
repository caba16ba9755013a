package verificationRepo

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

// MongoVerificationRequestRepo implements VerificationRequestRepository using MongoDB.
type MongoVerificationRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoVerificationRequestRepo creates a new instance of VerificationRequestRepository using MongoDB.
func NewMongoVerificationRequestRepo() VerificationRequestRepository {
	repo := &MongoVerificationRequestRepo{coll: database.Collection("verification_requests")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create verification request indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoVerificationRequestRepo) Create(req *models.VerificationRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create verification request: %w", err)
	}
	return nil
}

func (r *MongoVerificationRequestRepo) GetByID(id string) (*models.VerificationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var req models.VerificationRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch verification request %s: %w", id, err)
	}
	return &req, nil
}

func (r *MongoVerificationRequestRepo) GetByTarget(targetID string) ([]models.VerificationRequest, error) {
	return r.find(bson.M{"targetId": targetID})
}

func (r *MongoVerificationRequestRepo) GetByRequester(requesterID string) ([]models.VerificationRequest, error) {
	return r.find(bson.M{"requesterId": requesterID})
}

func (r *MongoVerificationRequestRepo) find(filter bson.M) ([]models.VerificationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find verification requests: %w", err)
	}
	defer cursor.Close(ctx)
	var requests []models.VerificationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode verification requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus mutates the single request document. Only pending requests
// transition; responding twice leaves the first answer in place.
func (r *MongoVerificationRequestRepo) UpdateStatus(id, status string) (*models.VerificationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": id, "status": models.RequestPending}
	update := bson.M{"$set": bson.M{
		"status":      status,
		"respondedAt": now,
		"updatedAt":   now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.VerificationRequest
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update verification request %s: %w", id, err)
	}
	return &updated, nil
}
