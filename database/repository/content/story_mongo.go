package contentRepo

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

// MongoStoryRepo implements StoryRepository using MongoDB.
type MongoStoryRepo struct {
	coll *mongo.Collection
}

// NewMongoStoryRepo creates a new instance of StoryRepository using MongoDB.
func NewMongoStoryRepo() StoryRepository {
	repo := &MongoStoryRepo{coll: database.Collection("stories")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create story indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoStoryRepo) Create(story *models.Story) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, story)
	if err != nil {
		return fmt.Errorf("failed to create story: %w", err)
	}
	return nil
}

func (r *MongoStoryRepo) GetByID(id string) (*models.Story, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var story models.Story
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch story %s: %w", id, err)
	}
	return &story, nil
}

func (r *MongoStoryRepo) GetRecent(limit int64) ([]models.Story, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stories: %w", err)
	}
	defer cursor.Close(ctx)
	var stories []models.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("failed to decode stories: %w", err)
	}
	return stories, nil
}

func (r *MongoStoryRepo) Like(id string) (*models.Story, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{
		"$inc": bson.M{"likes": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Story
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrStoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to like story %s: %w", id, err)
	}
	return &updated, nil
}
