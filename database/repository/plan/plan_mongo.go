package planRepo

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

// MongoTravelPlanRepo implements TravelPlanRepository using MongoDB.
type MongoTravelPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoTravelPlanRepo creates a new instance of TravelPlanRepository using MongoDB.
func NewMongoTravelPlanRepo() TravelPlanRepository {
	repo := &MongoTravelPlanRepo{coll: database.Collection("travel_plans")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create travel plan indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTravelPlanRepo) GetByID(id string) (*models.TravelPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var plan models.TravelPlan
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch plan with id %s: %w", id, err)
	}
	return &plan, nil
}

func (r *MongoTravelPlanRepo) GetByAgent(agentID string) ([]models.TravelPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"agentId": agentID})
	if err != nil {
		return nil, fmt.Errorf("failed to find plans for agent %s: %w", agentID, err)
	}
	defer cursor.Close(ctx)
	var plans []models.TravelPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

func (r *MongoTravelPlanRepo) GetActive() ([]models.TravelPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active plans: %w", err)
	}
	defer cursor.Close(ctx)
	var plans []models.TravelPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

func (r *MongoTravelPlanRepo) Create(plan *models.TravelPlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (r *MongoTravelPlanRepo) Update(plan *models.TravelPlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": plan.ID}
	update := bson.M{"$set": plan}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update plan with id %s: %w", plan.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("plan with id %s not found", plan.ID)
	}
	return nil
}

func (r *MongoTravelPlanRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update plan with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("plan with id %s not found", id)
	}
	return nil
}
