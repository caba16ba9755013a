package agentRepo

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

// MongoTravelAgentRepo implements TravelAgentRepository using MongoDB.
type MongoTravelAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoTravelAgentRepo creates a new instance of TravelAgentRepository using MongoDB.
func NewMongoTravelAgentRepo() TravelAgentRepository {
	repo := &MongoTravelAgentRepo{coll: database.Collection("travel_agents")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create agent indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTravelAgentRepo) GetByID(id string) (*models.TravelAgent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var agent models.TravelAgent
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&agent); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch agent with id %s: %w", id, err)
	}
	return &agent, nil
}

func (r *MongoTravelAgentRepo) GetByEmail(email string) (*models.TravelAgent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var agent models.TravelAgent
	filter := bson.M{"email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&agent); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch agent with email %s: %w", email, err)
	}
	return &agent, nil
}

func (r *MongoTravelAgentRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.TravelAgent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var agent models.TravelAgent
	opts := options.FindOne().SetProjection(projection)
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent with email %s: %w", email, err)
	}
	return &agent, nil
}

func (r *MongoTravelAgentRepo) Create(agent *models.TravelAgent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, agent)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *MongoTravelAgentRepo) Update(agent *models.TravelAgent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": agent.ID}
	update := bson.M{"$set": agent}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update agent with id %s: %w", agent.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTravelAgentRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update agent with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordSale bumps the agent's revenue aggregates in one $inc so the two
// counters always move together.
func (r *MongoTravelAgentRepo) RecordSale(agentID string, amount float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{
			"totalRevenue":  amount,
			"totalBookings": 1,
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": agentID}, update)
	if err != nil {
		return fmt.Errorf("failed to record sale for agent %s: %w", agentID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
