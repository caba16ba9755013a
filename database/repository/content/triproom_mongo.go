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

// MongoTripRoomRepo implements TripRoomRepository using MongoDB.
type MongoTripRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRoomRepo creates a new instance of TripRoomRepository using MongoDB.
func NewMongoTripRoomRepo() TripRoomRepository {
	repo := &MongoTripRoomRepo{coll: database.Collection("trip_rooms")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create trip room indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTripRoomRepo) Create(room *models.TripRoom) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create trip room: %w", err)
	}
	return nil
}

func (r *MongoTripRoomRepo) GetByID(id string) (*models.TripRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var room models.TripRoom
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch trip room %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoTripRoomRepo) GetOpen() ([]models.TripRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isOpen": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve open trip rooms: %w", err)
	}
	defer cursor.Close(ctx)
	var rooms []models.TripRoom
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode trip rooms: %w", err)
	}
	return rooms, nil
}

// Join adds the user and takes a spot in one update. The filter rejects
// full or closed rooms and repeat joins, so the spot counter and the
// member list always move together.
func (r *MongoTripRoomRepo) Join(roomID, userID string) (*models.TripRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":        roomID,
		"isOpen":    true,
		"spotsLeft": bson.M{"$gt": 0},
		"members":   bson.M{"$ne": userID},
	}
	update := bson.M{
		"$push": bson.M{"members": userID},
		"$inc":  bson.M{"spotsLeft": -1},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.TripRoom
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		room, getErr := r.GetByID(roomID)
		if getErr != nil {
			return nil, getErr
		}
		for _, m := range room.Members {
			if m == userID {
				return nil, ErrAlreadyMember
			}
		}
		return nil, ErrRoomFull
	}
	if err != nil {
		return nil, fmt.Errorf("failed to join trip room %s: %w", roomID, err)
	}
	return &updated, nil
}

func (r *MongoTripRoomRepo) TakeSpot(roomID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":        roomID,
		"spotsLeft": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"spotsLeft": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to take spot in trip room %s: %w", roomID, err)
	}
	if result.MatchedCount == 0 {
		if _, getErr := r.GetByID(roomID); getErr != nil {
			return getErr
		}
		return ErrRoomFull
	}
	return nil
}
