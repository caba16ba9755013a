package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var booking models.Booking
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetByAgent(agentID string, limit int64) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"agentId": agentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings for agent %s: %w", agentID, err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdatePayment transitions paymentStatus in a single guarded update. Only
// pending or failed payments may move; a booking that is already paid or
// refunded keeps its state.
func (r *MongoBookingRepo) UpdatePayment(id, status string, details *models.PaymentDetails) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":            id,
		"paymentStatus": bson.M{"$in": bson.A{models.PaymentPending, models.PaymentFailed}},
	}
	setDoc := bson.M{
		"paymentStatus": status,
		"updatedAt":     time.Now(),
	}
	if details != nil {
		setDoc["paymentDetails"] = details
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": setDoc}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Distinguish "missing" from "not updatable".
		if _, getErr := r.GetByID(id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrPaymentNotUpdatable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment for booking %s: %w", id, err)
	}
	return &updated, nil
}

// MarkCancelled cancels the booking exactly once. The $ne filter makes the
// operation idempotent: a repeat call matches nothing, so the caller never
// double-releases the plan's spots.
func (r *MongoBookingRepo) MarkCancelled(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":            id,
		"bookingStatus": bson.M{"$ne": models.BookingCancelled},
	}
	update := bson.M{"$set": bson.M{
		"bookingStatus": models.BookingCancelled,
		"updatedAt":     time.Now(),
	}}

	// Return the document before the update so the caller knows how many
	// travelers the booking held.
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	var before models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	if err == mongo.ErrNoDocuments {
		if _, getErr := r.GetByID(id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyCancelled
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	return &before, nil
}
