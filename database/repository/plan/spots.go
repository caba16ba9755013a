package planRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ReserveSpots performs the capacity check and the counter increment as one
// conditional UpdateOne. The $expr guard evaluates against the document at
// update time, so the check-then-increment cannot race with concurrent
// reservations for the same plan.
func (r *MongoTravelPlanRepo) ReserveSpots(planID string, travelers int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":       planID,
		"isActive": true,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$currentBookings", travelers}},
				"$maxTravelers",
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"currentBookings": travelers},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve %d spots on plan %s: %w", travelers, planID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoCapacity
	}
	return nil
}

// ReleaseSpots gives back spots held by a cancelled booking. The counter is
// floored at zero by the $gte filter, so a stray release cannot drive it
// negative.
func (r *MongoTravelPlanRepo) ReleaseSpots(planID string, travelers int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":              planID,
		"currentBookings": bson.M{"$gte": travelers},
	}
	update := bson.M{
		"$inc": bson.M{"currentBookings": -travelers},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release %d spots on plan %s: %w", travelers, planID, err)
	}
	return nil
}
