package models

import "time"

// Trip kinds a user can express interest in.
const (
	TripTypeRoom = "trip_room"
	TripTypePost = "travel_post"
	TripTypePlan = "travel_plan"
)

// Interest statuses.
const (
	InterestPending  = "pending"
	InterestAccepted = "accepted"
	InterestRejected = "rejected"
	InterestWaiting  = "waiting_for_approval"
)

// TripInterest links a user to a trip of one of three kinds. At most one
// interest may exist per (userID, tripID) pair; the repository enforces
// this with a unique compound index and surfaces duplicates as a typed
// error rather than silently inserting a second document.
type TripInterest struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	TripID    string    `bson:"tripId" json:"tripId"`
	TripType  string    `bson:"tripType" json:"tripType"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
