package models

import "time"

// Verification request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// VerificationRequest asks a user to prove identity before a trip organizer
// trusts them. It is a single document referenced by both participants;
// requester and target read the same status, so approving or rejecting it
// is visible to both sides at once.
//
// Repeated requests for the same (requester, target, trip) triple are
// allowed and create independent documents.
type VerificationRequest struct {
	ID          string     `bson:"id" json:"id"`
	RequesterID string     `bson:"requesterId" json:"requesterId"`
	TargetID    string     `bson:"targetId" json:"targetId"`
	TripID      string     `bson:"tripId" json:"tripId"`
	TripType    string     `bson:"tripType" json:"tripType"`
	Message     string     `bson:"message" json:"message,omitempty"`
	Status      string     `bson:"status" json:"status"`
	RespondedAt *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
