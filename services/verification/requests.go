package verification

import (
	"errors"
	"fmt"
	"time"

	"tripnest/models"

	"github.com/google/uuid"
)

// ErrNotTarget is returned when someone other than the requested user tries
// to answer a verification request.
var ErrNotTarget = errors.New("only the requested user can respond to a verification request")

// RequestVerification inserts one request document shared by both sides.
// The requester's "sent" view and the target's "received" view are lookups
// over the same collection, so there is exactly one status to reconcile.
func (s *DefaultVerificationService) RequestVerification(requesterID, targetID, tripID, tripType, message string) (*models.VerificationRequest, error) {
	if requesterID == targetID {
		return nil, fmt.Errorf("cannot request verification from yourself")
	}
	switch tripType {
	case models.TripTypeRoom, models.TripTypePost, models.TripTypePlan:
	default:
		return nil, fmt.Errorf("unknown trip type %q", tripType)
	}

	// Both participants must exist.
	if _, err := s.Users.GetByID(requesterID); err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(targetID); err != nil {
		return nil, err
	}

	now := time.Now()
	req := &models.VerificationRequest{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		TargetID:    targetID,
		TripID:      tripID,
		TripType:    tripType,
		Message:     message,
		Status:      models.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Requests.Create(req); err != nil {
		return nil, err
	}

	// Best-effort: let the target know on their next fetch.
	notif := models.Notification{
		ID:      uuid.New().String(),
		Type:    "verification_request",
		Message: "A trip organizer has asked you to verify your identity.",
		Data: map[string]any{
			"requestId": req.ID,
			"tripId":    tripID,
		},
		CreatedAt: now,
	}
	_ = s.Users.AppendNotification(targetID, notif)

	return req, nil
}

// RespondToRequest mutates the single shared request document. Only the
// user the request was addressed to may answer it.
func (s *DefaultVerificationService) RespondToRequest(requestID, responderID string, approve bool) (*models.VerificationRequest, error) {
	req, err := s.Requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req.TargetID != responderID {
		return nil, ErrNotTarget
	}

	status := models.RequestRejected
	if approve {
		status = models.RequestApproved
	}
	return s.Requests.UpdateStatus(requestID, status)
}

func (s *DefaultVerificationService) RequestsFor(userID string) ([]models.VerificationRequest, error) {
	return s.Requests.GetByTarget(userID)
}

func (s *DefaultVerificationService) RequestsBy(userID string) ([]models.VerificationRequest, error) {
	return s.Requests.GetByRequester(userID)
}
