package verificationRepo

import (
	"errors"

	"tripnest/models"
)

// ErrNotFound is returned when no request matches the given ID.
var ErrNotFound = errors.New("verification request not found")

// VerificationRequestRepository defines methods for verification request
// data access. Each request is one document; both the requester and the
// target look it up here, so there is a single status to mutate.
type VerificationRequestRepository interface {
	// Create inserts a new request. Duplicates for the same
	// (requester, target, trip) triple are allowed.
	Create(req *models.VerificationRequest) error
	// GetByID retrieves a request by its unique ID.
	GetByID(id string) (*models.VerificationRequest, error)
	// GetByTarget retrieves requests asking the given user to verify.
	GetByTarget(targetID string) ([]models.VerificationRequest, error)
	// GetByRequester retrieves requests the given user has sent.
	GetByRequester(requesterID string) ([]models.VerificationRequest, error)
	// UpdateStatus transitions a pending request to approved or rejected.
	UpdateStatus(id, status string) (*models.VerificationRequest, error)
}
