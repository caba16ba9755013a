package verification

import (
	userRepo "tripnest/database/repository/user"
	verificationRepo "tripnest/database/repository/verification"
	"tripnest/models"
	"tripnest/services/storage"
)

// VerificationService handles user identity verification and the
// verification request workflow between trip organizers and travelers.
type VerificationService interface {
	// UploadAadhar validates the user's Aadhar number, stores the document
	// scan, runs the provider check, and marks the user verified.
	UploadAadhar(userID, number, documentDataURI string) (*models.User, error)

	// RequestVerification records that the requester asks the target to
	// verify before being trusted for a trip. Each call creates a new
	// request document; repeats are not deduplicated.
	RequestVerification(requesterID, targetID, tripID, tripType, message string) (*models.VerificationRequest, error)
	// RespondToRequest approves or rejects the single shared request. The
	// responder must be the request's target.
	RespondToRequest(requestID, responderID string, approve bool) (*models.VerificationRequest, error)
	// RequestsFor lists requests asking the given user to verify.
	RequestsFor(userID string) ([]models.VerificationRequest, error)
	// RequestsBy lists requests the given user has sent.
	RequestsBy(userID string) ([]models.VerificationRequest, error)
}

// DefaultVerificationService is the production implementation.
type DefaultVerificationService struct {
	Users    userRepo.UserRepository
	Requests verificationRepo.VerificationRequestRepository
	Provider Provider
	Storage  storage.StorageService
}
