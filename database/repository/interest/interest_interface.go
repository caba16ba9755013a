package interestRepo

import (
	"errors"

	"tripnest/models"
)

var (
	// ErrDuplicate is returned by Create when an interest already exists
	// for the same (userID, tripID) pair. The unique compound index makes
	// the store, not the application, the enforcer of this invariant.
	ErrDuplicate = errors.New("interest already exists for this user and trip")
	// ErrNotFound is returned when no interest matches the given ID.
	ErrNotFound = errors.New("trip interest not found")
)

// TripInterestRepository defines methods for trip interest data access.
type TripInterestRepository interface {
	// Create inserts a new interest; ErrDuplicate on a repeated
	// (userID, tripID) pair.
	Create(interest *models.TripInterest) error
	// GetByID retrieves an interest by its unique ID.
	GetByID(id string) (*models.TripInterest, error)
	// GetByUser retrieves all interests expressed by a user.
	GetByUser(userID string) ([]models.TripInterest, error)
	// GetByTrip retrieves all interests expressed in a trip.
	GetByTrip(tripID string) ([]models.TripInterest, error)
	// UpdateStatus sets the interest's status.
	UpdateStatus(id, status string) (*models.TripInterest, error)
}
