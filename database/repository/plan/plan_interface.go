package planRepo

import (
	"errors"

	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoCapacity is returned by ReserveSpots when the plan is missing,
// inactive, or the requested travelers would exceed maxTravelers. The
// guard and the increment are a single store-side operation, so two
// concurrent bookings can never overbook a plan.
var ErrNoCapacity = errors.New("plan has insufficient capacity")

// TravelPlanRepository defines methods for travel plan data access.
type TravelPlanRepository interface {
	// GetByID retrieves a plan by its unique ID.
	GetByID(id string) (*models.TravelPlan, error)
	// GetByAgent retrieves all plans created by an agent.
	GetByAgent(agentID string) ([]models.TravelPlan, error)
	// GetActive retrieves all active plans.
	GetActive() ([]models.TravelPlan, error)
	// Create inserts a new plan record.
	Create(plan *models.TravelPlan) error
	// Update modifies an existing plan record.
	Update(plan *models.TravelPlan) error
	// UpdateWithDocument patches a plan document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// ReserveSpots atomically increments currentBookings by travelers,
	// guarded so the counter can never pass maxTravelers. Returns
	// ErrNoCapacity when the guard rejects the reservation.
	ReserveSpots(planID string, travelers int) error
	// ReleaseSpots atomically decrements currentBookings by travelers,
	// floored at zero.
	ReleaseSpots(planID string, travelers int) error
}
