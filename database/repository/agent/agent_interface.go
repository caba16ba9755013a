package agentRepo

import (
	"errors"

	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no agent matches the given ID or email.
var ErrNotFound = errors.New("travel agent not found")

// TravelAgentRepository defines methods for travel agent data access.
type TravelAgentRepository interface {
	// GetByID retrieves an agent by its unique ID.
	GetByID(id string) (*models.TravelAgent, error)
	// GetByEmail retrieves an agent by its email address.
	GetByEmail(email string) (*models.TravelAgent, error)
	// GetByEmailWithProjection retrieves an agent by email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.TravelAgent, error)
	// Create inserts a new agent record.
	Create(agent *models.TravelAgent) error
	// Update modifies an existing agent record.
	Update(agent *models.TravelAgent) error
	// UpdateWithDocument patches an agent document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// RecordSale atomically increments totalRevenue by amount and
	// totalBookings by one. Called when a booking's payment settles.
	RecordSale(agentID string, amount float64) error
}
