package userRepo

import (
	"errors"

	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no user matches the given ID or email.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateWithDocument patches a user document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// AppendNotification pushes a notification onto the user's document.
	AppendNotification(userID string, n models.Notification) error
}
