package user

import (
	"errors"
	"time"

	userRepo "tripnest/database/repository/user"
	"tripnest/models"
)

// Typed errors the handlers map to HTTP statuses.
var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrBadCredential = errors.New("invalid email or password")
)

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UserService manages user accounts and sessions.
type UserService interface {
	RegisterUser(user models.User) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	MarkNotificationsRead(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
