package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "tripnest/database/repository/user"
	"tripnest/models"
	"tripnest/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 24 * time.Hour

// RegisterUser creates a new user account and issues a session token.
func (s *DefaultUserService) RegisterUser(u models.User) (*AuthResponse, error) {
	logger := zap.L()

	if u.Email == "" || u.Password == "" {
		return nil, fmt.Errorf("user email and password are required")
	}
	if u.Name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if len(u.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmailWithProjection(u.Email, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hashedPassword)
	u.Password = ""

	now := time.Now()
	u.ID = uuid.New().String()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, utils.RoleUser, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := utils.CacheAuthToken(u.ID, utils.HashToken(token)); err != nil {
		logger.Warn("failed to cache user auth token", zap.Error(err))
	}

	logger.Info("user registered", zap.String("userId", u.ID))

	return &AuthResponse{
		ID:         u.ID,
		Token:      token,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}, nil
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrBadCredential
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredential
	}

	token, err := utils.GenerateToken(u.ID, u.Email, utils.RoleUser, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := utils.CacheAuthToken(u.ID, utils.HashToken(token)); err != nil {
		zap.L().Warn("failed to cache user auth token", zap.Error(err))
	}

	return &AuthResponse{
		ID:         u.ID,
		Token:      token,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// MarkNotificationsRead flags every notification on the user as read.
func (s *DefaultUserService) MarkNotificationsRead(userID string) error {
	updateDoc := bson.M{"$set": bson.M{
		"notifications.$[].read": true,
		"updatedAt":              time.Now(),
	}}
	return s.Repo.UpdateWithDocument(userID, updateDoc)
}
