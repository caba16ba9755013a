package agent

import (
	"errors"
	"fmt"
	"time"

	agentRepo "tripnest/database/repository/agent"
	"tripnest/models"
	"tripnest/services/verification"
	"tripnest/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 24 * time.Hour

// RegisterAgent creates a new travel agent. The government ID must pass
// the twelve-digit checksum and the identity provider must accept the
// document; on success the agent is marked verified and approved
// immediately. The raw ID number is never stored, only its masked form.
func (s *DefaultAgentService) RegisterAgent(agent models.TravelAgent, govID string) (*AgentAuthResponse, error) {
	logger := zap.L()

	if agent.Email == "" || agent.Password == "" {
		return nil, fmt.Errorf("agent email and password are required")
	}
	if agent.Name == "" {
		return nil, fmt.Errorf("agent name is required")
	}
	if err := verification.ValidateIDNumber(govID); err != nil {
		return nil, err
	}
	if agent.Verification.DocumentRef == "" {
		return nil, fmt.Errorf("identity document is required")
	}

	result, err := s.Identity.VerifyDocument(verification.DocumentCheck{
		IDNumber:    govID,
		DocumentRef: agent.Verification.DocumentRef,
		LegalName:   agent.Name,
	})
	if err != nil {
		return nil, err
	}
	if !result.Verified {
		return nil, fmt.Errorf("identity verification rejected: %s", result.Message)
	}

	// Check for an existing agent (using minimal projection).
	existing, err := s.Repo.GetByEmailWithProjection(agent.Email, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing agent: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(agent.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	agent.PasswordHash = string(hashedPassword)
	agent.Password = ""

	now := time.Now()
	agent.ID = uuid.New().String()
	agent.IsVerified = true
	agent.IsApproved = true
	agent.Status = models.AgentApproved
	agent.Verification.MaskedGovID = verification.MaskIDNumber(govID)
	agent.Verification.VerificationCode = result.VerificationCode
	agent.Verification.VerifiedAt = now
	agent.CreatedAt = now
	agent.UpdatedAt = now

	if err := s.Repo.Create(&agent); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(agent.ID, agent.Email, utils.RoleAgent, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := utils.CacheAuthToken(agent.ID, utils.HashToken(token)); err != nil {
		logger.Warn("failed to cache agent auth token", zap.Error(err))
	}

	logger.Info("travel agent registered",
		zap.String("agentId", agent.ID),
		zap.String("status", agent.Status))

	return &AgentAuthResponse{
		ID:         agent.ID,
		Token:      token,
		Name:       agent.Name,
		Email:      agent.Email,
		IsVerified: agent.IsVerified,
		IsApproved: agent.IsApproved,
		Status:     agent.Status,
		CreatedAt:  agent.CreatedAt,
	}, nil
}

// AuthenticateAgent verifies credentials and issues a fresh token.
func (s *DefaultAgentService) AuthenticateAgent(email, password string) (*AgentAuthResponse, error) {
	agent, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, agentRepo.ErrNotFound) {
			return nil, ErrBadCredential
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredential
	}

	token, err := utils.GenerateToken(agent.ID, agent.Email, utils.RoleAgent, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := utils.CacheAuthToken(agent.ID, utils.HashToken(token)); err != nil {
		zap.L().Warn("failed to cache agent auth token", zap.Error(err))
	}

	return &AgentAuthResponse{
		ID:         agent.ID,
		Token:      token,
		Name:       agent.Name,
		Email:      agent.Email,
		IsVerified: agent.IsVerified,
		IsApproved: agent.IsApproved,
		Status:     agent.Status,
		CreatedAt:  agent.CreatedAt,
	}, nil
}

// GetStatus returns the agent's approval/verification state by email.
func (s *DefaultAgentService) GetStatus(email string) (*models.TravelAgent, error) {
	agent, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, agentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return agent, nil
}
