package agent

import (
	"errors"
	"time"

	agentRepo "tripnest/database/repository/agent"
	bookingRepo "tripnest/database/repository/booking"
	planRepo "tripnest/database/repository/plan"
	"tripnest/models"
	"tripnest/services/verification"
)

// Typed errors the handlers map to HTTP statuses.
var (
	ErrNotFound      = errors.New("travel agent not found")
	ErrNotApproved   = errors.New("travel agent is not approved")
	ErrEmailTaken    = errors.New("an agent with this email already exists")
	ErrBadCredential = errors.New("invalid email or password")
	ErrPlanNotFound  = errors.New("travel plan not found")
	ErrNotPlanOwner  = errors.New("plan does not belong to this agent")
)

// AgentAuthResponse is returned after registration or authentication.
type AgentAuthResponse struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"isVerified"`
	IsApproved bool      `json:"isApproved"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Dashboard aggregates an agent's business view.
type Dashboard struct {
	Agent          *models.TravelAgent `json:"agent"`
	Plans          []models.TravelPlan `json:"plans"`
	RecentBookings []models.Booking    `json:"recentBookings"`
}

// CreatePlanRequest carries a new travel plan's fields.
type CreatePlanRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Destination  string  `json:"destination" validate:"required"`
	DurationDays int     `json:"durationDays" validate:"required,min=1"`
	BaseCost     float64 `json:"baseCost" validate:"required,gt=0"`
	Taxes        float64 `json:"taxes" validate:"gte=0"`
	MaxTravelers int     `json:"maxTravelers" validate:"required,min=1"`
}

// AgentService manages travel agent onboarding and their plans.
type AgentService interface {
	RegisterAgent(agent models.TravelAgent, govID string) (*AgentAuthResponse, error)
	AuthenticateAgent(email, password string) (*AgentAuthResponse, error)
	GetStatus(email string) (*models.TravelAgent, error)
	GetDashboard(agentID string) (*Dashboard, error)

	CreatePlan(agentID string, req CreatePlanRequest) (*models.TravelPlan, error)
	UpdatePlan(agentID string, plan models.TravelPlan) (*models.TravelPlan, error)
	ListPlans(agentID string) ([]models.TravelPlan, error)
	DeactivatePlan(agentID, planID string) error
}

// DefaultAgentService is the production implementation.
type DefaultAgentService struct {
	Repo     agentRepo.TravelAgentRepository
	Plans    planRepo.TravelPlanRepository
	Bookings bookingRepo.BookingRepository
	Identity verification.Provider
}
