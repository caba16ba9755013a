package agent

import (
	"errors"
	"fmt"
	"time"

	agentRepo "tripnest/database/repository/agent"
	"tripnest/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = validator.New()

// CreatePlan creates a bookable travel plan for an approved agent.
func (s *DefaultAgentService) CreatePlan(agentID string, req CreatePlanRequest) (*models.TravelPlan, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid plan request: %w", err)
	}

	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, agentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !agent.IsApproved {
		return nil, ErrNotApproved
	}

	now := time.Now()
	plan := &models.TravelPlan{
		ID:           uuid.New().String(),
		AgentID:      agent.ID,
		Title:        req.Title,
		Description:  req.Description,
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		Cost: models.CostBreakdown{
			BaseCost: req.BaseCost,
			Taxes:    req.Taxes,
			Total:    req.BaseCost + req.Taxes,
		},
		MaxTravelers:    req.MaxTravelers,
		CurrentBookings: 0,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Plans.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan modifies a plan the agent owns. The booking counter and
// capacity are left to the reservation paths; only descriptive fields and
// activation change here.
func (s *DefaultAgentService) UpdatePlan(agentID string, plan models.TravelPlan) (*models.TravelPlan, error) {
	existing, err := s.Plans.GetByID(plan.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPlanNotFound
	}
	if existing.AgentID != agentID {
		return nil, ErrNotPlanOwner
	}

	updateDoc := bson.M{"$set": bson.M{
		"title":        plan.Title,
		"description":  plan.Description,
		"destination":  plan.Destination,
		"durationDays": plan.DurationDays,
		"cost":         plan.Cost,
		"isActive":     plan.IsActive,
		"updatedAt":    time.Now(),
	}}
	if err := s.Plans.UpdateWithDocument(plan.ID, updateDoc); err != nil {
		return nil, err
	}
	return s.Plans.GetByID(plan.ID)
}

func (s *DefaultAgentService) ListPlans(agentID string) ([]models.TravelPlan, error) {
	return s.Plans.GetByAgent(agentID)
}

// DeactivatePlan takes a plan off the market without touching existing
// bookings.
func (s *DefaultAgentService) DeactivatePlan(agentID, planID string) error {
	existing, err := s.Plans.GetByID(planID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPlanNotFound
	}
	if existing.AgentID != agentID {
		return ErrNotPlanOwner
	}
	return s.Plans.UpdateWithDocument(planID, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now(),
	}})
}
