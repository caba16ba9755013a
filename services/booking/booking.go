package booking

import (
	"errors"
	"fmt"
	"time"

	agentRepo "tripnest/database/repository/agent"
	bookingRepo "tripnest/database/repository/booking"
	planRepo "tripnest/database/repository/plan"
	"tripnest/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking books a travel plan. The capacity check and the counter
// increment happen as one guarded update in the plan repository, so
// concurrent bookings for the same plan cannot overbook it. If persisting
// the booking itself fails after the reservation, the spots are released
// again.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	logger := zap.L()

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid booking request: %w", err)
	}
	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("invalid travel date %q: expected YYYY-MM-DD", req.TravelDate)
	}

	plan, err := s.Plans.GetByID(req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}
	if plan.AgentID != req.AgentID {
		return nil, fmt.Errorf("plan %s does not belong to agent %s", req.PlanID, req.AgentID)
	}

	agent, err := s.Agents.GetByID(req.AgentID)
	if err != nil {
		if errors.Is(err, agentRepo.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	if !agent.IsApproved {
		return nil, ErrAgentNotApproved
	}

	// Reserve the spots first; this is the only place capacity is decided.
	if err := s.Plans.ReserveSpots(plan.ID, req.NumberOfTravelers); err != nil {
		if errors.Is(err, planRepo.ErrNoCapacity) {
			// The guard rejects both a full plan and one deactivated since
			// the read above; a follow-up read tells them apart.
			current, readErr := s.Plans.GetByID(plan.ID)
			switch {
			case readErr == nil && current == nil:
				return nil, ErrPlanNotFound
			case readErr == nil && !current.IsActive:
				return nil, ErrPlanInactive
			}
			return nil, ErrCapacityExceeded
		}
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:                uuid.New().String(),
		PlanID:            plan.ID,
		AgentID:           agent.ID,
		CustomerID:        req.CustomerID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		NumberOfTravelers: req.NumberOfTravelers,
		TotalAmount:       plan.Cost.Total * float64(req.NumberOfTravelers),
		PaymentStatus:     models.PaymentPending,
		BookingStatus:     models.BookingConfirmed,
		TravelDate:        travelDate,
		PaymentDetails:    &models.PaymentDetails{Method: req.PaymentMethod},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.Bookings.Create(b); err != nil {
		// Give the reserved spots back; the reservation and the insert are
		// separate writes, and the insert failed.
		if relErr := s.Plans.ReleaseSpots(plan.ID, req.NumberOfTravelers); relErr != nil {
			logger.Error("failed to release spots after booking insert failure",
				zap.String("planId", plan.ID), zap.Error(relErr))
		}
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleTravelReminder(b); err != nil {
			logger.Warn("failed to schedule travel reminder",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("planId", plan.ID),
		zap.Int("travelers", b.NumberOfTravelers))
	return b, nil
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) GetCustomerBookings(customerID string) ([]models.Booking, error) {
	return s.Bookings.GetByCustomer(customerID)
}
