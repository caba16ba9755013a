package booking

import (
	"errors"
	"testing"

	agentRepo "tripnest/database/repository/agent"
	bookingRepo "tripnest/database/repository/booking"
	planRepo "tripnest/database/repository/plan"
	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Mock repositories for testing
type mockPlanRepo struct {
	getByIDFunc      func(id string) (*models.TravelPlan, error)
	reserveSpotsFunc func(planID string, travelers int) error
	releaseSpotsFunc func(planID string, travelers int) error
}

func (m *mockPlanRepo) GetByID(id string) (*models.TravelPlan, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, nil
}
func (m *mockPlanRepo) GetByAgent(agentID string) ([]models.TravelPlan, error) { return nil, nil }
func (m *mockPlanRepo) GetActive() ([]models.TravelPlan, error) { return nil, nil }
func (m *mockPlanRepo) Create(plan *models.TravelPlan) error { return nil }
func (m *mockPlanRepo) Update(plan *models.TravelPlan) error { return nil }
func (m *mockPlanRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }
func (m *mockPlanRepo) ReserveSpots(planID string, travelers int) error {
	if m.reserveSpotsFunc != nil {
		return m.reserveSpotsFunc(planID, travelers)
	}
	return nil
}
func (m *mockPlanRepo) ReleaseSpots(planID string, travelers int) error {
	if m.releaseSpotsFunc != nil {
		return m.releaseSpotsFunc(planID, travelers)
	}
	return nil
}

type mockBookingRepo struct {
	getByIDFunc       func(id string) (*models.Booking, error)
	createFunc        func(b *models.Booking) error
	updatePaymentFunc func(id, status string, details *models.PaymentDetails) (*models.Booking, error)
	markCancelledFunc func(id string) (*models.Booking, error)
}

func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, bookingRepo.ErrNotFound
}
func (m *mockBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) GetByAgent(agentID string, limit int64) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) Create(b *models.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(b)
	}
	return nil
}
func (m *mockBookingRepo) UpdatePayment(id, status string, details *models.PaymentDetails) (*models.Booking, error) {
	if m.updatePaymentFunc != nil {
		return m.updatePaymentFunc(id, status, details)
	}
	return nil, bookingRepo.ErrNotFound
}
func (m *mockBookingRepo) MarkCancelled(id string) (*models.Booking, error) {
	if m.markCancelledFunc != nil {
		return m.markCancelledFunc(id)
	}
	return nil, bookingRepo.ErrNotFound
}

type mockAgentRepo struct {
	getByIDFunc    func(id string) (*models.TravelAgent, error)
	recordSaleFunc func(agentID string, amount float64) error
}

func (m *mockAgentRepo) GetByID(id string) (*models.TravelAgent, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, agentRepo.ErrNotFound
}
func (m *mockAgentRepo) GetByEmail(email string) (*models.TravelAgent, error) {
	return nil, agentRepo.ErrNotFound
}
func (m *mockAgentRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.TravelAgent, error) {
	return nil, nil
}
func (m *mockAgentRepo) Create(agent *models.TravelAgent) error { return nil }
func (m *mockAgentRepo) Update(agent *models.TravelAgent) error { return nil }
func (m *mockAgentRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }
func (m *mockAgentRepo) RecordSale(agentID string, amount float64) error {
	if m.recordSaleFunc != nil {
		return m.recordSaleFunc(agentID, amount)
	}
	return nil
}

func activePlan() *models.TravelPlan {
	return &models.TravelPlan{
		ID:              "plan-1",
		AgentID:         "agent-1",
		Title:           "Goa Getaway",
		Destination:     "Goa",
		DurationDays:    4,
		Cost:            models.CostBreakdown{BaseCost: 10000, Taxes: 1800, Total: 11800},
		MaxTravelers:    10,
		CurrentBookings: 8,
		IsActive:        true,
	}
}

func approvedAgent() *models.TravelAgent {
	return &models.TravelAgent{
		ID:         "agent-1",
		Name:       "Asha Travels",
		Email:      "asha@example.com",
		IsVerified: true,
		IsApproved: true,
		Status:     models.AgentApproved,
	}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		PlanID:            "plan-1",
		AgentID:           "agent-1",
		CustomerID:        "user-1",
		CustomerName:      "Ravi Kumar",
		CustomerEmail:     "ravi@example.com",
		NumberOfTravelers: 2,
		TravelDate:        "2026-12-01",
		PaymentMethod:     "card",
	}
}

func TestCreateBooking_ReservesSpotsAndPersists(t *testing.T) {
	var reserved, persisted bool
	var reservedTravelers int
	var created *models.Booking

	plans := &mockPlanRepo{
		getByIDFunc: func(id string) (*models.TravelPlan, error) { return activePlan(), nil },
		reserveSpotsFunc: func(planID string, travelers int) error {
			reserved = true
			reservedTravelers = travelers
			return nil
		},
	}
	bookings := &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			persisted = true
			created = b
			return nil
		},
	}
	agents := &mockAgentRepo{
		getByIDFunc: func(id string) (*models.TravelAgent, error) { return approvedAgent(), nil },
	}

	svc := &DefaultBookingService{Bookings: bookings, Plans: plans, Agents: agents}

	b, err := svc.CreateBooking(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reserved || reservedTravelers != 2 {
		t.Errorf("expected 2 spots reserved, got reserved=%v travelers=%d", reserved, reservedTravelers)
	}
	if !persisted {
		t.Error("expected booking to be persisted")
	}
	if b.TotalAmount != 11800*2 {
		t.Errorf("expected total amount %v, got %v", 11800*2, b.TotalAmount)
	}
	if b.PaymentStatus != models.PaymentPending {
		t.Errorf("expected payment status pending, got %q", b.PaymentStatus)
	}
	if b.BookingStatus != models.BookingConfirmed {
		t.Errorf("expected booking status confirmed, got %q", b.BookingStatus)
	}
	if created.CustomerID != "user-1" {
		t.Errorf("expected customer user-1, got %q", created.CustomerID)
	}
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	// Plan has 8 of 10 spots taken; booking 5 must fail without a persist.
	var persisted bool

	plans := &mockPlanRepo{
		getByIDFunc: func(id string) (*models.TravelPlan, error) { return activePlan(), nil },
		reserveSpotsFunc: func(planID string, travelers int) error {
			if travelers > 2 {
				return planRepo.ErrNoCapacity
			}
			return nil
		},
	}
	bookings := &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			persisted = true
			return nil
		},
	}
	agents := &mockAgentRepo{
		getByIDFunc: func(id string) (*models.TravelAgent, error) { return approvedAgent(), nil },
	}

	svc := &DefaultBookingService{Bookings: bookings, Plans: plans, Agents: agents}

	req := validRequest()
	req.NumberOfTravelers = 5
	_, err := svc.CreateBooking(req)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if persisted {
		t.Error("no booking should be persisted when capacity is exceeded")
	}
}

func TestCreateBooking_PlanDeactivatedDuringReservation(t *testing.T) {
	// The plan is active at the first read but deactivated before the
	// guarded reservation runs; the caller sees the inactive error, not a
	// capacity one.
	reads := 0
	plans := &mockPlanRepo{
		getByIDFunc: func(id string) (*models.TravelPlan, error) {
			reads++
			p := activePlan()
			if reads > 1 {
				p.IsActive = false
			}
			return p, nil
		},
		reserveSpotsFunc: func(planID string, travelers int) error {
			return planRepo.ErrNoCapacity
		},
	}
	agents := &mockAgentRepo{
		getByIDFunc: func(id string) (*models.TravelAgent, error) { return approvedAgent(), nil },
	}

	svc := &DefaultBookingService{Bookings: &mockBookingRepo{}, Plans: plans, Agents: agents}

	_, err := svc.CreateBooking(validRequest())
	if !errors.Is(err, ErrPlanInactive) {
		t.Fatalf("expected ErrPlanInactive, got %v", err)
	}
	if reads != 2 {
		t.Errorf("expected a follow-up plan read, got %d reads", reads)
	}
}

func TestCreateBooking_ReleasesSpotsOnInsertFailure(t *testing.T) {
	var released bool

	plans := &mockPlanRepo{
		getByIDFunc: func(id string) (*models.TravelPlan, error) { return activePlan(), nil },
		releaseSpotsFunc: func(planID string, travelers int) error {
			released = true
			if travelers != 2 {
				t.Errorf("expected 2 spots released, got %d", travelers)
			}
			return nil
		},
	}
	bookings := &mockBookingRepo{
		createFunc: func(b *models.Booking) error { return errors.New("write failed") },
	}
	agents := &mockAgentRepo{
		getByIDFunc: func(id string) (*models.TravelAgent, error) { return approvedAgent(), nil },
	}

	svc := &DefaultBookingService{Bookings: bookings, Plans: plans, Agents: agents}

	if _, err := svc.CreateBooking(validRequest()); err == nil {
		t.Fatal("expected error when booking insert fails")
	}
	if !released {
		t.Error("reserved spots must be released when the insert fails")
	}
}

func TestCreateBooking_RejectsUnapprovedAgent(t *testing.T) {
	plans := &mockPlanRepo{
		getByIDFunc: func(id string) (*models.TravelPlan, error) { return activePlan(), nil },
	}
	agents := &mockAgentRepo{
		getByIDFunc: func(id string) (*models.TravelAgent, error) {
			ag := approvedAgent()
			ag.IsApproved = false
			ag.Status = models.AgentPending
			return ag, nil
		},
	}

	svc := &DefaultBookingService{Bookings: &mockBookingRepo{}, Plans: plans, Agents: agents}

	_, err := svc.CreateBooking(validRequest())
	if !errors.Is(err, ErrAgentNotApproved) {
		t.Fatalf("expected ErrAgentNotApproved, got %v", err)
	}
}

func TestCreateBooking_PlanMissing(t *testing.T) {
	plans := &mockPlanRepo{
		getByIDFunc: func(id string) (*models.TravelPlan, error) { return nil, nil },
	}

	svc := &DefaultBookingService{Bookings: &mockBookingRepo{}, Plans: plans, Agents: &mockAgentRepo{}}

	_, err := svc.CreateBooking(validRequest())
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestCancelBooking_ReleasesSpotsOnce(t *testing.T) {
	cancelled := false
	releaseCalls := 0

	bookings := &mockBookingRepo{
		markCancelledFunc: func(id string) (*models.Booking, error) {
			if cancelled {
				return nil, bookingRepo.ErrAlreadyCancelled
			}
			cancelled = true
			return &models.Booking{
				ID:                id,
				PlanID:            "plan-1",
				NumberOfTravelers: 3,
				BookingStatus:     models.BookingConfirmed,
			}, nil
		},
	}
	plans := &mockPlanRepo{
		releaseSpotsFunc: func(planID string, travelers int) error {
			releaseCalls++
			return nil
		},
	}

	svc := &DefaultBookingService{Bookings: bookings, Plans: plans, Agents: &mockAgentRepo{}}

	b, err := svc.CancelBooking("booking-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BookingStatus != models.BookingCancelled {
		t.Errorf("expected cancelled status, got %q", b.BookingStatus)
	}

	// Second cancel must be a no-op on the counter.
	if _, err := svc.CancelBooking("booking-1"); !errors.Is(err, ErrAlreadyCancelled) {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}
	if releaseCalls != 1 {
		t.Errorf("expected exactly 1 spot release, got %d", releaseCalls)
	}
}

func TestUpdatePaymentStatus_PaidRecordsSale(t *testing.T) {
	var saleAgent string
	var saleAmount float64

	bookings := &mockBookingRepo{
		updatePaymentFunc: func(id, status string, details *models.PaymentDetails) (*models.Booking, error) {
			if details == nil || details.PaidAt == nil {
				t.Error("expected paidAt to be stamped for a paid transition")
			}
			return &models.Booking{
				ID:            id,
				AgentID:       "agent-1",
				TotalAmount:   23600,
				PaymentStatus: status,
			}, nil
		},
	}
	agents := &mockAgentRepo{
		recordSaleFunc: func(agentID string, amount float64) error {
			saleAgent = agentID
			saleAmount = amount
			return nil
		},
	}

	svc := &DefaultBookingService{Bookings: bookings, Plans: &mockPlanRepo{}, Agents: agents}

	b, err := svc.UpdatePaymentStatus("booking-1", models.PaymentPaid, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PaymentStatus != models.PaymentPaid {
		t.Errorf("expected paid status, got %q", b.PaymentStatus)
	}
	if saleAgent != "agent-1" || saleAmount != 23600 {
		t.Errorf("expected sale of 23600 on agent-1, got %v on %q", saleAmount, saleAgent)
	}
}

func TestUpdatePaymentStatus_RejectsSettledBooking(t *testing.T) {
	recordSaleCalls := 0

	bookings := &mockBookingRepo{
		updatePaymentFunc: func(id, status string, details *models.PaymentDetails) (*models.Booking, error) {
			return nil, bookingRepo.ErrPaymentNotUpdatable
		},
	}
	agents := &mockAgentRepo{
		recordSaleFunc: func(agentID string, amount float64) error {
			recordSaleCalls++
			return nil
		},
	}

	svc := &DefaultBookingService{Bookings: bookings, Plans: &mockPlanRepo{}, Agents: agents}

	_, err := svc.UpdatePaymentStatus("booking-1", models.PaymentPaid, nil)
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
	if recordSaleCalls != 0 {
		t.Errorf("revenue must not be recorded twice, got %d calls", recordSaleCalls)
	}
}

func TestUpdatePaymentStatus_UnknownStatus(t *testing.T) {
	svc := &DefaultBookingService{Bookings: &mockBookingRepo{}, Plans: &mockPlanRepo{}, Agents: &mockAgentRepo{}}
	if _, err := svc.UpdatePaymentStatus("booking-1", "settled", nil); err == nil {
		t.Fatal("expected error for unknown payment status")
	}
}
