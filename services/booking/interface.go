package booking

import (
	agentRepo "tripnest/database/repository/agent"
	bookingRepo "tripnest/database/repository/booking"
	planRepo "tripnest/database/repository/plan"
	"tripnest/models"
	"tripnest/services/payment"

	"github.com/go-playground/validator/v10"
)

// CreateBookingRequest carries everything needed to book a travel plan.
type CreateBookingRequest struct {
	PlanID            string `json:"planId" validate:"required"`
	AgentID           string `json:"agentId" validate:"required"`
	CustomerID        string `json:"customerId" validate:"required"`
	CustomerName      string `json:"customerName" validate:"required"`
	CustomerEmail     string `json:"customerEmail" validate:"required,email"`
	CustomerPhone     string `json:"customerPhone" validate:"omitempty,min=7"`
	NumberOfTravelers int    `json:"numberOfTravelers" validate:"required,min=1"`
	TravelDate        string `json:"travelDate" validate:"required"` // "2006-01-02"
	PaymentMethod     string `json:"paymentMethod" validate:"required,oneof=card upi cash"`
}

// ReminderScheduler schedules a travel reminder for a confirmed booking.
// The asynq-backed implementation lives in the cron package.
type ReminderScheduler interface {
	ScheduleTravelReminder(b *models.Booking) error
}

// BookingService is the booking engine: creation with atomic spot
// accounting, payment settlement with agent revenue bookkeeping, and
// idempotent cancellation.
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetCustomerBookings(customerID string) ([]models.Booking, error)
	UpdatePaymentStatus(id, status string, details *models.PaymentDetails) (*models.Booking, error)
	CancelBooking(id string) (*models.Booking, error)
	CreatePaymentIntent(bookingID string) (*payment.Intent, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Plans     planRepo.TravelPlanRepository
	Agents    agentRepo.TravelAgentRepository
	Payments  payment.PaymentProvider
	Reminders ReminderScheduler // optional
	Currency  string            // ISO code for payment intents, e.g. "inr"
}

var validate = validator.New()
