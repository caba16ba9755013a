package bookingRepo

import (
	"errors"

	"tripnest/models"
)

var (
	// ErrNotFound is returned when no booking matches the given ID.
	ErrNotFound = errors.New("booking not found")
	// ErrAlreadyCancelled signals that MarkCancelled was a no-op because
	// the booking was cancelled before.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	// ErrPaymentNotUpdatable signals the payment status transition was
	// rejected (only pending or failed payments may change).
	ErrPaymentNotUpdatable = errors.New("payment status cannot be updated")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByCustomer retrieves all bookings made by a customer.
	GetByCustomer(customerID string) ([]models.Booking, error)
	// GetByAgent retrieves recent bookings for an agent, newest first.
	GetByAgent(agentID string, limit int64) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdatePayment sets the payment status and details, guarded so only
	// pending or failed payments transition. Returns the updated booking.
	UpdatePayment(id, status string, details *models.PaymentDetails) (*models.Booking, error)
	// MarkCancelled flips bookingStatus to cancelled exactly once and
	// returns the booking as it was before cancellation. A second call
	// returns ErrAlreadyCancelled without touching the document.
	MarkCancelled(id string) (*models.Booking, error)
}
