package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "tripnest/database/repository/booking"
	"tripnest/models"
	"tripnest/services/payment"

	"go.uber.org/zap"
)

func validPaymentStatus(status string) bool {
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentFailed, models.PaymentRefunded:
		return true
	}
	return false
}

// UpdatePaymentStatus transitions a booking's payment state. When the new
// status is "paid", the owning agent's totalRevenue and totalBookings are
// bumped in a single $inc, keyed off the guarded booking update: the repo
// only transitions pending or failed payments, so a repeated "paid" call
// cannot double-count revenue.
func (s *DefaultBookingService) UpdatePaymentStatus(id, status string, details *models.PaymentDetails) (*models.Booking, error) {
	logger := zap.L()

	if !validPaymentStatus(status) {
		return nil, fmt.Errorf("unknown payment status %q", status)
	}

	if status == models.PaymentPaid {
		if details == nil {
			details = &models.PaymentDetails{}
		}
		now := time.Now()
		details.PaidAt = &now
	}

	updated, err := s.Bookings.UpdatePayment(id, status, details)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrPaymentNotUpdatable):
			return nil, ErrInvalidPayment
		}
		return nil, err
	}

	if status == models.PaymentPaid {
		if err := s.Agents.RecordSale(updated.AgentID, updated.TotalAmount); err != nil {
			// The booking is already marked paid; surface the bookkeeping
			// failure loudly rather than failing the customer's request.
			logger.Error("failed to record sale on agent",
				zap.String("agentId", updated.AgentID),
				zap.String("bookingId", updated.ID),
				zap.Error(err))
		}
	}

	logger.Info("payment status updated",
		zap.String("bookingId", updated.ID),
		zap.String("status", status))
	return updated, nil
}

// CreatePaymentIntent asks the payment provider for an intent covering the
// booking's total amount.
func (s *DefaultBookingService) CreatePaymentIntent(bookingID string) (*payment.Intent, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == models.PaymentPaid {
		return nil, fmt.Errorf("booking %s is already paid", bookingID)
	}

	currency := s.Currency
	if currency == "" {
		currency = "inr"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Payments.CreateIntent(ctx, b.TotalAmount, currency, b.ID)
}
