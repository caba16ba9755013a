package booking

import (
	"errors"

	bookingRepo "tripnest/database/repository/booking"
	"tripnest/models"

	"go.uber.org/zap"
)

// CancelBooking cancels a booking and releases its spots on the plan. The
// repository flips bookingStatus exactly once, so a second cancellation
// returns ErrAlreadyCancelled and never decrements the plan counter again.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	logger := zap.L()

	before, err := s.Bookings.MarkCancelled(id)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	if err := s.Plans.ReleaseSpots(before.PlanID, before.NumberOfTravelers); err != nil {
		// The booking is cancelled but the counter was not released; log
		// with enough context to reconcile.
		logger.Error("failed to release spots for cancelled booking",
			zap.String("bookingId", before.ID),
			zap.String("planId", before.PlanID),
			zap.Int("travelers", before.NumberOfTravelers),
			zap.Error(err))
	}

	cancelled := *before
	cancelled.BookingStatus = models.BookingCancelled

	logger.Info("booking cancelled",
		zap.String("bookingId", before.ID),
		zap.String("planId", before.PlanID))
	return &cancelled, nil
}
