package booking

import "errors"

// Typed errors the handlers map to HTTP statuses.
var (
	ErrPlanNotFound     = errors.New("travel plan not found")
	ErrPlanInactive     = errors.New("travel plan is not active")
	ErrAgentNotFound    = errors.New("travel agent not found")
	ErrAgentNotApproved = errors.New("travel agent is not approved")
	ErrCapacityExceeded = errors.New("not enough spots left on this plan")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidPayment   = errors.New("payment status cannot be updated")
)
