package handlers

import (
	"errors"
	"net/http"

	"tripnest/middleware"
	"tripnest/models"
	"tripnest/services/booking"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	BookingService booking.BookingService
}

// bookingErrorStatus maps booking service errors to HTTP status codes.
func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrPlanNotFound),
		errors.Is(err, booking.ErrAgentNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrCapacityExceeded),
		errors.Is(err, booking.ErrPlanInactive):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrAgentNotApproved):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrInvalidPayment):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request: "+err.Error())
		return
	}

	// The authenticated user is always the customer, whatever the body says.
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}
	req.CustomerID = userID.(string)

	bk, err := h.BookingService.CreateBooking(req)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to create booking", zap.Error(err))
			utils.JSONError(c, status, "Failed to create booking")
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.BookingService.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, bk)
}

// GetMyBookingsHandler handles GET /api/bookings, scoped to the caller.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}
	bookings, err := h.BookingService.GetCustomerBookings(userID.(string))
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdatePaymentStatusHandler handles PATCH /api/bookings/:id/payment.
func (h *BookingHandler) UpdatePaymentStatusHandler(c *gin.Context) {
	var req struct {
		Status  string                 `json:"status" binding:"required"`
		Details *models.PaymentDetails `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment update: "+err.Error())
		return
	}

	bk, err := h.BookingService.UpdatePaymentStatus(c.Param("id"), req.Status, req.Details)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to update payment status",
				zap.String("bookingId", c.Param("id")), zap.Error(err))
			utils.JSONError(c, status, "Failed to update payment status")
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CreatePaymentIntentHandler handles POST /api/bookings/:id/payment-intent.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	intent, err := h.BookingService.CreatePaymentIntent(c.Param("id"))
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to create payment intent",
				zap.String("bookingId", c.Param("id")), zap.Error(err))
			utils.JSONError(c, status, "Failed to create payment intent")
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusOK, intent)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel. Cancellation
// is idempotent: cancelling an already cancelled booking returns the
// current state without touching inventory.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bk, err := h.BookingService.CancelBooking(c.Param("id"))
	if errors.Is(err, booking.ErrAlreadyCancelled) {
		current, getErr := h.BookingService.GetBooking(c.Param("id"))
		if getErr != nil {
			utils.JSONError(c, bookingErrorStatus(getErr), getErr.Error())
			return
		}
		c.JSON(http.StatusOK, current)
		return
	}
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to cancel booking",
				zap.String("bookingId", c.Param("id")), zap.Error(err))
			utils.JSONError(c, status, "Failed to cancel booking")
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusOK, bk)
}
