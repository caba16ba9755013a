package handlers

import (
	"errors"
	"net/http"

	"tripnest/middleware"
	"tripnest/services/interest"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterestHandler exposes the trip interest workflow.
type InterestHandler struct {
	InterestService interest.InterestService
}

// ExpressInterestHandler handles POST /api/interests. A second interest in
// the same trip by the same user returns 409.
func (h *InterestHandler) ExpressInterestHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req struct {
		TripID   string `json:"tripId" binding:"required"`
		TripType string `json:"tripType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid interest request: "+err.Error())
		return
	}

	ti, err := h.InterestService.ExpressInterest(userID.(string), req.TripID, req.TripType)
	if err != nil {
		if errors.Is(err, interest.ErrAlreadyInterested) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		utils.GetLogger().Error("Failed to express interest",
			zap.String("userId", userID.(string)),
			zap.String("tripId", req.TripID),
			zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, ti)
}

// ListMyInterestsHandler handles GET /api/interests.
func (h *InterestHandler) ListMyInterestsHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	interests, err := h.InterestService.ListByUser(userID.(string))
	if err != nil {
		utils.GetLogger().Error("Failed to list interests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list interests")
		return
	}
	c.JSON(http.StatusOK, interests)
}

// ListTripInterestsHandler handles GET /api/interests/trip/:tripId.
func (h *InterestHandler) ListTripInterestsHandler(c *gin.Context) {
	interests, err := h.InterestService.ListByTrip(c.Param("tripId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list trip interests",
			zap.String("tripId", c.Param("tripId")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list interests")
		return
	}
	c.JSON(http.StatusOK, interests)
}

// UpdateInterestStatusHandler handles PATCH /api/interests/:id. Only the
// organizer of the trip the interest points at may settle it.
func (h *InterestHandler) UpdateInterestStatusHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload: "+err.Error())
		return
	}

	ti, err := h.InterestService.UpdateStatus(userID.(string), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, interest.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, interest.ErrNotOrganizer):
			utils.JSONError(c, http.StatusForbidden, err.Error())
		default:
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, ti)
}
