package handlers

import (
	"errors"
	"net/http"

	userRepo "tripnest/database/repository/user"
	verificationRepo "tripnest/database/repository/verification"
	"tripnest/middleware"
	"tripnest/services/verification"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerificationHandler exposes Aadhar uploads and the verification
// request workflow.
type VerificationHandler struct {
	VerificationService verification.VerificationService
}

// UploadAadharHandler handles POST /api/verification/aadhar. The document
// arrives as a data URI or an already hosted URL.
func (h *VerificationHandler) UploadAadharHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req struct {
		AadharNumber string `json:"aadharNumber" binding:"required"`
		Document     string `json:"document" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid upload request: "+err.Error())
		return
	}

	usr, err := h.VerificationService.UploadAadhar(userID.(string), req.AadharNumber, req.Document)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.GetLogger().Error("Aadhar verification failed",
			zap.String("userId", userID.(string)), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isVerified":   usr.IsVerified,
		"maskedNumber": usr.Aadhar.MaskedNumber,
		"verifiedAt":   usr.Aadhar.VerifiedAt,
	})
}

// RequestVerificationHandler handles POST /api/verification/requests.
func (h *VerificationHandler) RequestVerificationHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req struct {
		TargetID string `json:"targetId" binding:"required"`
		TripID   string `json:"tripId" binding:"required"`
		TripType string `json:"tripType" binding:"required"`
		Message  string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid verification request: "+err.Error())
		return
	}

	vr, err := h.VerificationService.RequestVerification(
		userID.(string), req.TargetID, req.TripID, req.TripType, req.Message)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, vr)
}

// RespondToRequestHandler handles POST /api/verification/requests/:id/respond.
// The responder comes from the token claims and must match the request's
// target.
func (h *VerificationHandler) RespondToRequestHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid response payload: "+err.Error())
		return
	}

	vr, err := h.VerificationService.RespondToRequest(c.Param("id"), userID.(string), req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, verificationRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, verification.ErrNotTarget):
			utils.JSONError(c, http.StatusForbidden, err.Error())
		default:
			utils.GetLogger().Error("Failed to respond to verification request",
				zap.String("requestId", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusConflict, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, vr)
}

// ListIncomingRequestsHandler handles GET /api/verification/requests/incoming.
func (h *VerificationHandler) ListIncomingRequestsHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	requests, err := h.VerificationService.RequestsFor(userID.(string))
	if err != nil {
		utils.GetLogger().Error("Failed to list incoming verification requests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListOutgoingRequestsHandler handles GET /api/verification/requests/outgoing.
func (h *VerificationHandler) ListOutgoingRequestsHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	requests, err := h.VerificationService.RequestsBy(userID.(string))
	if err != nil {
		utils.GetLogger().Error("Failed to list outgoing verification requests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}
