package handlers

import (
	"errors"
	"net/http"

	"tripnest/middleware"
	"tripnest/models"
	"tripnest/services/user"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes user accounts and sessions.
type UserHandler struct {
	UserService user.UserService
}

func userErrorStatus(err error) int {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, user.ErrBadCredential):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request: "+err.Error())
		return
	}

	resp, err := h.UserService.RegisterUser(models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		status := userErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to register user", zap.String("email", req.Email), zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request: "+err.Error())
		return
	}

	resp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the authenticated user's profile, including
// pending notifications.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	usr, err := h.UserService.GetUserByID(userID.(string))
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// MarkNotificationsReadHandler handles POST /api/users/notifications/read.
func (h *UserHandler) MarkNotificationsReadHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	if err := h.UserService.MarkNotificationsRead(userID.(string)); err != nil {
		utils.GetLogger().Error("Failed to mark notifications read",
			zap.String("userId", userID.(string)), zap.Error(err))
		utils.JSONError(c, userErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifications marked read"})
}
