package handlers

import (
	"errors"
	"net/http"

	"tripnest/middleware"
	"tripnest/models"
	"tripnest/services/agent"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler exposes travel agent onboarding and plan management.
type AgentHandler struct {
	AgentService agent.AgentService
}

func agentErrorStatus(err error) int {
	switch {
	case errors.Is(err, agent.ErrNotFound), errors.Is(err, agent.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, agent.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, agent.ErrBadCredential):
		return http.StatusUnauthorized
	case errors.Is(err, agent.ErrNotApproved), errors.Is(err, agent.ErrNotPlanOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RegisterAgentHandler handles POST /api/agents/register. The government
// ID number rides alongside the agent profile and is verified inline.
func (h *AgentHandler) RegisterAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		Phone       string `json:"phone"`
		Agency      string `json:"agency"`
		GovID       string `json:"govId" binding:"required"`
		DocumentRef string `json:"documentRef" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request: "+err.Error())
		return
	}

	resp, err := h.AgentService.RegisterAgent(models.TravelAgent{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		AgencyName: req.Agency,
		Verification: models.AgentVerification{
			DocumentRef: req.DocumentRef,
		},
	}, req.GovID)
	if err != nil {
		status := agentErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to register agent", zap.String("email", req.Email), zap.Error(err))
			utils.JSONError(c, status, "Failed to register agent")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AuthenticateAgentHandler handles POST /api/agents/login.
func (h *AgentHandler) AuthenticateAgentHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request: "+err.Error())
		return
	}

	resp, err := h.AgentService.AuthenticateAgent(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, agentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAgentStatusHandler handles GET /api/agents/status/:email.
func (h *AgentHandler) GetAgentStatusHandler(c *gin.Context) {
	ag, err := h.AgentService.GetStatus(c.Param("email"))
	if err != nil {
		utils.JSONError(c, agentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         ag.ID,
		"name":       ag.Name,
		"email":      ag.Email,
		"isVerified": ag.IsVerified,
		"isApproved": ag.IsApproved,
		"status":     ag.Status,
	})
}

// GetDashboardHandler handles GET /api/agents/dashboard for the caller.
func (h *AgentHandler) GetDashboardHandler(c *gin.Context) {
	agentID, ok := c.Get(middleware.CtxAgentID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated agent")
		return
	}

	dash, err := h.AgentService.GetDashboard(agentID.(string))
	if err != nil {
		status := agentErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to build agent dashboard",
				zap.String("agentId", agentID.(string)), zap.Error(err))
			utils.JSONError(c, status, "Failed to build dashboard")
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusOK, dash)
}

// CreatePlanHandler handles POST /api/agents/plans.
func (h *AgentHandler) CreatePlanHandler(c *gin.Context) {
	agentID, ok := c.Get(middleware.CtxAgentID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated agent")
		return
	}

	var req agent.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid plan request: "+err.Error())
		return
	}

	plan, err := h.AgentService.CreatePlan(agentID.(string), req)
	if err != nil {
		status := agentErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlanHandler handles PUT /api/agents/plans/:id.
func (h *AgentHandler) UpdatePlanHandler(c *gin.Context) {
	agentID, ok := c.Get(middleware.CtxAgentID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated agent")
		return
	}

	var plan models.TravelPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid plan payload: "+err.Error())
		return
	}
	plan.ID = c.Param("id")

	updated, err := h.AgentService.UpdatePlan(agentID.(string), plan)
	if err != nil {
		utils.JSONError(c, agentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListPlansHandler handles GET /api/agents/plans for the caller.
func (h *AgentHandler) ListPlansHandler(c *gin.Context) {
	agentID, ok := c.Get(middleware.CtxAgentID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated agent")
		return
	}

	plans, err := h.AgentService.ListPlans(agentID.(string))
	if err != nil {
		utils.GetLogger().Error("Failed to list plans",
			zap.String("agentId", agentID.(string)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// DeactivatePlanHandler handles DELETE /api/agents/plans/:id.
func (h *AgentHandler) DeactivatePlanHandler(c *gin.Context) {
	agentID, ok := c.Get(middleware.CtxAgentID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated agent")
		return
	}

	if err := h.AgentService.DeactivatePlan(agentID.(string), c.Param("id")); err != nil {
		utils.JSONError(c, agentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deactivated"})
}
