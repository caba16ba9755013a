package handlers

import (
	"net/http"

	planRepo "tripnest/database/repository/plan"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler exposes the public, read-only view of travel plans.
type PlanHandler struct {
	Plans planRepo.TravelPlanRepository
}

// ListActivePlansHandler handles GET /api/plans.
func (h *PlanHandler) ListActivePlansHandler(c *gin.Context) {
	plans, err := h.Plans.GetActive()
	if err != nil {
		utils.GetLogger().Error("Failed to list active plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlanHandler handles GET /api/plans/:id.
func (h *PlanHandler) GetPlanHandler(c *gin.Context) {
	plan, err := h.Plans.GetByID(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to fetch plan",
			zap.String("planId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch plan")
		return
	}
	if plan == nil {
		utils.JSONError(c, http.StatusNotFound, "travel plan not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}
