package controllers

import (
	"net/http"
	"time"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/services"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GET /api/v1/dashboard
//
// "Now" is pinned to UTC here so month and overdue boundaries roll over at a
// single well-defined instant regardless of server locale.
func (c *DashboardController) GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	view, err := c.dashboardService.Overview(r.Context(), time.Now().UTC())
	if err != nil {
		utils.Logger.WithError(err).Error("Dashboard aggregation failed")
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load dashboard", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewDashboardFromView(view))
}
