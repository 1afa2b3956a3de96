package controllers

import (
	"github.com/gin-gonic/gin"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the user's dashboard
// @Description Fetch trip counts, budget totals and the next upcoming trip
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetString("user_id")

	dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}
