package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pesowise/internal/errors"
	"pesowise/internal/services"
)

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles the dashboard view model request
// @Summary     Get dashboard
// @Description Get the full dashboard view model: totals, savings rate, category breakdown, daily history, subscriptions with due dates, categories, and budget progress. The q filter narrows the transaction set before aggregation, so every derived number reflects the filtered view.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       q      query string false "Case-insensitive search on description and category"
// @Param       window query int    false "Daily history length in days (default 7)"
// @Success     200 {object} services.Dashboard "Dashboard view model"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	opts := services.DashboardOptions{Search: c.Query("q")}

	if v := c.Query("window"); v != "" {
		window, parseErr := strconv.Atoi(v)
		if parseErr != nil || window < 1 || window > 366 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be an integer between 1 and 366"))
			return
		}
		opts.Window = window
	}

	dashboard, err := h.dashboardService.GetDashboard(userID, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
