package api

import (
	"net/http"

	"playtube/video-app/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service dependency.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), userID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch channel stats"))
		return
	}
	if len(stats) == 0 {
		c.Error(NewError(http.StatusBadRequest, "Channel stats not found"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, stats, "Channel stats fetched successfully"))
}

// Videos handles GET /dashboard/videos. The data is the myVideos array
// from the single matched user document.
func (h *DashboardHandler) Videos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rows, err := h.dashboardService.Videos(c.Request.Context(), userID)
	if err != nil {
		c.Error(NewError(http.StatusInternalServerError, "Failed to fetch channel videos"))
		return
	}
	if len(rows) == 0 {
		c.Error(NewError(http.StatusNotFound, "No videos found"))
		return
	}

	c.JSON(http.StatusOK, NewResponse(http.StatusOK, rows[0]["myVideos"], "Channel videos fetched successfully"))
}
