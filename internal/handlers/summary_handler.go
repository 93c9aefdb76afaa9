package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/auth"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/services"
)

// SummaryHandler exposes the refresh callback the review ingestion job hits
// after finishing a sync for a widget.
type SummaryHandler struct {
	*BaseHandler
	summaryService services.SummaryService
}

func NewSummaryHandler(base *BaseHandler, summaryService services.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		BaseHandler:    base,
		summaryService: summaryService,
	}
}

func (h *SummaryHandler) RegisterRoutes(r *gin.RouterGroup) {
	internal := r.Group("/internal/widgets/:widgetId/summary")
	internal.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.ActionSummaryRefresh))
	{
		internal.POST("/refresh", h.RefreshSummary)
	}
}

func (h *SummaryHandler) RefreshSummary(c *gin.Context) {
	summary, err := h.summaryService.Refresh(c.Request.Context(), c.Param("widgetId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
