package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdeck_backend/internal/config"
	"reviewdeck_backend/internal/services"
)

// EmbedHandler serves the public, unauthenticated payload consumed by
// embedding pages.
type EmbedHandler struct {
	*BaseHandler
	payloadService services.PayloadService
	cacheControl   string
}

func NewEmbedHandler(base *BaseHandler, payloadService services.PayloadService, cfg *config.Config) *EmbedHandler {
	return &EmbedHandler{
		BaseHandler:    base,
		payloadService: payloadService,
		cacheControl: fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
			cfg.Embed.MaxAge, cfg.Embed.StaleWhileRevalidate),
	}
}

func (h *EmbedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/embed/widgets/:widgetId", h.GetPayload)
}

// GetPayload godoc
// @Summary Public embed payload
// @Description Returns the normalized configuration, cached summary and moderated review list for a published widget. Draft and unknown widgets are indistinguishable.
// @Tags embed
// @Produce json
// @Param widgetId path string true "Widget ID"
// @Success 200 {object} dto.PayloadResponse
// @Failure 404 {object} models.ErrorResponse "Widget not found"
// @Router /embed/widgets/{widgetId} [get]
func (h *EmbedHandler) GetPayload(c *gin.Context) {
	payload, err := h.payloadService.BuildPayload(c.Request.Context(), c.Param("widgetId"))
	if err != nil {
		c.Header("Cache-Control", "no-store")
		h.HandleServiceError(c, err)
		return
	}
	c.Header("Cache-Control", h.cacheControl)
	c.JSON(http.StatusOK, payload)
}
